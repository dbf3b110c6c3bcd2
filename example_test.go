package mlmath_test

import (
	"fmt"

	"github.com/foldware/mlmath"
	"gonum.org/v1/gonum/mat"
)

func ExampleFold() {
	// [[1,2],[3,4]] folds column-major
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	v := mlmath.Fold(m)

	fmt.Println(v.RawVector().Data)
	// Output: [1 3 2 4]
}

func ExampleUnfold() {
	v := mat.NewVecDense(4, []float64{1, 3, 2, 4})

	ms, err := mlmath.Unfold(v, []mlmath.Shape{{Rows: 2, Cols: 2}})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(ms[0].RawMatrix().Data)
	// Output: [1 2 3 4]
}

func ExampleMatMul() {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12})

	c, err := mlmath.MatMul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(c.RawMatrix().Data)
	// Output: [58 64 139 154]
}

func ExampleNaiveBayesModel_Classify() {
	// two training documents over a three-token vocabulary
	docs := mlmath.NewSparseColMatrix(3, 2)
	docs.SetCol(0, mlmath.NewSparseVectorFrom(3, []float64{2, 0, 1})) // class 0
	docs.SetCol(1, mlmath.NewSparseVectorFrom(3, []float64{0, 3, 0})) // class 1

	model, err := mlmath.TrainMultinomialNaiveBayes(docs, []int{0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	class, err := model.Classify(mlmath.NewSparseVectorFrom(3, []float64{1, 0, 0}))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(class)
	// Output: 0
}

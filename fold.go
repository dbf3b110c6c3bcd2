package mlmath

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Shape describes the dimensions of one matrix in a fold.
type Shape struct {
	Rows, Cols int
}

// Size returns the number of entries a matrix of this shape holds.
func (s Shape) Size() int { return s.Rows * s.Cols }

// ShapesOf returns the shapes of the given matrices, in order. The
// result of ShapesOf is the shape metadata Unfold needs to invert a
// Fold of the same matrices.
func ShapesOf(matrices ...*mat.Dense) []Shape {
	shapes := make([]Shape, len(matrices))
	for i, m := range matrices {
		r, c := m.Dims()
		shapes[i] = Shape{Rows: r, Cols: c}
	}
	return shapes
}

// Fold packs the given matrices column-wise into a single vector: for
// each matrix in input order, each column is appended top to bottom.
// The result has length equal to the sum of each matrix's rows*cols.
// Fold is pure and deterministic; Unfold with matching shapes is its
// exact inverse.
func Fold(matrices ...*mat.Dense) *mat.VecDense {
	length := 0
	for _, m := range matrices {
		r, c := m.Dims()
		length += r * c
	}
	if length == 0 {
		return &mat.VecDense{}
	}

	v := mat.NewVecDense(length, nil)
	index := 0
	for _, m := range matrices {
		rows, cols := m.Dims()
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				v.SetVec(index, m.At(i, j))
				index++
			}
		}
	}
	return v
}

// Unfold unpacks a vector produced by Fold back into matrices of the
// given shapes, consuming the vector column-major in shape order.
// Returns ErrShapeMismatch when the vector length disagrees with the
// sum of the requested shape sizes.
func Unfold(v mat.Vector, shapes []Shape) ([]*mat.Dense, error) {
	want := 0
	for _, s := range shapes {
		want += s.Size()
	}
	if v.Len() != want {
		return nil, NewShapeError("Unfold",
			fmt.Sprintf("vector length %d does not match total shape size %d", v.Len(), want))
	}

	matrices := make([]*mat.Dense, len(shapes))
	index := 0
	for i, s := range shapes {
		m := mat.NewDense(s.Rows, s.Cols, nil)
		for j := 0; j < s.Cols; j++ {
			for r := 0; r < s.Rows; r++ {
				m.Set(r, j, v.AtVec(index))
				index++
			}
		}
		matrices[i] = m
	}
	return matrices, nil
}

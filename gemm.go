package mlmath

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// MatMul computes C = A * B for dense matrices by handing the raw
// row-major buffers to the bound BLAS implementation (Dgemm with
// alpha=1, beta=0). The default binding is gonum's pure-Go BLAS;
// installing a vendor or GPU binding via blas64.Use accelerates this
// call without any change here.
//
// Small products below GEMMKernelThreshold skip the BLAS call and run
// the scalar kernel directly.
//
// Returns ErrShapeMismatch when A's column count differs from B's row
// count.
func MatMul(a, b *mat.Dense) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, NewShapeError("MatMul",
			fmt.Sprintf("inner dimensions disagree: %dx%d * %dx%d", ar, ac, br, bc))
	}

	c := mat.NewDense(ar, bc, nil)
	if ar*bc*ac < GEMMKernelThreshold {
		gemmSerialKernel(a, b, c)
		return c, nil
	}

	ra := a.RawMatrix()
	rb := b.RawMatrix()
	rc := c.RawMatrix()
	blas64.Implementation().Dgemm(blas.NoTrans, blas.NoTrans,
		ar, bc, ac,
		1, ra.Data, ra.Stride,
		rb.Data, rb.Stride,
		0, rc.Data, rc.Stride)
	return c, nil
}

// gemmSerialKernel is the scalar fallback: a plain triple loop with
// the accumulator kept in a register across the k dimension.
func gemmSerialKernel(a, b, c *mat.Dense) {
	m, k := a.Dims()
	_, n := b.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for l := 0; l < k; l++ {
				sum += a.At(i, l) * b.At(l, j)
			}
			c.Set(i, j, sum)
		}
	}
}

// GEMMImplementation reports which multiply path MatMul would take for
// an m x k by k x n product: "blas64" or "scalar".
func GEMMImplementation(m, n, k int) string {
	if m*n*k < GEMMKernelThreshold {
		return "scalar"
	}
	return "blas64"
}

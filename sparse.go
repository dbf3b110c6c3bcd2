package mlmath

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// SparseVector is a sparse column vector of float64 values. Only
// non-zero entries are stored. It implements mat.Vector so it can be
// used anywhere a gonum vector is accepted; reading an unset index
// yields 0.
//
// Iteration over non-zero entries (DoNonZero, Sum) always runs in
// ascending index order, so operations built on it are deterministic.
type SparseVector struct {
	n    int
	data map[int]float64
}

// NewSparseVector creates a sparse vector of dimension n.
// NewSparseVector panics if n is not positive.
func NewSparseVector(n int) *SparseVector {
	if n <= 0 {
		panic("mlmath: non-positive vector dimension")
	}
	return &SparseVector{n: n, data: make(map[int]float64)}
}

// NewSparseVectorFrom creates a sparse vector of dimension n holding
// the non-zero entries of s. NewSparseVectorFrom panics if len(s) > n.
func NewSparseVectorFrom(n int, s []float64) *SparseVector {
	if len(s) > n {
		panic("mlmath: slice longer than vector dimension")
	}
	v := NewSparseVector(n)
	for i, x := range s {
		if x != 0 {
			v.data[i] = x
		}
	}
	return v
}

// Len returns the dimension of the vector.
func (v *SparseVector) Len() int { return v.n }

// Dims returns the dimensions of the vector as a single-column matrix.
func (v *SparseVector) Dims() (r, c int) { return v.n, 1 }

// AtVec returns the value at index i.
// AtVec panics if i is out of bounds.
func (v *SparseVector) AtVec(i int) float64 {
	if i < 0 || i >= v.n {
		panic("mlmath: vector index out of range")
	}
	return v.data[i]
}

// At returns the value at row i of the single-column matrix view.
func (v *SparseVector) At(i, j int) float64 {
	if j != 0 {
		panic("mlmath: column index out of range")
	}
	return v.AtVec(i)
}

// T returns the transpose of the vector as a mat.Matrix.
func (v *SparseVector) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// SetVec sets the value at index i. Setting a zero removes the entry.
// SetVec panics if i is out of bounds.
func (v *SparseVector) SetVec(i int, x float64) {
	if i < 0 || i >= v.n {
		panic("mlmath: vector index out of range")
	}
	if x == 0 {
		delete(v.data, i)
		return
	}
	v.data[i] = x
}

// NNZ returns the number of non-zero entries.
func (v *SparseVector) NNZ() int { return len(v.data) }

// DoNonZero calls fn for each non-zero entry in ascending index order.
func (v *SparseVector) DoNonZero(fn func(i int, x float64)) {
	idx := make([]int, 0, len(v.data))
	for i := range v.data {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		fn(i, v.data[i])
	}
}

// Sum returns the sum of all entries, accumulated in index order.
func (v *SparseVector) Sum() float64 {
	var s float64
	v.DoNonZero(func(_ int, x float64) { s += x })
	return s
}

// Dense returns the entries as a dense slice of length Len.
func (v *SparseVector) Dense() []float64 {
	out := make([]float64, v.n)
	for i, x := range v.data {
		out[i] = x
	}
	return out
}

// DoNonZero calls fn for each non-zero entry of v in ascending index
// order. Sparse vectors iterate their stored entries; any other
// mat.Vector is scanned with zeros skipped.
func DoNonZero(v mat.Vector, fn func(i int, x float64)) {
	if sv, ok := v.(*SparseVector); ok {
		sv.DoNonZero(fn)
		return
	}
	for i := 0; i < v.Len(); i++ {
		if x := v.AtVec(i); x != 0 {
			fn(i, x)
		}
	}
}

// SparseColMatrix is a sparse matrix stored by column, used as a
// document-term matrix: each column is one document's token-count
// vector, rows index tokens. Only populated columns are stored, so a
// matrix may have fewer documents than its column space admits.
type SparseColMatrix struct {
	rows int
	cols int
	col  map[int]*SparseVector
}

// NewSparseColMatrix creates a rows x cols sparse column matrix with
// no populated columns. NewSparseColMatrix panics if either dimension
// is not positive.
func NewSparseColMatrix(rows, cols int) *SparseColMatrix {
	if rows <= 0 || cols <= 0 {
		panic("mlmath: non-positive matrix dimension")
	}
	return &SparseColMatrix{rows: rows, cols: cols, col: make(map[int]*SparseVector)}
}

// Rows returns the number of rows (tokens).
func (m *SparseColMatrix) Rows() int { return m.rows }

// Cols returns the number of columns (the document space size).
func (m *SparseColMatrix) Cols() int { return m.cols }

// SetCol stores v as column j, replacing any previous column.
// Returns ErrShapeMismatch when v's dimension differs from Rows.
func (m *SparseColMatrix) SetCol(j int, v *SparseVector) error {
	if j < 0 || j >= m.cols {
		panic("mlmath: column index out of range")
	}
	if v.Len() != m.rows {
		return NewShapeError("SetCol", "column dimension does not match row count")
	}
	m.col[j] = v
	return nil
}

// ColView returns column j, or nil when the column is not populated.
// The returned vector is shared, not copied.
func (m *SparseColMatrix) ColView(j int) *SparseVector {
	if j < 0 || j >= m.cols {
		panic("mlmath: column index out of range")
	}
	return m.col[j]
}

// PopulatedCols returns the indices of populated columns in ascending
// order.
func (m *SparseColMatrix) PopulatedCols() []int {
	idx := make([]int, 0, len(m.col))
	for j := range m.col {
		idx = append(idx, j)
	}
	sort.Ints(idx)
	return idx
}

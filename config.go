// Package mlmath configuration constants
package mlmath

// Matrix multiply dispatch
const (
	// Minimum m*n*k before MatMul hands the buffers to the BLAS
	// binding; below this the call overhead dominates and the scalar
	// kernel wins
	GEMMKernelThreshold = 32 * 32 * 32
)

// Naive Bayes training parameters
const (
	// Laplace smoothing pseudo-count added to every (class, token)
	// cell before log-normalization
	LaplacePseudoCount = 1.0
)

// Numerical constants
const (
	// Machine epsilon for float64
	Float64Epsilon = 2.220446049250313e-16

	// Tolerance for checking that a probability distribution sums to 1
	DistributionTolerance = 1e-9
)

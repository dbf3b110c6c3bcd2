// Package mlmath provides numerical-computing utilities for machine
// learning workloads: parameter packing for optimization routines,
// BLAS-backed dense matrix multiplication, and a multinomial naive
// Bayes text classifier over sparse document-term matrices.
//
// The package builds on the Gonum numerical computing libraries:
// dense containers are gonum's mat.Dense and mat.VecDense, and the
// matrix multiply hands its buffers directly to the bound BLAS
// implementation (blas64). Swapping in a vendor or GPU BLAS is a
// matter of calling blas64.Use with the desired binding; nothing in
// this package needs to change.
//
// The three utility groups are independent and share no state:
//
//   - Fold/Unfold pack a list of dense matrices into one flat vector
//     (column-major) and back, for optimizers that want a single
//     parameter vector.
//   - MatMul multiplies two dense matrices through the BLAS binding.
//   - TrainMultinomialNaiveBayes fits a classifier and returns an
//     immutable NaiveBayesModel; classification happens on the model
//     value, so an untrained model cannot be misused.
package mlmath

package mlmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NaiveBayesModel is a trained multinomial naive Bayes classifier.
// It holds a numClasses x numTokens matrix of Laplace-smoothed token
// log-probabilities and an add-one smoothed class prior vector. A
// model is immutable after training, so concurrent classification
// calls on one model are safe; training always builds a fresh model
// and never touches an existing one.
//
// Note the priors do not generally sum to 1: with N training
// documents and K classes the add-one smoothing makes them sum to
// (N+K)/N. That matches the classical formulation this model
// implements; ProbabilityDistribution still normalizes its output to
// a proper distribution.
type NaiveBayesModel struct {
	logProb    *mat.Dense
	classPrior *mat.VecDense
	numClasses int
	numTokens  int
}

// DiscoverClasses infers the class count from a label vector as
// max(label)+1. Labels are expected to be densely assigned 0..K-1;
// gaps are tolerated but leave unused rows in the trained model.
// Returns ErrInvalidLabel when any label is negative.
func DiscoverClasses(labels []int) (int, error) {
	max := -1
	for i, l := range labels {
		if l < 0 {
			return 0, &Error{
				Type:    ErrTypeInvalidArg,
				Op:      "DiscoverClasses",
				Message: fmt.Sprintf("label %d at index %d", l, i),
				Err:     ErrInvalidLabel,
			}
		}
		if l > max {
			max = l
		}
	}
	return max + 1, nil
}

// TrainMultinomialNaiveBayes fits a multinomial naive Bayes model on
// a document-term matrix (documents are columns, rows index tokens)
// and a label vector assigning each document column a class id.
// Unpopulated columns are skipped; their labels are ignored.
//
// Every (class, token) cell starts at the Laplace pseudo-count, each
// document's token counts accumulate into its class's row, and the
// cells are then log-normalized against the class's total token count
// plus the vocabulary-size-minus-one smoothing term. The class prior
// is the add-one smoothed document fraction.
//
// Training is deterministic: identical inputs produce bit-identical
// models.
//
// Returns ErrInputCardinality when len(labels) != docs.Cols and
// ErrInvalidLabel when any label is negative.
func TrainMultinomialNaiveBayes(docs *SparseColMatrix, labels []int) (*NaiveBayesModel, error) {
	if docs == nil {
		return nil, NewInvalidArgError("Train", "nil document-term matrix")
	}
	if len(labels) != docs.Cols() {
		return nil, &Error{
			Type:    ErrTypeInvalidArg,
			Op:      "Train",
			Message: fmt.Sprintf("%d labels for %d document columns", len(labels), docs.Cols()),
			Err:     ErrInputCardinality,
		}
	}

	numClasses, err := DiscoverClasses(labels)
	if err != nil {
		return nil, err
	}
	populated := docs.PopulatedCols()
	if numClasses == 0 || len(populated) == 0 {
		return nil, NewInvalidArgError("Train", "no training documents")
	}

	numTokens := docs.Rows()
	logProb := mat.NewDense(numClasses, numTokens, nil)
	for c := 0; c < numClasses; c++ {
		for t := 0; t < numTokens; t++ {
			logProb.Set(c, t, LaplacePseudoCount)
		}
	}

	tokensPerClass := make([]float64, numClasses)
	docsPerClass := make([]int, numClasses)
	for _, j := range populated {
		c := labels[j]
		doc := docs.ColView(j)
		tokensPerClass[c] += doc.Sum()
		docsPerClass[c]++
		doc.DoNonZero(func(t int, count float64) {
			logProb.Set(c, t, logProb.At(c, t)+count)
		})
	}

	for c := 0; c < numClasses; c++ {
		denom := tokensPerClass[c] + float64(numTokens) - 1
		for t := 0; t < numTokens; t++ {
			logProb.Set(c, t, math.Log(logProb.At(c, t)/denom))
		}
	}

	classPrior := mat.NewVecDense(numClasses, nil)
	totalDocs := float64(len(populated))
	for c := 0; c < numClasses; c++ {
		classPrior.SetVec(c, float64(docsPerClass[c]+1)/totalDocs)
	}

	return &NaiveBayesModel{
		logProb:    logProb,
		classPrior: classPrior,
		numClasses: numClasses,
		numTokens:  numTokens,
	}, nil
}

// NumClasses returns the number of classes the model distinguishes.
func (m *NaiveBayesModel) NumClasses() int { return m.numClasses }

// NumTokens returns the vocabulary size the model was trained on.
func (m *NaiveBayesModel) NumTokens() int { return m.numTokens }

// LogProbabilities returns a copy of the numClasses x numTokens token
// log-probability matrix.
func (m *NaiveBayesModel) LogProbabilities() *mat.Dense {
	out := mat.NewDense(m.numClasses, m.numTokens, nil)
	out.Copy(m.logProb)
	return out
}

// ClassPriors returns a copy of the add-one smoothed prior vector.
func (m *NaiveBayesModel) ClassPriors() *mat.VecDense {
	out := mat.NewVecDense(m.numClasses, nil)
	out.CopyVec(m.classPrior)
	return out
}

// ProbabilityDistribution scores a document against every class and
// returns a dense probability vector of length NumClasses that sums
// to 1 within floating-point tolerance. Per class, the score is the
// count-weighted sum of token log-probabilities over the document's
// non-zero entries; the scores are then renormalized with the
// log-sum-exp trick, weighted by the class priors.
//
// The document may be sparse or dense; its length must equal
// NumTokens (ErrShapeMismatch otherwise). A nil model returns
// ErrModelNotTrained.
func (m *NaiveBayesModel) ProbabilityDistribution(doc mat.Vector) (*mat.VecDense, error) {
	if m == nil || m.logProb == nil {
		return nil, NewStateError("ProbabilityDistribution", "classify before training", ErrModelNotTrained)
	}
	if doc == nil {
		return nil, NewInvalidArgError("ProbabilityDistribution", "nil document")
	}
	if doc.Len() != m.numTokens {
		return nil, NewShapeError("ProbabilityDistribution",
			fmt.Sprintf("document length %d, vocabulary size %d", doc.Len(), m.numTokens))
	}

	scores := make([]float64, m.numClasses)
	DoNonZero(doc, func(t int, count float64) {
		for c := 0; c < m.numClasses; c++ {
			scores[c] += count * m.logProb.At(c, t)
		}
	})

	// scores now hold per-class log-likelihoods; shift by the max
	// before exponentiating to stay in safe floating-point range.
	maxScore := floats.Max(scores)
	for c := 0; c < m.numClasses; c++ {
		scores[c] = math.Exp(scores[c]-maxScore) * m.classPrior.AtVec(c)
	}
	sum := floats.Sum(scores)
	floats.Scale(1/sum, scores)

	return mat.NewVecDense(m.numClasses, scores), nil
}

// Classify returns the most probable class for a document, resolving
// ties to the lowest class index.
func (m *NaiveBayesModel) Classify(doc mat.Vector) (int, error) {
	if m == nil || m.logProb == nil {
		return 0, NewStateError("Classify", "classify before training", ErrModelNotTrained)
	}
	dist, err := m.ProbabilityDistribution(doc)
	if err != nil {
		return 0, err
	}
	return floats.MaxIdx(dist.RawVector().Data), nil
}

package threshold

import (
	"errors"
	"fmt"
	"math"

	"github.com/mr-c/raptor/correction"
)

// ErrInvalid is returned for threshold parameters that cannot be applied.
var ErrInvalid = errors.New("threshold: invalid parameters")

// Kind identifies how a threshold is computed.
type Kind uint8

const (
	// Lemma uses the k-mer lemma for a fixed number of errors.
	Lemma Kind = iota
	// Percentage requires a fixed fraction of the minimizers.
	Percentage
	// Probabilistic adds the false-positive correction to a base threshold.
	Probabilistic
)

func (k Kind) String() string {
	switch k {
	case Lemma:
		return "lemma"
	case Percentage:
		return "percentage"
	case Probabilistic:
		return "probabilistic"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Threshold maps a minimizer count to the number of hits a bin needs.
type Threshold struct {
	kind       Kind
	lemma      uint64
	percentage float64
	base       []uint64
	correction correction.Table
}

// NewLemma returns the k-mer lemma threshold: a pattern with e errors
// shares at least p+1-(e+1)k k-mers with its match.
func NewLemma(patternSize, kmerSize, numErrors int) (Threshold, error) {
	if patternSize <= 0 || kmerSize <= 0 || numErrors < 0 {
		return Threshold{}, fmt.Errorf("%w: pattern %d, k-mer %d, errors %d", ErrInvalid, patternSize, kmerSize, numErrors)
	}
	var lemma uint64
	if need := (numErrors + 1) * kmerSize; patternSize+1 > need {
		lemma = uint64(patternSize + 1 - need)
	}
	return Threshold{kind: Lemma, lemma: lemma}, nil
}

// NewPercentage returns a threshold requiring fraction of the minimizers.
func NewPercentage(fraction float64) (Threshold, error) {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return Threshold{}, fmt.Errorf("%w: percentage %v not in [0,1]", ErrInvalid, fraction)
	}
	return Threshold{kind: Percentage, percentage: fraction}, nil
}

// NewProbabilistic returns a threshold that adds table to base. base holds
// one value per minimizer count covered by table.
func NewProbabilistic(base []uint64, table correction.Table) (Threshold, error) {
	if table.IsZero() {
		return Threshold{}, fmt.Errorf("%w: no correction table", ErrInvalid)
	}
	if len(base) != table.Len() {
		return Threshold{}, fmt.Errorf("%w: %d base thresholds for %d minimizer counts", ErrInvalid, len(base), table.Len())
	}
	return Threshold{kind: Probabilistic, base: base, correction: table}, nil
}

// Select picks the threshold kind for p the way searches do: the lemma when
// window and k-mer size agree, the percentage when the threshold was fixed,
// the probabilistic threshold otherwise.
func Select(p correction.Params, numErrors int, fraction float64, base []uint64, table correction.Table) (Threshold, error) {
	switch {
	case p.WindowSize == p.KmerSize():
		return NewLemma(p.PatternSize, p.KmerSize(), numErrors)
	case p.ThresholdOverride:
		return NewPercentage(fraction)
	default:
		return NewProbabilistic(base, table)
	}
}

// Kind returns how t is computed.
func (t Threshold) Kind() Kind { return t.kind }

// Get returns the hits required for a pattern with minimizers minimizers.
// The result is at least 1.
func (t Threshold) Get(minimizers int) uint64 {
	var v uint64
	switch t.kind {
	case Lemma:
		v = t.lemma
	case Percentage:
		if minimizers > 0 {
			v = uint64(float64(minimizers) * t.percentage)
		}
	case Probabilistic:
		i := t.correction.Index(minimizers)
		v = t.base[i] + t.correction.Clamp(minimizers)
	}
	return max(1, v)
}

package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrNumericDomain is returned when the model is evaluated outside 0 <= k <= n.
var ErrNumericDomain = errors.New("stats: outside numeric domain")

// Model is the binomial false-positive model for a single trial count.
//
// A Model owns the Pascal row for its trial count; it is immutable and
// safe for concurrent use.
type Model struct {
	n      int
	fpr    float64
	invFPR float64
	row    []float64
}

// NewModel prepares the model for n trials with false-positive rate fpr.
func NewModel(n int, fpr float64) (*Model, error) {
	if math.IsNaN(fpr) || fpr <= 0 || fpr >= 1 {
		return nil, fmt.Errorf("%w: false positive rate %v not in (0,1)", ErrNumericDomain, fpr)
	}
	row, err := PascalRow(n)
	if err != nil {
		return nil, err
	}
	return &Model{n: n, fpr: fpr, invFPR: 1 - fpr, row: row}, nil
}

// Trials returns n.
func (m *Model) Trials() int { return m.n }

// Coefficient returns C(n,k).
func (m *Model) Coefficient(k int) (float64, error) {
	if k < 0 || k > m.n {
		return 0, fmt.Errorf("%w: k=%d, n=%d", ErrNumericDomain, k, m.n)
	}
	return m.row[k], nil
}

// Probability returns the probability of exactly k false-positive hits out of n.
func (m *Model) Probability(k int) (float64, error) {
	c, err := m.Coefficient(k)
	if err != nil {
		return 0, err
	}
	return c * math.Pow(m.fpr, float64(k)) * math.Pow(m.invFPR, float64(m.n-k)), nil
}

// Probability is the one-shot form of Model.Probability. It takes a row
// produced by PascalRow(n).
func Probability(row []float64, n int, fpr float64, k int) (float64, error) {
	if len(row) != n+1 {
		return 0, fmt.Errorf("%w: row has %d coefficients, want %d", ErrNumericDomain, len(row), n+1)
	}
	if k < 0 || k > n {
		return 0, fmt.Errorf("%w: k=%d, n=%d", ErrNumericDomain, k, n)
	}
	return row[k] * math.Pow(fpr, float64(k)) * math.Pow(1-fpr, float64(n-k)), nil
}

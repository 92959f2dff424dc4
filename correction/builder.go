package correction

import (
	"fmt"

	"github.com/mr-c/raptor/internal/stats"
)

// Build computes the correction table for p.
//
// Build ignores ThresholdOverride; deciding whether a table is needed is up
// to the caller.
func Build(p Params) (Table, error) {
	if err := p.Validate(); err != nil {
		return Table{}, err
	}

	minimal, maximal := p.Bounds()
	if maximal < minimal {
		return Table{}, configErrorf("pattern_size", "empty minimizer range [%d, %d]", minimal, maximal)
	}

	values := make([]uint64, 0, maximal-minimal+1)
	for n := minimal; n <= maximal; n++ {
		c, err := Correction(n, p.FPR, p.PMax)
		if err != nil {
			return Table{}, fmt.Errorf("minimizer count %d: %w", n, err)
		}
		values = append(values, c)
	}
	return Table{min: minimal, values: values}, nil
}

// Correction returns the correction for n minimizers: the largest k such
// that 1..k false-positive hits each have probability >= pMax. The scan is
// bounded by n; if every count up to n is significant, the result is n.
func Correction(n int, fpr, pMax float64) (uint64, error) {
	m, err := stats.NewModel(n, fpr)
	if err != nil {
		return 0, err
	}

	k := 1
	for ; k <= n; k++ {
		p, err := m.Probability(k)
		if err != nil {
			return 0, err
		}
		if p < pMax {
			break
		}
	}
	return uint64(k - 1), nil
}

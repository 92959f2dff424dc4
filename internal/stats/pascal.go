package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a binomial coefficient is not representable.
var ErrOverflow = errors.New("stats: binomial coefficient overflow")

// MaxRowOrder is the largest n for which PascalRow succeeds.
const MaxRowOrder = 1029

// PascalRow returns the n+1 binomial coefficients C(n,0), ..., C(n,n).
func PascalRow(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative row order %d", ErrNumericDomain, n)
	}
	if n > MaxRowOrder {
		return nil, fmt.Errorf("%w: row order %d exceeds %d", ErrOverflow, n, MaxRowOrder)
	}

	row := make([]float64, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		// Walk right to left so row[k-1] still holds the previous row.
		row[i] = 1
		for k := i - 1; k > 0; k-- {
			row[k] += row[k-1]
		}
	}

	// Symmetric rows peak in the middle.
	if math.IsInf(row[n/2], 0) {
		return nil, fmt.Errorf("%w: row order %d", ErrOverflow, n)
	}
	return row, nil
}

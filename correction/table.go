package correction

import "slices"

// Table maps a minimizer count to the number of false-positive hits to tolerate.
//
// The zero Table is the absent table returned when the threshold is fixed.
// Tables are immutable.
type Table struct {
	min    int
	values []uint64
}

// NewTable returns a table whose first entry belongs to first minimizers.
func NewTable(first int, values []uint64) Table {
	return Table{min: first, values: slices.Clone(values)}
}

// IsZero reports whether t is the absent table.
func (t Table) IsZero() bool { return len(t.values) == 0 }

// Len returns the number of minimizer counts covered.
func (t Table) Len() int { return len(t.values) }

// Min returns the smallest minimizer count covered.
func (t Table) Min() int { return t.min }

// Max returns the largest minimizer count covered.
func (t Table) Max() int { return t.min + len(t.values) - 1 }

// At returns the correction for n minimizers.
func (t Table) At(n int) (uint64, bool) {
	i := n - t.min
	if i < 0 || i >= len(t.values) {
		return 0, false
	}
	return t.values[i], true
}

// Index returns the position of n minimizers, clamped into the table.
func (t Table) Index(n int) int {
	return min(max(n, t.min), t.Max()) - t.min
}

// Clamp returns the correction for n minimizers, using the first or last
// entry when n is outside the table. It returns 0 for the absent table.
func (t Table) Clamp(n int) uint64 {
	if t.IsZero() {
		return 0
	}
	return t.values[t.Index(n)]
}

// Values returns a copy of the entries.
func (t Table) Values() []uint64 { return slices.Clone(t.values) }

// Equal reports whether both tables cover the same counts with the same entries.
func (t Table) Equal(o Table) bool {
	if t.IsZero() || o.IsZero() {
		return t.IsZero() == o.IsZero()
	}
	return t.min == o.min && slices.Equal(t.values, o.values)
}

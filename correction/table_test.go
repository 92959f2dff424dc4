package correction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	values := []uint64{3, 4, 5}
	table := NewTable(10, values)
	values[0] = 99

	assert.False(t, table.IsZero())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 10, table.Min())
	assert.Equal(t, 12, table.Max())

	v, ok := table.At(10)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), v)
	_, ok = table.At(13)
	assert.False(t, ok)
	_, ok = table.At(9)
	assert.False(t, ok)

	assert.Equal(t, 0, table.Index(1))
	assert.Equal(t, 1, table.Index(11))
	assert.Equal(t, 2, table.Index(500))
	assert.Equal(t, uint64(3), table.Clamp(1))
	assert.Equal(t, uint64(5), table.Clamp(500))

	out := table.Values()
	out[0] = 42
	assert.Equal(t, []uint64{3, 4, 5}, table.Values())
}

func TestTable_Zero(t *testing.T) {
	var zero Table
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, uint64(0), zero.Clamp(7))
	assert.True(t, zero.Equal(NewTable(5, nil)))
	assert.False(t, zero.Equal(NewTable(5, []uint64{1})))
}

func TestTable_Equal(t *testing.T) {
	a := NewTable(1, []uint64{1, 2})
	assert.True(t, a.Equal(NewTable(1, []uint64{1, 2})))
	assert.False(t, a.Equal(NewTable(2, []uint64{1, 2})))
	assert.False(t, a.Equal(NewTable(1, []uint64{1, 3})))
}

package correction

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Bounds(t *testing.T) {
	p := scenarioParams()
	assert.Equal(t, 20, p.KmerSize())

	minimal, maximal := p.Bounds()
	assert.Equal(t, 57, minimal)
	assert.Equal(t, 228, maximal)
}

func TestParams_CacheDir(t *testing.T) {
	p := scenarioParams()
	assert.Equal(t, "/data/hibf", p.CacheDir())

	p.IndexFile = "raptor.index"
	assert.Equal(t, ".", p.CacheDir())

	p.IndexFile = ""
	assert.Equal(t, ".", p.CacheDir())
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, scenarioParams().Validate())

	p := scenarioParams()
	p.FPR = math.NaN()
	err := p.Validate()
	require.ErrorIs(t, err, ErrConfiguration)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "fpr", cfgErr.Field)

	p = scenarioParams()
	p.WindowSize = 20
	err = p.Validate()
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "window_size", cfgErr.Field)
	assert.Contains(t, err.Error(), "k-mer size 20")

	p = scenarioParams()
	p.PatternSize = 0
	assert.ErrorIs(t, p.Validate(), ErrConfiguration)

	p = scenarioParams()
	p.PMax = -0.5
	assert.ErrorIs(t, p.Validate(), ErrConfiguration)
}

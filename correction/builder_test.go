package correction

import (
	"slices"
	"testing"

	"github.com/mr-c/raptor/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioParams() Params {
	return Params{
		PatternSize: 250,
		WindowSize:  23,
		Shape:       Ungapped(20),
		FPR:         0.05,
		PMax:        0.01,
		IndexFile:   "/data/hibf/raptor.index",
	}
}

func TestBuild_Scenario(t *testing.T) {
	table, err := Build(scenarioParams())
	require.NoError(t, err)

	assert.Equal(t, 57, table.Min())
	assert.Equal(t, 228, table.Max())
	assert.Equal(t, 172, table.Len())

	for n, want := range map[int]uint64{57: 7, 100: 10, 228: 0} {
		got, ok := table.At(n)
		require.True(t, ok, n)
		assert.Equal(t, want, got, "n=%d", n)
	}
	assert.Equal(t, uint64(12), slices.Max(table.Values()))
}

func TestBuild_ProbabilityBound(t *testing.T) {
	for _, p := range []Params{
		scenarioParams(),
		{PatternSize: 100, WindowSize: 24, Shape: Ungapped(19), FPR: 0.05, PMax: 0.01},
		{PatternSize: 65, WindowSize: 24, Shape: Ungapped(20), FPR: 0.3, PMax: 0.001},
		{PatternSize: 120, WindowSize: 32, Shape: mustShape(t, "1101111011"), FPR: 0.02, PMax: 0.05},
	} {
		table, err := Build(p)
		require.NoError(t, err)

		for n := table.Min(); n <= table.Max(); n++ {
			c, _ := table.At(n)
			m, err := stats.NewModel(n, p.FPR)
			require.NoError(t, err)

			for j := 1; j <= int(c); j++ {
				pj, err := m.Probability(j)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, pj, p.PMax, "n=%d j=%d", n, j)
			}
			if int(c) < n {
				next, err := m.Probability(int(c) + 1)
				require.NoError(t, err)
				assert.Less(t, next, p.PMax, "n=%d", n)
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := Build(scenarioParams())
	require.NoError(t, err)
	b, err := Build(scenarioParams())
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestBuild_OtherConfigurations(t *testing.T) {
	table, err := Build(Params{PatternSize: 65, WindowSize: 24, Shape: Ungapped(20), FPR: 0.3, PMax: 0.001})
	require.NoError(t, err)
	assert.Equal(t, 9, table.Min())
	assert.Equal(t, 42, table.Max())
	assert.Equal(t, []uint64{7, 8, 8, 9, 9}, table.Values()[:5])

	table, err = Build(Params{PatternSize: 100, WindowSize: 24, Shape: Ungapped(19), FPR: 0.05, PMax: 0.01})
	require.NoError(t, err)
	assert.Equal(t, 13, table.Min())
	assert.Equal(t, 77, table.Max())
	assert.Equal(t, uint64(3), table.Clamp(0))
	assert.Equal(t, uint64(8), table.Clamp(1000))
}

func TestBuild_InvalidConfiguration(t *testing.T) {
	base := scenarioParams()

	for name, mutate := range map[string]func(*Params){
		"window equals k":       func(p *Params) { p.WindowSize = 20 },
		"window smaller than k": func(p *Params) { p.WindowSize = 19 },
		"pattern below window":  func(p *Params) { p.PatternSize = 22 },
		"fpr zero":              func(p *Params) { p.FPR = 0 },
		"pmax one":              func(p *Params) { p.PMax = 1 },
		"empty shape":           func(p *Params) { p.Shape = Shape{} },
	} {
		t.Run(name, func(t *testing.T) {
			p := base
			mutate(&p)
			_, err := Build(p)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestCorrection(t *testing.T) {
	tests := []struct {
		n    int
		fpr  float64
		pMax float64
		want uint64
	}{
		// Every count up to n is significant: bounded by n.
		{1, 0.05, 0.01, 1},
		{3, 0.05, 0.01, 3},
		{3, 0.9, 0.01, 3},
		{5, 0.05, 0.01, 2},
		{10, 0.05, 0.01, 3},
		{20, 0.05, 0.0001, 6},
		{100, 0.05, 0.0001, 14},
		{228, 0.05, 0.0001, 25},
		// Nothing significant.
		{5, 0.9, 0.01, 0},
		{20, 0.3, 0.01, 0},
	}
	for _, tt := range tests {
		got, err := Correction(tt.n, tt.fpr, tt.pMax)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d fpr=%v pmax=%v", tt.n, tt.fpr, tt.pMax)
	}
}

func TestCorrection_MonotoneInPMax(t *testing.T) {
	for n := 1; n <= 200; n += 7 {
		loose, err := Correction(n, 0.05, 0.0001)
		require.NoError(t, err)
		strict, err := Correction(n, 0.05, 0.01)
		require.NoError(t, err)
		assert.LessOrEqual(t, strict, loose, "n=%d", n)
	}
}

// A higher false-positive rate never lowers a nonzero correction. The scan
// stops at the first count below pMax, so once P(1) drops below pMax the
// correction collapses to 0; that collapse is the only way it decreases.
// For fpr <= 0.02 it does not happen for n <= 300.
func TestCorrection_MonotoneInFPR(t *testing.T) {
	for _, pMax := range []float64{0.01, 0.001, 0.0001} {
		for n := 10; n <= 300; n++ {
			prev, err := Correction(n, 0.01, pMax)
			require.NoError(t, err)
			for i := 2; i <= 50; i++ {
				fpr := float64(i) / 100
				c, err := Correction(n, fpr, pMax)
				require.NoError(t, err)
				if c < prev {
					assert.Zero(t, c, "n=%d fpr=%v pMax=%v", n, fpr, pMax)
					assert.Greater(t, fpr, 0.02, "n=%d pMax=%v", n, pMax)
				}
				prev = c
			}
		}
	}
}

func TestCorrection_Errors(t *testing.T) {
	_, err := Correction(10, 0, 0.01)
	assert.ErrorIs(t, err, ErrNumericDomain)

	_, err = Correction(stats.MaxRowOrder+1, 0.05, 0.01)
	assert.ErrorIs(t, err, stats.ErrOverflow)
}

func mustShape(t *testing.T, s string) Shape {
	t.Helper()
	shape, err := ParseShape(s)
	require.NoError(t, err)
	return shape
}

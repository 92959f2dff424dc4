package correction

import (
	"math"
	"path/filepath"
)

// Params are the search parameters the correction table depends on.
//
// IndexFile only locates the cache; it does not influence the table.
type Params struct {
	// PatternSize is the length of the query window in residues.
	PatternSize int
	// WindowSize is the minimizer window length.
	WindowSize int
	// Shape is the k-mer shape; its span is the k-mer size.
	Shape Shape
	// FPR is the false-positive rate of the bins.
	FPR float64
	// PMax is the significance bound: counts less likely than this are negligible.
	PMax float64
	// ThresholdOverride is set when the caller fixed the threshold manually;
	// no correction table is used then.
	ThresholdOverride bool
	// IndexFile is the path of the searched index.
	IndexFile string
}

// KmerSize returns the k-mer size derived from the shape.
func (p Params) KmerSize() int { return p.Shape.Size() }

// CacheDir returns the directory that holds cached tables for this index.
func (p Params) CacheDir() string {
	if p.IndexFile == "" {
		return "."
	}
	return filepath.Dir(p.IndexFile)
}

// Bounds returns the smallest and largest number of minimizers a pattern can
// decompose into.
func (p Params) Bounds() (minimal, maximal int) {
	k := p.KmerSize()
	kmersPerWindow := p.WindowSize - k + 1
	kmersPerPattern := p.PatternSize - k + 1
	if kmersPerWindow <= 0 {
		return 0, -1
	}
	minimal = kmersPerPattern / kmersPerWindow
	maximal = p.PatternSize - p.WindowSize + 1
	return minimal, maximal
}

// Validate checks that a correction table can be built from p.
func (p Params) Validate() error {
	k := p.KmerSize()
	switch {
	case p.Shape.Bits == 0:
		return configErrorf("shape", "empty shape")
	case p.WindowSize <= 0:
		return configErrorf("window_size", "must be positive, got %d", p.WindowSize)
	case p.PatternSize <= 0:
		return configErrorf("pattern_size", "must be positive, got %d", p.PatternSize)
	case p.WindowSize == k:
		return configErrorf("window_size", "equals k-mer size %d; probabilistic correction needs window > k", k)
	case p.WindowSize < k:
		return configErrorf("window_size", "%d is smaller than k-mer size %d", p.WindowSize, k)
	case p.PatternSize < p.WindowSize:
		return configErrorf("pattern_size", "%d is shorter than window size %d; no minimizer fits", p.PatternSize, p.WindowSize)
	case !inOpenUnit(p.FPR):
		return configErrorf("fpr", "%v not in (0,1)", p.FPR)
	case !inOpenUnit(p.PMax):
		return configErrorf("p_max", "%v not in (0,1)", p.PMax)
	}

	if minimal, maximal := p.Bounds(); maximal < minimal {
		return configErrorf("pattern_size", "empty minimizer range [%d, %d]", minimal, maximal)
	}
	return nil
}

func inOpenUnit(v float64) bool {
	return !math.IsNaN(v) && v > 0 && v < 1
}

package layout

import (
	"errors"
	"fmt"
)

// ErrMissingParameters is returned when neither the layout nor the command
// line provide a required parameter.
var ErrMissingParameters = errors.New("layout: missing parameters")

// Settings are parameters given explicitly by the user. Zero means unset.
type Settings struct {
	KmerSize          int
	WindowSize        int
	FalsePositiveRate float64
	NumHashFunctions  int
}

// Mismatch records an explicit setting that differs from the layout.
// The explicit setting wins.
type Mismatch struct {
	Field  string
	Given  any
	Layout any
}

func (m Mismatch) String() string {
	return fmt.Sprintf("given %s (%v) differs from %s in the layout file (%v)", m.Field, m.Given, m.Field, m.Layout)
}

// Resolve fills unset fields of given from cfg. cfg is used only if found is
// true. Explicit settings that disagree with the layout are kept and
// reported as mismatches.
func Resolve(given Settings, cfg Config, found bool) (Settings, []Mismatch, error) {
	if !found {
		if given.KmerSize == 0 || given.NumHashFunctions == 0 || given.FalsePositiveRate == 0 {
			return given, nil, fmt.Errorf("%w: could not read config from layout file, set k-mer size, hash count and fpr", ErrMissingParameters)
		}
		if given.WindowSize == 0 {
			given.WindowSize = given.KmerSize
		}
		return given, nil, nil
	}

	var mismatches []Mismatch
	out := given

	switch {
	case given.KmerSize == 0:
		out.KmerSize = cfg.KmerSize
	case given.KmerSize != cfg.KmerSize:
		mismatches = append(mismatches, Mismatch{Field: "k-mer size", Given: given.KmerSize, Layout: cfg.KmerSize})
	}

	switch {
	case given.WindowSize == 0 && cfg.WindowSize > 0:
		out.WindowSize = cfg.WindowSize
	case given.WindowSize == 0:
		out.WindowSize = out.KmerSize
	case cfg.WindowSize > 0 && given.WindowSize != cfg.WindowSize:
		mismatches = append(mismatches, Mismatch{Field: "window size", Given: given.WindowSize, Layout: cfg.WindowSize})
	}

	switch {
	case given.NumHashFunctions == 0:
		out.NumHashFunctions = cfg.NumHashFunctions
	case given.NumHashFunctions != cfg.NumHashFunctions:
		mismatches = append(mismatches, Mismatch{Field: "hash function count", Given: given.NumHashFunctions, Layout: cfg.NumHashFunctions})
	}

	switch {
	case given.FalsePositiveRate == 0:
		out.FalsePositiveRate = cfg.FalsePositiveRate
	case given.FalsePositiveRate != cfg.FalsePositiveRate:
		mismatches = append(mismatches, Mismatch{Field: "false positive rate", Given: given.FalsePositiveRate, Layout: cfg.FalsePositiveRate})
	}

	return out, mismatches, nil
}

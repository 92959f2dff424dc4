package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mr-c/raptor"
	"github.com/mr-c/raptor/correction"
	"github.com/mr-c/raptor/layout"
)

const (
	defaultKmer = 20
	defaultFPR  = 0.05
	defaultPMax = 0.15
)

// paramFlags are the search parameters shared by compute and warm.
type paramFlags struct {
	fs *flag.FlagSet

	index     string
	layout    string
	minimiser string
	pattern  int
	window   int
	kmer     int
	shape    string
	hash     int
	fpr      float64
	pMax     float64
	override bool
}

func registerParams(fs *flag.FlagSet) *paramFlags {
	p := &paramFlags{fs: fs}
	fs.StringVar(&p.index, "index", "", "index file; tables are cached in its directory")
	fs.StringVar(&p.layout, "layout", "", "layout file whose config block provides k, window, hash and fpr")
	fs.StringVar(&p.minimiser, "minimiser", "", "minimiser file whose .header sidecar provides shape and window")
	fs.IntVar(&p.pattern, "pattern", 0, "pattern size (required)")
	fs.IntVar(&p.window, "window", 0, "window size (default: k-mer size)")
	fs.IntVar(&p.kmer, "kmer", defaultKmer, "k-mer size")
	fs.StringVar(&p.shape, "shape", "", "k-mer shape as 0/1 string (overrides -kmer)")
	fs.IntVar(&p.hash, "hash", 2, "number of hash functions")
	fs.Float64Var(&p.fpr, "fpr", defaultFPR, "false positive rate of the bins")
	fs.Float64Var(&p.pMax, "p-max", defaultPMax, "significance bound p_max")
	fs.BoolVar(&p.override, "threshold-override", false, "threshold is fixed; no correction table is used")
	return p
}

func (p *paramFlags) isSet(name string) bool {
	set := false
	p.fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// resolve combines explicit flags with the layout config.
func (p *paramFlags) resolve(log *raptor.Logger) (correction.Params, error) {
	if p.pattern <= 0 {
		return correction.Params{}, fmt.Errorf("-pattern must be positive, got %d", p.pattern)
	}

	shape := correction.Ungapped(p.kmer)
	if p.shape != "" {
		s, err := correction.ParseShape(p.shape)
		if err != nil {
			return correction.Params{}, err
		}
		shape = s
	}
	window := p.window
	explicitShape := p.isSet("kmer") || p.isSet("shape")

	if p.minimiser != "" {
		for _, name := range []string{"shape", "kmer", "window"} {
			if p.isSet(name) {
				return correction.Params{}, fmt.Errorf("cannot set -%s when using -minimiser", name)
			}
		}
		h, err := layout.ReadMinimiserHeaderFile(p.minimiser)
		if err != nil {
			return correction.Params{}, err
		}
		shape, window, explicitShape = h.Shape, h.WindowSize, true
	}

	settings := layout.Settings{
		WindowSize:        window,
		FalsePositiveRate: p.fpr,
		NumHashFunctions:  p.hash,
		KmerSize:          shape.Size(),
	}

	if p.layout != "" {
		given := layout.Settings{WindowSize: window}
		if explicitShape {
			given.KmerSize = shape.Size()
		}
		if p.isSet("hash") {
			given.NumHashFunctions = p.hash
		}
		if p.isSet("fpr") {
			given.FalsePositiveRate = p.fpr
		}

		cfg, err := layout.ReadConfigFile(p.layout)
		found := err == nil
		if err != nil && !errors.Is(err, layout.ErrNoConfig) {
			return correction.Params{}, err
		}

		resolved, mismatches, err := layout.Resolve(given, cfg, found)
		if err != nil {
			return correction.Params{}, err
		}
		for _, m := range mismatches {
			log.Warn(m.String()+"; the results may be suboptimal", "layout", p.layout)
		}
		settings = resolved
		if settings.KmerSize != shape.Size() {
			shape = correction.Ungapped(settings.KmerSize)
		}
	}

	window = settings.WindowSize
	if window == 0 {
		window = shape.Size()
	}

	return correction.Params{
		PatternSize:       p.pattern,
		WindowSize:        window,
		Shape:             shape,
		FPR:               settings.FalsePositiveRate,
		PMax:              p.pMax,
		ThresholdOverride: p.override,
		IndexFile:         p.index,
	}, nil
}

// commonFlags configure logging and the artifact store.
type commonFlags struct {
	store       string
	compression string
	logLevel    string
	noCache     bool
}

func registerCommon(fs *flag.FlagSet) *commonFlags {
	c := &commonFlags{}
	fs.StringVar(&c.store, "store", "local", "artifact store: local, s3, minio, dynamo or redis")
	fs.StringVar(&c.compression, "compression", "none", "artifact compression: none, lz4 or zstd")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.BoolVar(&c.noCache, "no-cache", false, "do not read or write stored tables")
	return c
}

func (c *commonFlags) logger(w io.Writer) (*raptor.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}
	return raptor.NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func parseUints(s string) ([]uint64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid count %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

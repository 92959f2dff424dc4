package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/mr-c/raptor"
	"github.com/mr-c/raptor/codec"
	"github.com/mr-c/raptor/correction"
	"github.com/mr-c/raptor/internal/compress"
	"github.com/mr-c/raptor/threshold"
)

type tableReport struct {
	Key         string   `json:"key"`
	Minimal     int      `json:"minimal"`
	Maximal     int      `json:"maximal"`
	Corrections []uint64 `json:"corrections"`
	Thresholds  []uint64 `json:"thresholds,omitempty"`
}

func runCompute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("compute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	params := registerParams(fs)
	common := registerCommon(fs)
	asJSON := fs.Bool("json", false, "print the table as JSON")
	baseList := fs.String("base", "", "base thresholds: one for every minimizer count, or one per count; prints the applied thresholds")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	base, err := parseUints(*baseList)
	if err != nil {
		return fmt.Errorf("-base: %w", err)
	}

	log, err := common.logger(stderr)
	if err != nil {
		return err
	}
	p, err := params.resolve(log)
	if err != nil {
		return err
	}

	c, err := newCorrector(ctx, common, p, log)
	if err != nil {
		return err
	}

	table, err := c.Precompute(ctx, p)
	switch {
	case errors.Is(err, raptor.ErrCacheWrite):
		log.Warn("table computed but not stored", "error", err)
	case errors.Is(err, raptor.ErrCacheRead):
		return fmt.Errorf("%w (rerun with -no-cache to skip the store)", err)
	case err != nil:
		return err
	}

	if table.IsZero() {
		fmt.Fprintln(stdout, "threshold override set; no correction table is used")
		return nil
	}

	var thresholds []uint64
	if base != nil {
		if thresholds, err = applyThresholds(base, table); err != nil {
			return err
		}
	}
	return printTable(stdout, correction.Key(p), table, thresholds, *asJSON)
}

// applyThresholds returns the probabilistic threshold for every minimizer
// count of t. A single base value applies to all counts.
func applyThresholds(base []uint64, t correction.Table) ([]uint64, error) {
	if len(base) == 1 && t.Len() > 1 {
		base = slices.Repeat(base, t.Len())
	}
	th, err := threshold.NewProbabilistic(base, t)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, t.Len())
	for i := range out {
		out[i] = th.Get(t.Min() + i)
	}
	return out, nil
}

func newCorrector(ctx context.Context, common *commonFlags, p correction.Params, log *raptor.Logger, extra ...raptor.Option) (*raptor.Corrector, error) {
	ct, err := compress.ParseType(common.compression)
	if err != nil {
		return nil, err
	}

	opts := []raptor.Option{
		raptor.WithLogger(log),
		raptor.WithCompression(ct),
		raptor.WithCaching(!common.noCache),
	}
	if !common.noCache && common.store != "local" {
		store, err := openStore(ctx, common.store, p.CacheDir())
		if err != nil {
			return nil, err
		}
		opts = append(opts, raptor.WithStore(store))
	}
	return raptor.New(append(opts, extra...)...), nil
}

func printTable(w io.Writer, key string, t correction.Table, thresholds []uint64, asJSON bool) error {
	if asJSON {
		data, err := codec.MarshalIndent(codec.Default, tableReport{
			Key:         key,
			Minimal:     t.Min(),
			Maximal:     t.Max(),
			Corrections: t.Values(),
			Thresholds:  thresholds,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if key != "" {
		fmt.Fprintf(tw, "key\t%s\n", key)
	}
	fmt.Fprintf(tw, "minimal\t%d\n", t.Min())
	fmt.Fprintf(tw, "maximal\t%d\n", t.Max())
	fmt.Fprintf(tw, "entries\t%d\n\n", t.Len())
	if thresholds == nil {
		fmt.Fprintf(tw, "minimizers\tcorrection\n")
		for i, v := range t.Values() {
			fmt.Fprintf(tw, "%d\t%d\n", t.Min()+i, v)
		}
		return tw.Flush()
	}
	fmt.Fprintf(tw, "minimizers\tcorrection\tthreshold\n")
	for i, v := range t.Values() {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", t.Min()+i, v, thresholds[i])
	}
	return tw.Flush()
}

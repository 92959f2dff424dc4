package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mr-c/raptor"
	"github.com/mr-c/raptor/correction"
)

func runWarm(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("warm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	params := registerParams(fs)
	common := registerCommon(fs)
	fprList := fs.String("fpr-list", "", "comma separated false positive rates (default: -fpr)")
	pMaxList := fs.String("pmax-list", "", "comma separated p_max values (default: -p-max)")
	jobs := fs.Int("jobs", runtime.GOMAXPROCS(0), "concurrent table builds")
	opsPerSec := fs.Float64("store-rate", 0, "store operations per second (0: unlimited)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *jobs < 1 {
		*jobs = 1
	}

	log, err := common.logger(stderr)
	if err != nil {
		return err
	}
	base, err := params.resolve(log)
	if err != nil {
		return err
	}
	if base.ThresholdOverride {
		fmt.Fprintln(stdout, "threshold override set; nothing to warm")
		return nil
	}

	fprs, err := parseFloats(*fprList)
	if err != nil {
		return fmt.Errorf("-fpr-list: %w", err)
	}
	if len(fprs) == 0 {
		fprs = []float64{base.FPR}
	}
	pMaxs, err := parseFloats(*pMaxList)
	if err != nil {
		return fmt.Errorf("-pmax-list: %w", err)
	}
	if len(pMaxs) == 0 {
		pMaxs = []float64{base.PMax}
	}

	grid := make([]correction.Params, 0, len(fprs)*len(pMaxs))
	for _, fpr := range fprs {
		for _, pMax := range pMaxs {
			p := base
			p.FPR, p.PMax = fpr, pMax
			if err := p.Validate(); err != nil {
				return err
			}
			grid = append(grid, p)
		}
	}

	metrics := &raptor.BasicMetricsCollector{}
	c, err := newCorrector(ctx, common, base, log,
		raptor.WithMetricsCollector(metrics),
		raptor.WithResourceLimits(0, int64(*jobs), *opsPerSec),
	)
	if err != nil {
		return err
	}

	var unstored atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*jobs)
	for _, p := range grid {
		g.Go(func() error {
			_, err := c.Precompute(gctx, p)
			if errors.Is(err, raptor.ErrCacheWrite) {
				unstored.Add(1)
				log.Warn("table computed but not stored", "key", correction.Key(p), "error", err)
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	stats := metrics.GetStats()
	fmt.Fprintf(stdout, "tables: %d, loaded: %d, built: %d, rebuilt: %d, unstored: %d\n",
		len(grid), stats.LoadHits, stats.BuildCount, stats.Corruptions, unstored.Load())
	return nil
}

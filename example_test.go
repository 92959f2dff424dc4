package raptor_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mr-c/raptor"
	"github.com/mr-c/raptor/blobstore"
	"github.com/mr-c/raptor/correction"
)

// Example demonstrates computing a correction table without persisting it.
func Example() {
	shape, err := correction.ParseShape("11111111111111111111")
	if err != nil {
		log.Fatal(err)
	}

	table, err := raptor.PrecomputeCorrection(context.Background(), correction.Params{
		PatternSize: 250,
		WindowSize:  23,
		Shape:       shape,
		FPR:         0.05,
		PMax:        0.01,
	}, raptor.WithCaching(false))
	if err != nil {
		log.Fatal(err)
	}

	extra, _ := table.At(100)
	fmt.Println(table.Min(), table.Max(), table.Len(), extra)
	// Output: 57 228 172 10
}

// Example_threshold demonstrates that a fixed threshold needs no table.
func Example_threshold() {
	table, err := raptor.PrecomputeCorrection(context.Background(), correction.Params{
		PatternSize:       65,
		WindowSize:        24,
		Shape:             correction.Ungapped(20),
		ThresholdOverride: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(table.IsZero())
	// Output: true
}

// ExampleNew demonstrates sharing tables through a store.
func ExampleNew() {
	dir, err := os.MkdirTemp("", "raptor-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	metrics := &raptor.BasicMetricsCollector{}
	c := raptor.New(
		raptor.WithStore(blobstore.NewLocalStore(dir)),
		raptor.WithCompression(raptor.CompressionLZ4),
		raptor.WithMetricsCollector(metrics),
	)

	p := correction.Params{
		PatternSize: 100,
		WindowSize:  24,
		Shape:       correction.Ungapped(19),
		FPR:         0.05,
		PMax:        0.01,
	}
	table, err := c.Precompute(context.Background(), p)
	if err != nil {
		log.Fatal(err)
	}

	names, err := correction.NewBlobCache(blobstore.NewLocalStore(dir)).List(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(table.Clamp(0), table.Clamp(1000), len(names), metrics.GetStats().BuildCount)
	// Output: 3 8 1 1
}

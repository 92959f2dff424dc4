// Command raptor-correction computes, warms and inspects the false-positive
// correction tables used by raptor searches.
//
// Usage:
//
//	raptor-correction compute -index index.hibf -pattern 250 -window 23 -kmer 20
//	raptor-correction warm -index index.hibf -pattern 250 -fpr-list 0.01,0.05 -pmax-list 0.01,0.15
//	raptor-correction inspect correction_fa_17_fffff_3f847ae147ae147b_3fa999999999999a.bin
//
// Store backends are configured through the environment; a .env file in the
// working directory is loaded if present.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

var errUsage = errors.New("usage")

func main() {
	// Load .env file if it exists (for store credentials)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}

	switch args[0] {
	case "compute":
		return runCompute(ctx, args[1:], stdout, stderr)
	case "warm":
		return runWarm(ctx, args[1:], stdout, stderr)
	case "inspect":
		return runInspect(ctx, args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return errUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: raptor-correction <command> [options]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  compute   compute or load the correction table for one parameter set\n")
	fmt.Fprintf(w, "  warm      precompute tables for a grid of fpr and p_max values\n")
	fmt.Fprintf(w, "  inspect   decode a stored table, or list stored tables\n\n")
	fmt.Fprintf(w, "Run 'raptor-correction <command> -h' for command options.\n")
}

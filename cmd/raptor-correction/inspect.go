package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mr-c/raptor/blobstore"
	"github.com/mr-c/raptor/correction"
)

func runInspect(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	storeKind := fs.String("store", "", "read from this store instead of a file: local, s3, minio, dynamo or redis")
	dir := fs.String("dir", ".", "directory of the local store")
	list := fs.Bool("list", false, "list stored tables")
	asJSON := fs.Bool("json", false, "print the table as JSON")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: raptor-correction inspect [options] <artifact>...\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *list {
		store, err := openStore(ctx, *storeKind, *dir)
		if err != nil {
			return err
		}
		names, err := correction.NewBlobCache(store).List(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	var store blobstore.BlobStore
	if *storeKind != "" {
		s, err := openStore(ctx, *storeKind, *dir)
		if err != nil {
			return err
		}
		store = s
	}

	for i, name := range fs.Args() {
		var (
			data []byte
			err  error
		)
		if store != nil {
			data, err = blobstore.ReadAll(ctx, store, name)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return err
		}

		t, err := correction.Decode(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		key := filepath.Base(name)
		if !correction.IsKey(key) {
			key = ""
		}
		if i > 0 && !*asJSON {
			fmt.Fprintln(stdout)
		}
		if err := printTable(stdout, key, t, nil, *asJSON); err != nil {
			return err
		}
	}
	return nil
}

// Package raptor precomputes the false-positive correction tables used when
// searching a hierarchical interleaved Bloom filter (HIBF).
//
// A query pattern of length p decomposes into between minimal and maximal
// minimizers. For every count n in that range the correction is the number of
// additional bin hits that false positives alone explain with probability at
// least p_max. The search adds it to the base threshold so that noise does
// not produce spurious matches.
//
// # Quick Start
//
//	shape, _ := correction.ParseShape("11111111111111111111")
//	t, err := raptor.PrecomputeCorrection(ctx, correction.Params{
//	    PatternSize: 250,
//	    WindowSize:  23,
//	    Shape:       shape,
//	    FPR:         0.05,
//	    PMax:        0.01,
//	    IndexFile:   "/data/index.hibf",
//	})
//	if err != nil && !errors.Is(err, raptor.ErrCacheWrite) {
//	    return err
//	}
//	extra := t.Clamp(minimizers)
//
// # Caching
//
// Tables depend only on the pattern size, window size, shape, fpr and p_max.
// By default they are stored next to the index file as
//
//	correction_<p>_<w>_<shape>_<p_max>_<fpr>.bin
//
// and reused by later runs. Any blobstore.BlobStore can hold them instead:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("raptor/"))
//	c := raptor.New(raptor.WithStore(store), raptor.WithCompression(raptor.CompressionZstd))
//
// Corrupt artifacts and artifacts of another format version are discarded
// and rebuilt. A store that cannot be read fails with ErrCacheRead; callers
// may retry with WithCaching(false).
//
// # Observability
//
// Logging uses log/slog through Logger; metrics are reported to a
// MetricsCollector.
package raptor

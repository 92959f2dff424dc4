// Package correction computes and persists the false-positive correction table.
//
// A query of pattern length p decomposes into between Min and Max minimizers.
// Every minimizer is tested against every bin; a bin that does not contain the
// query still answers positive with probability fpr. For each possible
// minimizer count n, the table stores how many such accidental hits are
// tolerated before the count is considered significant:
//
//	c(n) = max{ k in [0, n] : P(X = j) >= pMax for all 1 <= j <= k },  X ~ Binomial(n, fpr)
//
// The search adds c(n) to its base threshold when a query yields n minimizers.
//
// # Building
//
//	params := correction.Params{
//	    PatternSize: 250,
//	    WindowSize:  23,
//	    Shape:       correction.Ungapped(20),
//	    FPR:         0.05,
//	    PMax:        0.01,
//	    IndexFile:   "/data/raptor.index",
//	}
//	table, err := correction.Build(params)
//
// # Caching
//
// Tables depend only on the parameters, so they are persisted next to the
// index under a name derived by [Key]. [BlobCache] reads and writes them
// through any blobstore; [Disabled] turns caching off without touching the
// computation.
package correction

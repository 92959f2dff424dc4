// Package s3 stores correction artifacts in Amazon S3 or an S3-compatible service.
//
// # Usage
//
//	store, err := s3.New(ctx, "shared-hibf-cache",
//	    s3.WithPrefix("corrections/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
// Artifacts are published with If-None-Match: * and a CRC32C checksum, so the
// first writer of a key wins and S3 rejects bodies damaged in transit. A
// conflicting write is reported as success: every writer of a key produces the
// same bytes. Whole-artifact reads go through the transfer manager's
// Downloader.
package s3

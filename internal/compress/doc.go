// Package compress frames byte blocks with optional LZ4 or Zstd compression.
//
// Every block carries an 8-byte header:
//
//	[UncompressedSize uint32][CompressedSize uint32][Data...]
//
// CompressedSize == 0 means the data is stored as is. Blocks whose compressed
// form is not at least 10% smaller are stored uncompressed.
package compress

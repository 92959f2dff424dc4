package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress_RoundTrip(t *testing.T) {
	compressible := bytes.Repeat([]byte("ACGTACGT"), 512)
	random := []byte{0x13, 0x7f, 0x00, 0xa1, 0x42}

	for _, typ := range []Type{None, LZ4, Zstd} {
		for _, data := range [][]byte{compressible, random, {}} {
			block, err := Compress(data, typ)
			require.NoError(t, err)

			got, err := Decompress(block, typ)
			require.NoError(t, err, "type=%s", typ)
			assert.Equal(t, len(data), len(got))
			assert.True(t, bytes.Equal(data, got), "type=%s", typ)
		}
	}
}

func TestCompress_ShrinksCompressibleData(t *testing.T) {
	data := bytes.Repeat([]byte{0}, 4096)
	for _, typ := range []Type{LZ4, Zstd} {
		block, err := Compress(data, typ)
		require.NoError(t, err)
		assert.Less(t, len(block), len(data)/2, "type=%s", typ)
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	data := bytes.Repeat([]byte("raptor"), 300)
	block, err := Compress(data, Zstd)
	require.NoError(t, err)

	_, err = Decompress(block[:4], Zstd)
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decompress(block[:len(block)-1], Zstd)
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decompress(append(append([]byte{}, block...), 0), Zstd)
	assert.ErrorIs(t, err, ErrCorrupt)

	mangled := append([]byte{}, block...)
	for i := headerSize; i < len(mangled); i++ {
		mangled[i] ^= 0xff
	}
	_, err = Decompress(mangled, Zstd)
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decompress(block, None)
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decompress(block, Type(9))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{None, LZ4, Zstd} {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	_, err := ParseType("brotli")
	assert.Error(t, err)
}

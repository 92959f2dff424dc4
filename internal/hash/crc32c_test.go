package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C_KnownVector(t *testing.T) {
	// RFC 3720 B.4: 32 bytes of zeros.
	assert.Equal(t, uint32(0x8a9136aa), CRC32C(make([]byte, 32)))
}

func TestCRC32C_StreamingMatchesOneShot(t *testing.T) {
	data := []byte("correction_fa_17_fffff")
	h := NewCRC32C()
	_, _ = h.Write(data[:7])
	_, _ = h.Write(data[7:])
	assert.Equal(t, CRC32C(data), h.Sum32())
}

func TestCRC32CBase64(t *testing.T) {
	// "123456789" -> 0xe3069283
	assert.Equal(t, "4waSgw==", CRC32CBase64([]byte("123456789")))
}

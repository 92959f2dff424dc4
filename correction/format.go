package correction

import (
	"encoding/binary"
	"fmt"

	"github.com/mr-c/raptor/internal/compress"
	"github.com/mr-c/raptor/internal/hash"
)

const (
	artifactMagic   = 0x524f4352 // "RCOR"
	artifactVersion = 1

	// headerSize:
	// Magic (4) | Version (4) | Compression (1) | Reserved (3) | Checksum (4) | PayloadLength (4)
	headerSize = 20
)

// Encode serializes t into the artifact format.
//
// Format (little endian):
//
//	Magic         uint32  "RCOR"
//	Version       uint32
//	Compression   uint8   compress.Type of the payload block
//	Reserved      [3]byte
//	Checksum      uint32  CRC32C of the payload block
//	PayloadLength uint32
//	Payload       compress block of:
//	  Min    uvarint
//	  Count  uvarint
//	  Values Count x uvarint
func Encode(t Table, c compress.Type) ([]byte, error) {
	if t.IsZero() {
		return nil, fmt.Errorf("%w: cannot encode an empty table", ErrConfiguration)
	}
	if t.min < 0 {
		return nil, fmt.Errorf("%w: negative minimizer count %d", ErrConfiguration, t.min)
	}

	raw := make([]byte, 0, 2*binary.MaxVarintLen64+len(t.values)*2)
	raw = binary.AppendUvarint(raw, uint64(t.min))
	raw = binary.AppendUvarint(raw, uint64(len(t.values)))
	for _, v := range t.values {
		raw = binary.AppendUvarint(raw, v)
	}

	block, err := compress.Compress(raw, c)
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize, headerSize+len(block))
	binary.LittleEndian.PutUint32(out[0:4], artifactMagic)
	binary.LittleEndian.PutUint32(out[4:8], artifactVersion)
	out[8] = byte(c)
	binary.LittleEndian.PutUint32(out[12:16], hash.CRC32C(block))
	binary.LittleEndian.PutUint32(out[16:20], uint32(len(block)))
	return append(out, block...), nil
}

// Decode parses an artifact written by Encode.
//
// Foreign magic numbers and versions yield ErrFormatVersion; every other
// inconsistency yields ErrCorruptArtifact.
func Decode(data []byte) (Table, error) {
	if len(data) < headerSize {
		return Table{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorruptArtifact, len(data))
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != artifactMagic {
		return Table{}, fmt.Errorf("%w: magic 0x%08x", ErrFormatVersion, magic)
	}
	if version := binary.LittleEndian.Uint32(data[4:8]); version != artifactVersion {
		return Table{}, fmt.Errorf("%w: version %d", ErrFormatVersion, version)
	}

	c := compress.Type(data[8])
	if !c.Valid() {
		return Table{}, fmt.Errorf("%w: compression %d", ErrCorruptArtifact, data[8])
	}
	checksum := binary.LittleEndian.Uint32(data[12:16])
	length := binary.LittleEndian.Uint32(data[16:20])

	block := data[headerSize:]
	if uint64(len(block)) != uint64(length) {
		return Table{}, fmt.Errorf("%w: payload has %d bytes, header says %d", ErrCorruptArtifact, len(block), length)
	}
	if hash.CRC32C(block) != checksum {
		return Table{}, fmt.Errorf("%w: checksum mismatch", ErrCorruptArtifact)
	}

	raw, err := compress.Decompress(block, c)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrCorruptArtifact, err)
	}

	pb := payloadReader{buf: raw}
	first := pb.uvarint()
	count := pb.uvarint()
	if pb.err == nil && (count == 0 || count > uint64(len(raw))) {
		return Table{}, fmt.Errorf("%w: implausible entry count %d", ErrCorruptArtifact, count)
	}
	if pb.err == nil && first > uint64(maxInt) {
		return Table{}, fmt.Errorf("%w: minimizer count %d out of range", ErrCorruptArtifact, first)
	}

	values := make([]uint64, 0, min(count, uint64(len(raw))))
	for i := uint64(0); i < count && pb.err == nil; i++ {
		values = append(values, pb.uvarint())
	}
	if pb.err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrCorruptArtifact, pb.err)
	}
	if pb.pos != len(raw) {
		return Table{}, fmt.Errorf("%w: %d trailing bytes", ErrCorruptArtifact, len(raw)-pb.pos)
	}

	return Table{min: int(first), values: values}, nil
}

const maxInt = int(^uint(0) >> 1)

type payloadReader struct {
	buf []byte
	pos int
	err error
}

func (p *payloadReader) uvarint() uint64 {
	if p.err != nil {
		return 0
	}
	v, n := binary.Uvarint(p.buf[p.pos:])
	if n <= 0 {
		p.err = fmt.Errorf("bad uvarint at offset %d", p.pos)
		return 0
	}
	p.pos += n
	return v
}

package correction

import (
	"math/bits"
	"strconv"
	"strings"
)

// Shape is a k-mer shape as a bit pattern, read from right to left.
//
// A set bit is an informative position, a cleared bit a gap. "11011" is a
// gapped shape of span 5 with 4 informative positions. Ungapped shapes are
// all ones.
type Shape struct {
	Bits uint64
}

// Ungapped returns the contiguous shape of length k.
func Ungapped(k int) Shape {
	if k <= 0 {
		return Shape{}
	}
	if k >= 64 {
		return Shape{Bits: ^uint64(0)}
	}
	return Shape{Bits: (uint64(1) << k) - 1}
}

// ParseShape parses a shape given as a string of 0s and 1s.
func ParseShape(s string) (Shape, error) {
	if s == "" {
		return Shape{}, configErrorf("shape", "empty shape")
	}
	if len(s) > 64 {
		return Shape{}, configErrorf("shape", "%q spans %d positions, at most 64 are supported", s, len(s))
	}
	if strings.Trim(s, "01") != "" {
		return Shape{}, configErrorf("shape", "%q must only contain 0 and 1", s)
	}
	if s[0] != '1' || s[len(s)-1] != '1' {
		return Shape{}, configErrorf("shape", "%q must start and end with 1", s)
	}
	v, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		return Shape{}, configErrorf("shape", "%v", err)
	}
	return Shape{Bits: v}, nil
}

// Size returns the span of the shape. This is the k-mer size used to derive
// minimizer counts.
func (s Shape) Size() int {
	return 64 - bits.LeadingZeros64(s.Bits)
}

// Count returns the number of informative positions.
func (s Shape) Count() int {
	return bits.OnesCount64(s.Bits)
}

// IsUngapped reports whether the shape has no gaps.
func (s Shape) IsUngapped() bool {
	return s.Bits != 0 && s.Count() == s.Size()
}

// String returns the shape as a 0/1 string.
func (s Shape) String() string {
	return strconv.FormatUint(s.Bits, 2)
}

package correction

import (
	"math"
	"strconv"
	"strings"
)

const (
	keyPrefix = "correction_"
	keySuffix = ".bin"
)

// Key returns the artifact name for p.
//
// Integers are written in hexadecimal and the two rates by the hexadecimal
// form of their IEEE-754 bits, fixed at 16 digits. Fields are separated by
// '_', which no field can contain, so two parameter sets share a key exactly
// when pattern size, window size, shape, PMax and FPR are all equal. The
// result only uses [0-9a-z_.].
func Key(p Params) string {
	var b strings.Builder
	b.Grow(len(keyPrefix) + 3*17 + 2*17 + len(keySuffix))

	b.WriteString(keyPrefix)
	b.WriteString(strconv.FormatUint(uint64(p.PatternSize), 16))
	b.WriteByte('_')
	b.WriteString(strconv.FormatUint(uint64(p.WindowSize), 16))
	b.WriteByte('_')
	b.WriteString(strconv.FormatUint(p.Shape.Bits, 16))
	b.WriteByte('_')
	writeFloatBits(&b, p.PMax)
	b.WriteByte('_')
	writeFloatBits(&b, p.FPR)
	b.WriteString(keySuffix)
	return b.String()
}

// IsKey reports whether name looks like an artifact name produced by Key.
func IsKey(name string) bool {
	if !strings.HasPrefix(name, keyPrefix) || !strings.HasSuffix(name, keySuffix) {
		return false
	}
	fields := strings.Split(strings.TrimSuffix(strings.TrimPrefix(name, keyPrefix), keySuffix), "_")
	if len(fields) != 5 {
		return false
	}
	for i, f := range fields {
		if f == "" || (i >= 3 && len(f) != 16) {
			return false
		}
		if _, err := strconv.ParseUint(f, 16, 64); err != nil {
			return false
		}
	}
	return true
}

func writeFloatBits(b *strings.Builder, v float64) {
	s := strconv.FormatUint(math.Float64bits(v), 16)
	for i := len(s); i < 16; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

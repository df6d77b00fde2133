package ascii

import "math/bits"

// DigitCountUint32 returns the number of decimal digits in v, with
// DigitCountUint32(0) == 1.
//
// It avoids a division-per-digit loop: the bit length of v approximates
// its digit count via the fixed-point reciprocal of log2(10) (1233/4096),
// off by at most one digit, which a single comparison against the
// relevant power of ten then corrects.
func DigitCountUint32(v uint32) int {
	x := v | 1 // v=0 still needs a 1-bit length; the comparison below uses v itself
	bitLen := bits.Len32(x)
	t := (bitLen * 1233) >> 12
	if uint64(v) < pow10Uint32[t] {
		return t
	}
	return t + 1
}

// DigitCountInt32 returns the digit count of v's magnitude, excluding any
// sign. math.MinInt32 is handled via its unsigned magnitude.
func DigitCountInt32(v int32) int {
	return DigitCountUint32(magnitudeUint32(v))
}

// DigitCountUint64 is the 64-bit analogue of DigitCountUint32.
func DigitCountUint64(v uint64) int {
	x := v | 1
	bitLen := bits.Len64(x)
	t := (bitLen * 1233) >> 12
	if v < pow10Uint64[t] {
		return t
	}
	return t + 1
}

// DigitCountInt64 returns the digit count of v's magnitude, excluding any
// sign. math.MinInt64 is handled via its unsigned magnitude.
func DigitCountInt64(v int64) int {
	return DigitCountUint64(magnitudeUint64(v))
}

// magnitudeUint32 returns |v| as an unsigned value, correct even for
// math.MinInt32 whose negation overflows int32.
func magnitudeUint32(v int32) uint32 {
	if v >= 0 {
		return uint32(v)
	}
	return uint32(-int64(v))
}

// magnitudeUint64 returns |v| as an unsigned value, correct even for
// math.MinInt64 whose negation overflows int64.
func magnitudeUint64(v int64) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	if v == minInt64 {
		return maxInt64Magnitude
	}
	return uint64(-v)
}

const (
	minInt64          = -9223372036854775808
	maxInt64Magnitude = 9223372036854775808
)

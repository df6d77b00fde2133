package ascii

// FormatNaturalInt32Ascii writes the decimal digits of v into dst starting
// at dst[0] and returns the number of bytes written. v must be
// non-negative; dst must have at least DigitCountInt32(v) bytes of room,
// which the caller (typically buffer.View) is responsible for sizing.
func FormatNaturalInt32Ascii(dst []byte, v int32) int {
	u := uint32(v)
	n := DigitCountUint32(u)
	writeDigitsUint64(dst[:n], uint64(u), n)
	return n
}

// FormatInt32Ascii writes v's decimal representation, including a leading
// '-' for negative values, and returns the byte count. math.MinInt32 is
// pre-encoded since its magnitude does not fit an int32.
func FormatInt32Ascii(dst []byte, v int32) int {
	if v == minInt32 {
		return copy(dst, Int32Min)
	}
	if v < 0 {
		dst[0] = Minus
		n := FormatNaturalInt32Ascii(dst[1:], -v)
		return n + 1
	}
	return FormatNaturalInt32Ascii(dst, v)
}

// FormatNaturalInt64Ascii is the 64-bit analogue of FormatNaturalInt32Ascii.
func FormatNaturalInt64Ascii(dst []byte, v int64) int {
	u := uint64(v)
	n := DigitCountUint64(u)
	writeDigitsUint64(dst[:n], u, n)
	return n
}

// FormatInt64Ascii is the 64-bit analogue of FormatInt32Ascii.
func FormatInt64Ascii(dst []byte, v int64) int {
	if v == minInt64 {
		return copy(dst, Int64Min)
	}
	if v < 0 {
		dst[0] = Minus
		n := FormatNaturalInt64Ascii(dst[1:], -v)
		return n + 1
	}
	return FormatNaturalInt64Ascii(dst, v)
}

const minInt32 = -2147483648

// writeDigitsUint64 writes the n decimal digits of v right-to-left into
// dst[0:n], consuming two digits per twoDigitsTable lookup and falling
// back to a single digit for the (at most one) leftover at the front.
func writeDigitsUint64(dst []byte, v uint64, n int) {
	pos := n
	for v >= 100 {
		q := v / 100
		r := v - q*100
		v = q
		pos -= 2
		dst[pos] = twoDigitsTable[r*2]
		dst[pos+1] = twoDigitsTable[r*2+1]
	}
	if v >= 10 {
		pos -= 2
		dst[pos] = twoDigitsTable[v*2]
		dst[pos+1] = twoDigitsTable[v*2+1]
		return
	}
	pos--
	dst[pos] = Zero + byte(v)
}

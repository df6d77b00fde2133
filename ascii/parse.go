package ascii

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/dbuf/errs"
)

// looksLikeEightDigits and looksLikeFourDigits implement the "looks like
// all-ASCII-digits" SWAR test: for a little-endian-loaded word x, adding
// 0x46 to each byte and OR-ing it with (x - 0x30) leaves the high bit of
// every byte clear only when every byte is in ['0', '9'].
const (
	swarAddMask8  = 0x4646464646464646
	swarSubMask8  = 0x3030303030303030
	swarHighMask8 = 0x8080808080808080

	swarAddMask4  = 0x46464646
	swarSubMask4  = 0x30303030
	swarHighMask4 = 0x80808080
)

func looksLikeEightDigits(x uint64) bool {
	return ((x + swarAddMask8) | (x - swarSubMask8)) & swarHighMask8 == 0
}

func looksLikeFourDigits(x uint32) bool {
	return ((x + swarAddMask4) | (x - swarSubMask4)) & swarHighMask4 == 0
}

// parseEightDigits converts an 8-byte ASCII run already known to pass
// looksLikeEightDigits into its numeric value using the standard SWAR
// digit-pair combine: subtract the ASCII bias, fold adjacent byte pairs
// into two-digit lanes, then fold those into a single 8-digit integer.
func parseEightDigits(x uint64) uint64 {
	const mask = 0x000000FF000000FF
	const mul1 = 0x000F424000000064 // 100 + (1_000_000 << 32)
	const mul2 = 0x0000271000000001 // 1 + (10_000 << 32)

	x -= swarSubMask8
	x = (x * 10) + (x >> 8)
	return (((x & mask) * mul1) + (((x >> 16) & mask) * mul2)) >> 32
}

// parseFourDigits converts a 4-byte ASCII run already known to pass
// looksLikeFourDigits into its numeric value: subtract the ASCII bias,
// fold adjacent byte pairs into two-digit lanes, then combine those lanes.
func parseFourDigits(x uint32) uint32 {
	x -= swarSubMask4
	x = (x * 10) + (x >> 8)
	lo := x & 0xFF
	hi := (x >> 16) & 0xFF
	return lo*100 + hi
}

func overflowBound32(negative bool) [Int32MaxDigits]byte {
	if negative {
		return int32MinAbsDigits10
	}
	return int32MaxDigits10
}

func overflowBound64(negative bool) [Int64MaxDigits]byte {
	if negative {
		return int64MinAbsDigits10
	}
	return int64MaxDigits10
}

// checkDigitBound compares the decimal digits in src (all already verified
// to be '0'-'9') lexicographically against bound; since both have the same
// length, lexicographic and numeric comparison agree. It reports whether
// src strictly exceeds bound.
func checkDigitBound(src []byte, bound []byte) bool {
	for i := range src {
		d := src[i] - Zero
		if d != bound[i] {
			return d > bound[i]
		}
	}
	return false
}

// ParseNaturalInt32Ascii parses a non-negative decimal ASCII sequence with
// no sign, returning errs.ErrNumberFormat on empty input, a non-digit
// byte, or a value exceeding math.MaxInt32.
func ParseNaturalInt32Ascii(src []byte) (int32, error) {
	v, err := parseDigitsUint64(src, Int32MaxDigits, int32MaxDigits10[:])
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ParseInt32Ascii parses a signed decimal ASCII sequence, accepting an
// optional leading '-', returning errs.ErrNumberFormat on empty input, a
// non-digit byte, or overflow of the int32 range.
func ParseInt32Ascii(src []byte) (int32, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: empty input", errs.ErrNumberFormat)
	}
	if string(src) == string(Int32Min) {
		return minInt32, nil
	}
	negative := src[0] == Minus
	digits := src
	if negative {
		digits = src[1:]
	}
	bound := overflowBound32(negative)
	v, err := parseDigitsUint64(digits, Int32MaxDigits, bound[:])
	if err != nil {
		return 0, err
	}
	if negative {
		return -int32(v), nil
	}
	return int32(v), nil
}

// ParseNaturalInt64Ascii is the 64-bit analogue of ParseNaturalInt32Ascii.
func ParseNaturalInt64Ascii(src []byte) (int64, error) {
	v, err := parseDigitsUint64(src, Int64MaxDigits, int64MaxDigits10[:])
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// ParseInt64Ascii is the 64-bit analogue of ParseInt32Ascii.
func ParseInt64Ascii(src []byte) (int64, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: empty input", errs.ErrNumberFormat)
	}
	if string(src) == string(Int64Min) {
		return minInt64, nil
	}
	negative := src[0] == Minus
	digits := src
	if negative {
		digits = src[1:]
	}
	bound := overflowBound64(negative)
	v, err := parseDigitsUint64(digits, Int64MaxDigits, bound[:])
	if err != nil {
		return 0, err
	}
	if negative {
		return -int64(v), nil
	}
	return int64(v), nil
}

// parseDigitsUint64 parses an unsigned decimal run, consuming eight bytes
// at a time via SWAR while they validate as digits, then four, then one,
// and rejects the result if its length hits maxDigits and its value
// lexicographically exceeds bound.
func parseDigitsUint64(src []byte, maxDigits int, bound []byte) (uint64, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: empty input", errs.ErrNumberFormat)
	}
	if len(src) > maxDigits {
		return 0, fmt.Errorf("%w: too many digits", errs.ErrNumberFormat)
	}

	var value uint64
	i := 0
	n := len(src)
	for n-i >= 8 {
		chunk := binary.LittleEndian.Uint64(src[i:])
		if !looksLikeEightDigits(chunk) {
			break
		}
		value = value*100_000_000 + parseEightDigits(chunk)
		i += 8
	}
	for n-i >= 4 {
		chunk := binary.LittleEndian.Uint32(src[i:])
		if !looksLikeFourDigits(chunk) {
			break
		}
		value = value*10_000 + uint64(parseFourDigits(chunk))
		i += 4
	}
	for ; i < n; i++ {
		b := src[i]
		if b < Zero || b > '9' {
			return 0, fmt.Errorf("%w: non-digit byte %q", errs.ErrNumberFormat, b)
		}
		value = value*10 + uint64(b-Zero)
	}

	if len(src) == maxDigits && checkDigitBound(src, bound) {
		return 0, fmt.Errorf("%w: overflow", errs.ErrNumberFormat)
	}

	return value, nil
}

package ascii

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitCountUint32_LiteralScenarios(t *testing.T) {
	require.Equal(t, 1, DigitCountUint32(0))
	require.Equal(t, 3, DigitCountUint32(999))
	require.Equal(t, 4, DigitCountUint32(1000))
	require.Equal(t, 10, DigitCountUint32(math.MaxInt32))
	require.Equal(t, 10, DigitCountUint32(math.MaxUint32))
}

func TestDigitCountUint32_MatchesDecimalStringLength(t *testing.T) {
	values := []uint32{0, 1, 9, 10, 99, 100, 999, 1000, 9999, 10000,
		123456789, math.MaxInt32, math.MaxUint32}
	for _, v := range values {
		t.Run(fmt.Sprint(v), func(t *testing.T) {
			require.Equal(t, len(fmt.Sprint(v)), DigitCountUint32(v))
		})
	}
}

func TestDigitCountUint32_EveryPowerOfTenBoundary(t *testing.T) {
	var bound uint64 = 1
	for digits := 1; digits <= 10; digits++ {
		lo := uint32(bound - 1)
		if bound == 1 {
			lo = 0
		} else {
			require.Equal(t, digits-1, DigitCountUint32(lo), "below boundary 10^%d", digits-1)
		}
		if bound <= math.MaxUint32 {
			require.Equal(t, digits, DigitCountUint32(uint32(bound)), "at boundary 10^%d", digits-1)
		}
		bound *= 10
	}
}

func TestDigitCountInt32_UsesMagnitude(t *testing.T) {
	require.Equal(t, DigitCountUint32(7), DigitCountInt32(7))
	require.Equal(t, DigitCountUint32(7), DigitCountInt32(-7))
	require.Equal(t, 10, DigitCountInt32(math.MinInt32))
	require.Equal(t, 10, DigitCountInt32(math.MaxInt32))
}

func TestDigitCountUint64_LiteralScenarios(t *testing.T) {
	require.Equal(t, 1, DigitCountUint64(0))
	require.Equal(t, 19, DigitCountUint64(uint64(math.MaxInt64)))
	require.Equal(t, 19, DigitCountUint64(9223372036854775808)) // |MinInt64|
	require.Equal(t, 20, DigitCountUint64(math.MaxUint64))
}

func TestDigitCountUint64_MatchesDecimalStringLength(t *testing.T) {
	values := []uint64{0, 1, 9, 10, 999, 1000, 123456789012345, uint64(math.MaxInt64), math.MaxUint64}
	for _, v := range values {
		t.Run(fmt.Sprint(v), func(t *testing.T) {
			require.Equal(t, len(fmt.Sprint(v)), DigitCountUint64(v))
		})
	}
}

func TestDigitCountInt64_UsesMagnitude(t *testing.T) {
	require.Equal(t, DigitCountUint64(7), DigitCountInt64(7))
	require.Equal(t, DigitCountUint64(7), DigitCountInt64(-7))
	require.Equal(t, 19, DigitCountInt64(math.MinInt64))
	require.Equal(t, 19, DigitCountInt64(math.MaxInt64))
}

func BenchmarkDigitCountUint32(b *testing.B) {
	values := []uint32{5, 1234, 987654321, math.MaxUint32}
	b.ResetTimer()
	for b.Loop() {
		for _, v := range values {
			_ = DigitCountUint32(v)
		}
	}
}

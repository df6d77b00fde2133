package ascii

// Minus and Zero are the ASCII bytes used by the formatter and parser.
const (
	Minus byte = '-'
	Zero  byte = '0'
)

// Int32MaxDigits and Int64MaxDigits bound the natural (unsigned magnitude)
// digit count of the respective type: 2147483648 (10 digits) and
// 9223372036854775808 (19 digits).
const (
	Int32MaxDigits = 10
	Int64MaxDigits = 19
)

// Int32Min, Int32Max, Int64Min and Int64Max are the encoded ASCII byte
// sequences for the extreme values of their types. Int32Min and Int64Min
// are the sentinels the signed formatters and parsers special-case.
var (
	Int32Min = []byte("-2147483648")
	Int32Max = []byte("2147483647")
	Int64Min = []byte("-9223372036854775808")
	Int64Max = []byte("9223372036854775807")
)

// int32MaxDigits10 and int32MinAbsDigits10 are the 10-digit decimal
// magnitudes of Int32Max and |Int32Min|, used to reject an overflowing
// natural parse whose length matches Int32MaxDigits.
var (
	int32MaxDigits10    = [Int32MaxDigits]byte{2, 1, 4, 7, 4, 8, 3, 6, 4, 7}
	int32MinAbsDigits10 = [Int32MaxDigits]byte{2, 1, 4, 7, 4, 8, 3, 6, 4, 8}
)

// int64MaxDigits10 and int64MinAbsDigits10 are the analogous 19-digit
// bounds for the 64-bit type.
var (
	int64MaxDigits10    = [Int64MaxDigits]byte{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 7}
	int64MinAbsDigits10 = [Int64MaxDigits]byte{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 8}
)

// twoDigitsTable holds the ASCII encoding of every two-digit decimal pair
// 00..99, packed as 200 bytes so formatting can consume two digits per
// table lookup instead of one digit per division.
var twoDigitsTable = buildTwoDigitsTable()

func buildTwoDigitsTable() [200]byte {
	var t [200]byte
	for n := 0; n < 100; n++ {
		t[n*2] = Zero + byte(n/10)
		t[n*2+1] = Zero + byte(n%10)
	}
	return t
}

// pow10Uint32 holds powers of ten up to 10^9, the largest that fits a
// uint32-bounded digit count; pow10Uint64 extends to 10^19 for the 64-bit
// digit counter's correction compare.
// Index 0 is a sentinel 0, not 10^0: it makes "v < pow10[t]" false for
// every v >= 0 when t computes to 0, so the DigitCount functions never
// return 0.
var pow10Uint32 = [...]uint64{
	0, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

var pow10Uint64 = [...]uint64{
	0, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
	10_000_000_000, 100_000_000_000, 1_000_000_000_000, 10_000_000_000_000,
	100_000_000_000_000, 1_000_000_000_000_000, 10_000_000_000_000_000,
	100_000_000_000_000_000, 1_000_000_000_000_000_000, 10_000_000_000_000_000_000,
}

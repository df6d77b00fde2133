package buffer

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/dbuf/ascii"
	"github.com/arloliu/dbuf/endian"
	"github.com/arloliu/dbuf/errs"
)

// View is the typed accessor layer over any Region: endian-aware get/put
// for integers and floats, byte-range and streaming transfers, ASCII
// integer helpers, and length-prefixed string codecs. It owns no storage
// of its own — all state lives in the wrapped Region.
type View struct {
	region Region
}

// NewView wraps r in a View.
func NewView(r Region) *View { return &View{region: r} }

// Region returns the underlying Region.
func (v *View) Region() Region { return v.region }

// engineOrNative returns engines[0] if present, else the host's native
// engine: an unqualified accessor defaults to native byte order, with an
// optional trailing engine argument for callers that need a specific one.
func engineOrNative(engines []endian.EndianEngine) endian.EndianEngine {
	if len(engines) > 0 {
		return engines[0]
	}

	return endian.GetNativeEndianEngine()
}

// --- 1-byte accessors (no byte order) ---

// GetUint8 reads an unsigned byte at index.
func (v *View) GetUint8(index int) (uint8, error) {
	var tmp [1]byte
	if err := v.region.ReadAt(index, tmp[:], 0, 1); err != nil {
		return 0, err
	}

	return tmp[0], nil
}

// PutUint8 writes an unsigned byte at index.
func (v *View) PutUint8(index int, val uint8) error {
	tmp := [1]byte{val}

	return v.region.WriteAt(index, tmp[:], 0, 1)
}

// GetInt8 reads a signed byte at index.
func (v *View) GetInt8(index int) (int8, error) {
	u, err := v.GetUint8(index)
	return int8(u), err
}

// PutInt8 writes a signed byte at index.
func (v *View) PutInt8(index int, val int8) error {
	return v.PutUint8(index, uint8(val))
}

// GetChar reads a byte at index as an ASCII character.
func (v *View) GetChar(index int) (byte, error) {
	return v.GetUint8(index)
}

// PutChar writes an ASCII character byte at index.
func (v *View) PutChar(index int, val byte) error {
	return v.PutUint8(index, val)
}

// --- 2-byte accessors ---

// GetUint16 reads an unsigned 16-bit integer at index using the optional
// engine, or the native engine if omitted.
func (v *View) GetUint16(index int, engine ...endian.EndianEngine) (uint16, error) {
	var tmp [2]byte
	if err := v.region.ReadAt(index, tmp[:], 0, 2); err != nil {
		return 0, err
	}

	return engineOrNative(engine).Uint16(tmp[:]), nil
}

// PutUint16 writes an unsigned 16-bit integer at index.
func (v *View) PutUint16(index int, val uint16, engine ...endian.EndianEngine) error {
	var tmp [2]byte
	engineOrNative(engine).PutUint16(tmp[:], val)

	return v.region.WriteAt(index, tmp[:], 0, 2)
}

// GetInt16 reads a signed 16-bit integer at index.
func (v *View) GetInt16(index int, engine ...endian.EndianEngine) (int16, error) {
	u, err := v.GetUint16(index, engine...)
	return int16(u), err
}

// PutInt16 writes a signed 16-bit integer at index.
func (v *View) PutInt16(index int, val int16, engine ...endian.EndianEngine) error {
	return v.PutUint16(index, uint16(val), engine...)
}

// --- 4-byte accessors ---

// GetUint32 reads an unsigned 32-bit integer at index.
func (v *View) GetUint32(index int, engine ...endian.EndianEngine) (uint32, error) {
	var tmp [4]byte
	if err := v.region.ReadAt(index, tmp[:], 0, 4); err != nil {
		return 0, err
	}

	return engineOrNative(engine).Uint32(tmp[:]), nil
}

// PutUint32 writes an unsigned 32-bit integer at index.
func (v *View) PutUint32(index int, val uint32, engine ...endian.EndianEngine) error {
	var tmp [4]byte
	engineOrNative(engine).PutUint32(tmp[:], val)

	return v.region.WriteAt(index, tmp[:], 0, 4)
}

// GetInt32 reads a signed 32-bit integer at index.
func (v *View) GetInt32(index int, engine ...endian.EndianEngine) (int32, error) {
	u, err := v.GetUint32(index, engine...)
	return int32(u), err
}

// PutInt32 writes a signed 32-bit integer at index.
func (v *View) PutInt32(index int, val int32, engine ...endian.EndianEngine) error {
	return v.PutUint32(index, uint32(val), engine...)
}

// GetFloat32 reads an IEEE-754 single-precision float at index.
func (v *View) GetFloat32(index int, engine ...endian.EndianEngine) (float32, error) {
	u, err := v.GetUint32(index, engine...)
	return math.Float32frombits(u), err
}

// PutFloat32 writes an IEEE-754 single-precision float at index.
func (v *View) PutFloat32(index int, val float32, engine ...endian.EndianEngine) error {
	return v.PutUint32(index, math.Float32bits(val), engine...)
}

// --- 8-byte accessors ---

// GetUint64 reads an unsigned 64-bit integer at index.
func (v *View) GetUint64(index int, engine ...endian.EndianEngine) (uint64, error) {
	var tmp [8]byte
	if err := v.region.ReadAt(index, tmp[:], 0, 8); err != nil {
		return 0, err
	}

	return engineOrNative(engine).Uint64(tmp[:]), nil
}

// PutUint64 writes an unsigned 64-bit integer at index.
func (v *View) PutUint64(index int, val uint64, engine ...endian.EndianEngine) error {
	var tmp [8]byte
	engineOrNative(engine).PutUint64(tmp[:], val)

	return v.region.WriteAt(index, tmp[:], 0, 8)
}

// GetInt64 reads a signed 64-bit integer at index.
func (v *View) GetInt64(index int, engine ...endian.EndianEngine) (int64, error) {
	u, err := v.GetUint64(index, engine...)
	return int64(u), err
}

// PutInt64 writes a signed 64-bit integer at index.
func (v *View) PutInt64(index int, val int64, engine ...endian.EndianEngine) error {
	return v.PutUint64(index, uint64(val), engine...)
}

// GetFloat64 reads an IEEE-754 double-precision float at index.
func (v *View) GetFloat64(index int, engine ...endian.EndianEngine) (float64, error) {
	u, err := v.GetUint64(index, engine...)
	return math.Float64frombits(u), err
}

// PutFloat64 writes an IEEE-754 double-precision float at index.
func (v *View) PutFloat64(index int, val float64, engine ...endian.EndianEngine) error {
	return v.PutUint64(index, math.Float64bits(val), engine...)
}

// --- byte range transfers ---

// GetBytes copies length bytes starting at index into dst[dstOffset:].
func (v *View) GetBytes(index int, dst []byte, dstOffset, length int) error {
	return v.region.ReadAt(index, dst, dstOffset, length)
}

// PutBytes copies length bytes from src[srcOffset:] into the region at index.
func (v *View) PutBytes(index int, src []byte, srcOffset, length int) error {
	return v.region.WriteAt(index, src, srcOffset, length)
}

// PutRegion copies length bytes from src (another Region) at srcIndex into
// this view's region at index — the Region-to-Region counterpart to
// PutBytes's plain-slice form.
func (v *View) PutRegion(index int, src Region, srcIndex, length int) error {
	if b := src.Bytes(); b != nil {
		return v.region.WriteAt(index, b, srcIndex, length)
	}
	tmp := make([]byte, length)
	if err := src.ReadAt(srcIndex, tmp, 0, length); err != nil {
		return err
	}

	return v.region.WriteAt(index, tmp, 0, length)
}

// WriteTo streams length bytes starting at index to w, the io.Writer
// counterpart to GetBytes's plain-slice form.
func (v *View) WriteTo(index, length int, w io.Writer) (int, error) {
	tmp := make([]byte, length)
	if err := v.region.ReadAt(index, tmp, 0, length); err != nil {
		return 0, err
	}

	return w.Write(tmp)
}

// ReadFrom streams up to length bytes from r into the region at index, the
// io.Reader counterpart to PutBytes's plain-slice form.
func (v *View) ReadFrom(index, length int, r io.Reader) (int, error) {
	tmp := make([]byte, length)
	n, err := io.ReadFull(r, tmp)
	if n > 0 {
		if werr := v.region.WriteAt(index, tmp, 0, n); werr != nil {
			return n, werr
		}
	}

	return n, err
}

// SetMemory fills the run [index, index+length) with value.
func (v *View) SetMemory(index, length int, value byte) error {
	tmp := make([]byte, length)
	for i := range tmp {
		tmp[i] = value
	}

	return v.region.WriteAt(index, tmp, 0, length)
}

// CompareTo lexicographically compares v's full region contents against
// other's, returning <0, 0, or >0. A shorter region that matches the
// longer one's prefix compares less.
func (v *View) CompareTo(other *View) int {
	a := v.region.Bytes()
	b := other.region.Bytes()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}

	return len(a) - len(b)
}

// Hash computes the polynomial rolling hash h = h*31 + byte over every byte
// in the region.
func (v *View) Hash() uint32 {
	var h uint32
	for _, c := range v.region.Bytes() {
		h = h*31 + uint32(c)
	}

	return h
}

// --- ASCII integer helpers (thin wrappers over the ascii package) ---

// PutIntAscii writes the ASCII decimal representation of val at index,
// handling the zero, negative, and INT_MIN sentinel cases, and returns the
// number of bytes written.
func (v *View) PutIntAscii(index int, val int32) (int, error) {
	var tmp [ascii.Int32MaxDigits + 1]byte
	n := ascii.FormatInt32Ascii(tmp[:], val)

	return n, v.region.WriteAt(index, tmp[:], 0, n)
}

// PutNaturalIntAscii writes the ASCII decimal representation of a
// non-negative val at index and returns the number of bytes written.
func (v *View) PutNaturalIntAscii(index int, val int32) (int, error) {
	var tmp [ascii.Int32MaxDigits]byte
	n := ascii.FormatNaturalInt32Ascii(tmp[:], val)

	return n, v.region.WriteAt(index, tmp[:], 0, n)
}

// PutNaturalPaddedIntAscii fills exactly length bytes at index, right to
// left, with val's ASCII decimal digits. It fails with errs.ErrNumberFormat
// if val's digit count exceeds length.
func (v *View) PutNaturalPaddedIntAscii(index, length int, val int32) error {
	if val < 0 {
		return fmt.Errorf("%w: negative value %d for natural padded write", errs.ErrNumberFormat, val)
	}
	digits := ascii.DigitCountInt32(val)
	if digits > length {
		return fmt.Errorf("%w: %d digits do not fit in %d bytes", errs.ErrNumberFormat, digits, length)
	}

	tmp := make([]byte, length)
	for i := 0; i < length-digits; i++ {
		tmp[i] = ascii.Zero
	}
	ascii.FormatNaturalInt32Ascii(tmp[length-digits:], val)

	return v.region.WriteAt(index, tmp, 0, length)
}

// PutNaturalIntAsciiFromEnd writes val's ASCII decimal digits backwards,
// ending at endExclusive, and returns the inclusive start index.
func (v *View) PutNaturalIntAsciiFromEnd(val int32, endExclusive int) (int, error) {
	digits := ascii.DigitCountInt32(val)
	start := endExclusive - digits
	var tmp [ascii.Int32MaxDigits]byte
	ascii.FormatNaturalInt32Ascii(tmp[:digits], val)
	if err := v.region.WriteAt(start, tmp[:digits], 0, digits); err != nil {
		return 0, err
	}

	return start, nil
}

// PutLongAscii writes the ASCII decimal representation of val at index,
// handling the zero, negative, and LONG_MIN sentinel cases.
func (v *View) PutLongAscii(index int, val int64) (int, error) {
	var tmp [ascii.Int64MaxDigits + 1]byte
	n := ascii.FormatInt64Ascii(tmp[:], val)

	return n, v.region.WriteAt(index, tmp[:], 0, n)
}

// PutNaturalLongAscii writes the ASCII decimal representation of a
// non-negative val at index.
func (v *View) PutNaturalLongAscii(index int, val int64) (int, error) {
	var tmp [ascii.Int64MaxDigits]byte
	n := ascii.FormatNaturalInt64Ascii(tmp[:], val)

	return n, v.region.WriteAt(index, tmp[:], 0, n)
}

// readAsciiDigits copies length bytes at index into a scratch slice for
// the ascii package's parse functions, which operate on plain []byte.
func (v *View) readAsciiDigits(index, length int) ([]byte, error) {
	tmp := make([]byte, length)
	if err := v.region.ReadAt(index, tmp, 0, length); err != nil {
		return nil, err
	}

	return tmp, nil
}

// ParseIntAscii parses a signed 32-bit ASCII decimal at [index, index+length).
func (v *View) ParseIntAscii(index, length int) (int32, error) {
	tmp, err := v.readAsciiDigits(index, length)
	if err != nil {
		return 0, err
	}

	return ascii.ParseInt32Ascii(tmp)
}

// ParseNaturalIntAscii parses an unsigned (no leading '-') 32-bit ASCII
// decimal at [index, index+length).
func (v *View) ParseNaturalIntAscii(index, length int) (int32, error) {
	tmp, err := v.readAsciiDigits(index, length)
	if err != nil {
		return 0, err
	}

	return ascii.ParseNaturalInt32Ascii(tmp)
}

// ParseLongAscii parses a signed 64-bit ASCII decimal at [index, index+length).
func (v *View) ParseLongAscii(index, length int) (int64, error) {
	tmp, err := v.readAsciiDigits(index, length)
	if err != nil {
		return 0, err
	}

	return ascii.ParseInt64Ascii(tmp)
}

// ParseNaturalLongAscii parses an unsigned 64-bit ASCII decimal at
// [index, index+length).
func (v *View) ParseNaturalLongAscii(index, length int) (int64, error) {
	tmp, err := v.readAsciiDigits(index, length)
	if err != nil {
		return 0, err
	}

	return ascii.ParseNaturalInt64Ascii(tmp)
}

package buffer

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/dbuf/endian"
	"github.com/arloliu/dbuf/errs"
)

// lengthPrefixSize is the width of the length prefix in front of every
// length-prefixed string.
const lengthPrefixSize = 4

// nullBytes is the literal wire encoding of a nil *string for PutUTF8String:
// a nil pointer encodes as the 4 ASCII bytes "null" rather than an empty
// string, so a reader can tell "absent" apart from "present but empty".
var nullBytes = [4]byte{'n', 'u', 'l', 'l'}

// PutASCIIString writes s as a length-prefixed ASCII string at index: a
// 4-byte length prefix followed by len(s) bytes, substituting '?' (0x3F)
// for any code unit greater than 127. It returns the total bytes written.
func (v *View) PutASCIIString(index int, s string, engine ...endian.EndianEngine) (int, error) {
	n := len(s)
	buf := make([]byte, lengthPrefixSize+n)
	engineOrNative(engine).PutUint32(buf, uint32(n)) //nolint:gosec
	for i := 0; i < n; i++ {
		c := s[i]
		if c > 127 {
			c = '?'
		}
		buf[lengthPrefixSize+i] = c
	}

	total := lengthPrefixSize + n
	if err := v.region.WriteAt(index, buf, 0, total); err != nil {
		return 0, err
	}

	return total, nil
}

// GetASCIIString reads a length-prefixed ASCII string written by
// PutASCIIString and returns it along with the total bytes consumed.
func (v *View) GetASCIIString(index int, engine ...endian.EndianEngine) (string, int, error) {
	n, err := v.readLengthPrefix(index, engine...)
	if err != nil {
		return "", 0, err
	}
	buf := make([]byte, n)
	if err := v.region.ReadAt(index+lengthPrefixSize, buf, 0, n); err != nil {
		return "", 0, err
	}

	return string(buf), lengthPrefixSize + n, nil
}

// PutUTF8String writes s as a length-prefixed UTF-8 string at index: a
// 4-byte length prefix followed by the UTF-8 bytes. A nil string pointer
// encodes as the literal 4 bytes "null" preceded by a length-4 prefix. It
// returns the total bytes written.
func (v *View) PutUTF8String(index int, s *string, engine ...endian.EndianEngine) (int, error) {
	eng := engineOrNative(engine)
	if s == nil {
		var header [lengthPrefixSize]byte
		eng.PutUint32(header[:], uint32(len(nullBytes)))
		buf := append(header[:], nullBytes[:]...)
		if err := v.region.WriteAt(index, buf, 0, len(buf)); err != nil {
			return 0, err
		}

		return len(buf), nil
	}

	n := len(*s)
	buf := make([]byte, lengthPrefixSize+n)
	eng.PutUint32(buf, uint32(n)) //nolint:gosec
	copy(buf[lengthPrefixSize:], *s)
	if err := v.region.WriteAt(index, buf, 0, len(buf)); err != nil {
		return 0, err
	}

	return len(buf), nil
}

// GetUTF8String reads a length-prefixed UTF-8 string written by
// PutUTF8String and returns it along with the total bytes consumed. The
// literal "null" encoding decodes to the ordinary string "null"; callers
// that need to distinguish a nil write must use PutUTF8String's companion
// sentinel length (4) and compare the decoded bytes themselves.
func (v *View) GetUTF8String(index int, engine ...endian.EndianEngine) (string, int, error) {
	n, err := v.readLengthPrefix(index, engine...)
	if err != nil {
		return "", 0, err
	}
	buf := make([]byte, n)
	if err := v.region.ReadAt(index+lengthPrefixSize, buf, 0, n); err != nil {
		return "", 0, err
	}
	if !utf8.Valid(buf) {
		return "", 0, fmt.Errorf("%w: invalid utf-8 at index %d", errs.ErrIllegalArgument, index)
	}

	return string(buf), lengthPrefixSize + n, nil
}

func (v *View) readLengthPrefix(index int, engine ...endian.EndianEngine) (int, error) {
	n, err := v.GetUint32(index, engine...)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

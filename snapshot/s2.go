package snapshot

import "github.com/klauspost/compress/s2"

// S2Codec wires klauspost/compress's S2 algorithm: fast compression and
// decompression at a moderate ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec { return S2Codec{} }

// Compress compresses data using S2.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2-compressed data.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

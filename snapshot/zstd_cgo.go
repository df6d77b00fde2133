//go:build nobuild

package snapshot

import "github.com/valyala/gozstd"

// Compress compresses data with the cgo-accelerated gozstd encoder. Not
// part of the default build; enable by building with the nobuild tag on a
// platform with a C toolchain available.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses gozstd-compressed data.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

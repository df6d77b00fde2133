package snapshot

import "fmt"

// CompressionType identifies the compression algorithm applied to a
// dumped region's bytes. It is stored in the blob header so Load can
// select the matching decompressor without the caller repeating it.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionS2
	CompressionZstd
	CompressionLZ4
)

// String returns the human-readable name used in error messages.
func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "none"
	case CompressionS2:
		return "s2"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Compressor compresses a region's raw bytes before framing.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's output back to raw bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionZstd: NewZstdCodec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for compressionType.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("snapshot: unsupported compression type: %s", compressionType)
}

package snapshot

// ZstdCodec wires Zstandard compression: the best compression ratio of
// the built-in codecs at the cost of speed. Its Compress/Decompress
// methods live in zstd_pure.go (pure Go, default) or zstd_cgo.go
// (cgo-accelerated, opt-in build tag).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

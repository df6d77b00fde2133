package snapshot

// NoOpCodec bypasses compression entirely. Used when the caller wants a
// snapshot's bytes to remain directly inspectable, or when the region's
// contents are already incompressible.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that copies data through unchanged.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }

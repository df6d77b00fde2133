package snapshot

import (
	"errors"
	"sync"

	"github.com/arloliu/dbuf/internal/pool"
	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances: the type carries
// internal hash-table state that is expensive to reallocate per call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec wires pierrec/lz4's block compressor: very fast decompression,
// moderate compression ratio.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec { return LZ4Codec{} }

// Compress compresses data using LZ4 block compression.
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses LZ4 block-compressed data, growing a pooled
// scratch buffer until the output fits or a safety limit is exceeded.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)
	bb.Reset()

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		if bb.Cap() < bufSize {
			bb.Grow(bufSize - bb.Len())
		}
		bb.ExtendOrGrow(bufSize - bb.Len())
		dst := bb.Slice(0, bufSize)

		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				bb.Reset()
				continue
			}

			return nil, err
		}

		out := make([]byte, n)
		copy(out, dst[:n])

		return out, nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arloliu/dbuf/buffer"
	"github.com/arloliu/dbuf/errs"
	"github.com/arloliu/dbuf/internal/pool"
)

// magic identifies a snapshot blob so Load can reject unrelated data
// before attempting to decompress it.
const magic uint32 = 0x64627566 // "dbuf"

// headerSize is magic(4) + compression tag(1) + original length(8).
const headerSize = 4 + 1 + 8

// buildBlob stages a region's compressed snapshot (header followed by
// payload) into a pooled scratch buffer. Callers must return the buffer to
// the pool once they are done reading it.
func buildBlob(region buffer.Region, codec Codec) (*pool.ByteBuffer, error) {
	raw := region.Bytes()
	if raw == nil {
		return nil, fmt.Errorf("%w: region is not byte-addressable", errs.ErrNotSupported)
	}

	compressionType, err := codecType(codec)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress: %w", err)
	}

	var header [headerSize]byte
	binary.BigEndian.PutUint32(header[0:4], magic)
	header[4] = byte(compressionType)
	binary.BigEndian.PutUint64(header[5:13], uint64(len(raw)))

	bb := pool.GetScratchBuffer()
	bb.Reset()
	bb.MustWrite(header[:])
	bb.MustWrite(payload)

	return bb, nil
}

// Dump captures region's live bytes into a self-describing blob: magic,
// the codec used, the original length, and the (possibly compressed)
// payload. region must expose its bytes directly (Region.Bytes()
// non-nil); mmap-backed and heap regions qualify.
func Dump(region buffer.Region, codec Codec) ([]byte, error) {
	bb, err := buildBlob(region, codec)
	if err != nil {
		return nil, err
	}
	defer pool.PutScratchBuffer(bb)

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// DumpTo writes region's snapshot blob to w directly, for a caller staging
// it to a file or a network connection rather than holding it in memory.
func DumpTo(w io.Writer, region buffer.Region, codec Codec) (int64, error) {
	bb, err := buildBlob(region, codec)
	if err != nil {
		return 0, err
	}
	defer pool.PutScratchBuffer(bb)

	return bb.WriteTo(w)
}

// Load parses a blob produced by Dump and restores its bytes into a fresh
// buffer.HeapBuffer sized to the original region's length. The codec used
// at Dump time is recovered from the blob header; callers do not repeat it.
func Load(blob []byte) (*buffer.HeapBuffer, error) {
	if len(blob) < headerSize {
		return nil, fmt.Errorf("%w: snapshot blob shorter than header", errs.ErrIllegalArgument)
	}
	if got := binary.BigEndian.Uint32(blob[0:4]); got != magic {
		return nil, fmt.Errorf("%w: snapshot magic mismatch: got %#x", errs.ErrIllegalArgument, got)
	}

	compressionType := CompressionType(blob[4])
	originalLen := binary.BigEndian.Uint64(blob[5:13])

	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(blob[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress: %w", err)
	}
	if uint64(len(raw)) != originalLen {
		return nil, fmt.Errorf("%w: decompressed length %d does not match header length %d", errs.ErrIllegalState, len(raw), originalLen)
	}

	return buffer.Wrap(raw), nil
}

// LoadFrom reads a full snapshot blob from r and restores it, for a caller
// holding a file or network connection rather than an in-memory blob.
func LoadFrom(r io.Reader) (*buffer.HeapBuffer, error) {
	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)
	bb.Reset()

	if _, err := io.Copy(bb, r); err != nil {
		return nil, fmt.Errorf("snapshot: read blob: %w", err)
	}

	blob := make([]byte, bb.Len())
	copy(blob, bb.Bytes())

	return Load(blob)
}

// codecType maps a Codec value back to its CompressionType tag so Dump can
// record which built-in codec produced the payload. Custom Codec
// implementations outside the builtin set cannot be round-tripped through
// Load and are rejected here.
func codecType(codec Codec) (CompressionType, error) {
	for t, c := range builtinCodecs {
		if c == codec {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: codec is not one of the built-in snapshot codecs", errs.ErrIllegalArgument)
}

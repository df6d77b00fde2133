// Package snapshot dumps a buffer.Region's live bytes to a portable,
// optionally compressed blob and restores them into a fresh
// buffer.HeapBuffer.
//
// It exists for crash diagnostics and golden test fixtures: a region that
// misbehaves in a long-running process can be dumped to disk without
// attaching a debugger, and a fixture captured once can be replayed in a
// test without recomputing it.
//
// # Compression
//
// Dump accepts a Codec selecting how the region's bytes are compressed
// before being framed. Built-in codecs:
//
//   - None: no compression, fastest
//   - S2: fast compression and decompression
//   - Zstd: best compression ratio, pure Go by default
//   - LZ4: very fast decompression
//
// Load reads the codec tag back out of the blob's header and decompresses
// with the matching codec automatically; callers never need to pass the
// codec used at Dump time.
package snapshot

// Package buffer provides direct-memory byte regions and a typed accessor
// layer over them.
//
// A Region is the capability: a bounds-checked span of bytes that may be
// heap-backed (HeapBuffer), off-heap (OffHeapBuffer), memory-mapped
// (MappedBuffer), or grow-on-write (ExpandableBuffer). View layers
// endian-aware get/put for integers, floats, byte ranges, ASCII/UTF-8
// strings, and ASCII-encoded integers on top of any Region, so the same
// accessor code works regardless of where the bytes live.
//
// # Basic usage
//
//	r := buffer.NewHeapBuffer(64)
//	v := buffer.NewView(r)
//	v.PutUint64(0, 0x1122334455667788, endian.GetLittleEndianEngine())
//	got, _ := v.GetUint64(0, endian.GetLittleEndianEngine())
package buffer

// Package endian provides byte order utilities for binary encoding and decoding.
//
// It extends Go's standard encoding/binary package by combining ByteOrder and
// AppendByteOrder into a single EndianEngine interface, so buffer accessors
// can take one parameter instead of choosing between two APIs depending on
// whether they need to append or write in place.
//
// # Basic usage
//
//	engine := endian.GetLittleEndianEngine()
//	v := buffer.NewView(buffer.NewHeapBuffer(64))
//	v.PutUint64(0, 0x1122334455667788, engine)
//
// # Native order
//
// CheckEndianness determines the host's byte order at runtime.
// GetNativeEndianEngine uses it to pick the engine that the buffer
// package's accessors default to when no engine argument is given.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's native byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEndianEngine returns the engine matching the host's byte order.
func GetNativeEndianEngine() EndianEngine {
	if IsNativeBigEndian() {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// Package ascii implements fast digit counting and ASCII decimal
// encode/decode for 32- and 64-bit signed integers.
//
// All operations are stateless functions over byte slices: nothing here
// owns a buffer. The buffer package's View wraps these to read and write
// ASCII integers at a region offset; keeping the codec free of any buffer
// dependency lets it be tested, and reused, on its own.
package ascii

// Package timer implements a single-threaded hashed deadline timer wheel:
// O(1) cancel, amortized O(1) schedule, and bounded-work polling.
//
// All operations must be serialized externally; Wheel holds no internal
// mutex. Callers embedding a Wheel in an event loop or reactor already
// serialize access by construction, so the mutex would be pure overhead.
package timer

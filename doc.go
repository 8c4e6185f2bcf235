// Package klib is a Go port of a freestanding runtime support library: the
// small set of standard-library services a bare-metal program needs when no
// operating system or C library is available. Its centerpiece is a formatted
// output engine supporting the %d, %u, %x, %s, %c, and %% conversions,
// rendering either to a live character device or into a bounded buffer with
// exact truncation accounting.
//
// # Formatting
//
// The three entry points share one interpreter and differ only in their sink:
//
//   - [Fprintf] streams each byte to an [io.ByteWriter] as it is rendered.
//   - [Sprintf] renders into an unbounded buffer and returns a string.
//   - [Snprintf] renders into a caller-owned byte slice, never writes outside
//     it, NUL-terminates it, and returns the length the output would have had
//     without truncation.
//
// The Snprintf contract is the one that matters on a fixed-size buffer:
//
//	n, err := klib.Snprintf(buf, "%s: %d", name, value)
//	if n >= len(buf) {
//		// output was truncated to len(buf)-1 bytes plus the terminator
//	}
//
// A zero-length (or nil) buffer is legal and computes the required length
// without storing anything.
//
// Unlike the C family it ports, argument consumption is checked: too few
// arguments or an argument of the wrong type stops formatting with an error
// wrapping [ErrMissingArg] or [ErrArgType]. A nil argument for %s renders as
// nothing, and an unrecognized specifier is echoed as '%' plus the byte
// rather than failing.
//
// # Runtime services
//
// The remaining pieces are the usual freestanding-runtime companions, each an
// explicitly owned value rather than a process global:
//
//   - [Console] — stdio veneer (Printf, Puts, Putchar) over a character device
//   - [Arena] — bump allocator over a fixed block, reclaim via Reset only
//   - [Rand] — the classic LCG, bit-exact with the C runtime
//   - [Atoi], [Strlen], [Memset], [Memcmp], [Strcmp], [Abs] — string and
//     memory helpers
//   - [Layout] — the target's memory map, decodable from a YAML device
//     description with [ParseLayout]
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMissingArg] — template has more conversions than arguments
//   - [ErrArgType] — argument cannot satisfy its conversion
//   - [ErrOutOfMemory] — arena block exhausted
//   - [ErrBadLayout] — inconsistent device layout
package klib

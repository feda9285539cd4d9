// Package swar provides a portable, allocation-free byte search used by
// the scanner's line/column tracker (package scan). Every lexeme the
// scanner consumes is re-scanned once for embedded line-feed bytes, so
// this is on the hot path; a SWAR (SIMD Within A Register) loop finds a
// needle byte 8 bytes at a time using plain uint64 arithmetic, without
// requiring build-tagged assembly or CPU feature detection.
package swar

import (
	"encoding/binary"
	"math/bits"
)

// IndexByte returns the index of the first occurrence of needle in b, or
// -1 if it is not present. Equivalent to bytes.IndexByte, but processes
// 8-byte chunks with a single zero-byte-detection formula instead of a
// byte-by-byte loop once the input is long enough to amortize the setup.
func IndexByte(b []byte, needle byte) int {
	n := len(b)
	if n < 8 {
		for i := 0; i < n; i++ {
			if b[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast needle into every byte of a uint64.
	mask := uint64(needle) * 0x0101010101010101

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(b[i:])
		xor := chunk ^ mask
		// Zero-byte detection (Hacker's Delight 6-1): a byte in xor is
		// zero iff the corresponding byte in b equals needle.
		const lo = 0x0101010101010101
		const hi = 0x8080808080808080
		hasZero := (xor - lo) & ^xor & hi
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if b[i] == needle {
			return i
		}
	}
	return -1
}

// CountByte returns the number of occurrences of needle in b. Used by the
// scanner to bulk-advance the line counter across a multi-line lexeme
// (e.g. a block comment) instead of incrementing one line-feed at a time.
func CountByte(b []byte, needle byte) int {
	count := 0
	for {
		idx := IndexByte(b, needle)
		if idx < 0 {
			return count
		}
		count++
		b = b[idx+1:]
	}
}

// LastIndexByte returns the index of the last occurrence of needle in b,
// or -1 if absent. Used to find the column offset relative to the final
// line-feed inside a multi-line lexeme without a second full reverse scan
// for the common (no line-feed) case.
func LastIndexByte(b []byte, needle byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == needle {
			return i
		}
	}
	return -1
}

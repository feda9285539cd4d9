// Package conv provides safe integer conversion helpers used where a
// position or length computed as an int must narrow to the uint32
// fields on token.Token.
//
// These functions bounds-check before narrowing to prevent silent
// overflow. They panic on overflow since it indicates a programming
// error (an input larger than the token format can represent).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

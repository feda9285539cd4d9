package rift0

import "github.com/obinexus/rift0/pattern"

// Mode configures a Context's scanning discipline and defaults applied
// to subsequently registered patterns.
type Mode struct {
	// Strict stops a scan at the first unmatched position instead of
	// recovering with an unknown token.
	Strict bool
	// Debug records one rendered-token string per emitted token,
	// retrievable via Context.DebugTrace. The candidate lengths
	// considered at each position are not recorded.
	Debug bool
	// ThreadSafe enables the context mutex; every public method
	// acquires it for its entire duration when true.
	ThreadSafe bool
	// GlobalFlags are ORed into every pattern's flags at registration
	// time, in addition to whatever RegisterPattern's caller passes.
	GlobalFlags pattern.Flags
}

// DefaultMode is lenient, non-debug, thread-safe, with no global flags.
func DefaultMode() Mode {
	return Mode{ThreadSafe: true}
}

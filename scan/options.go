package scan

// Options configures a single Scan call.
type Options struct {
	// Strict stops scanning and reports the first unmatched position as
	// an error token instead of recovering with a length-1 unknown token.
	// Default (false) is lenient, per spec.
	Strict bool

	// QuantumTogglesSubsequentOnly resolves the ambiguity around the
	// sticky quantum-mode toggle triggered by the literal lexemes
	// "!quantum"/"!classic": when true (the default a caller should
	// use), the toggle takes effect starting with the token *after* the
	// one that triggered it; when false, the triggering token itself is
	// already tagged under the new mode.
	QuantumTogglesSubsequentOnly bool

	// InitialQuantumMode is the sticky quantum-mode state carried in
	// from a previous Scan call on the same context (§4.7's toggle
	// persists across calls, not just within one).
	InitialQuantumMode bool
}

// DefaultOptions returns the lenient, subsequent-only-toggle configuration.
func DefaultOptions() Options {
	return Options{Strict: false, QuantumTogglesSubsequentOnly: true}
}

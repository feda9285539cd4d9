package pattern

// Flags carries the compilation flags attached to a pattern entry (spec
// §3, "Pattern entry"). CaseInsensitive and Multiline affect how the
// compiler lowers the pattern to a DFA (spec §4.3); the remaining bits
// are carried through to the registry entry as diagnostic/downstream
// metadata only — the tokenization core does not itself interpret what
// "top-down" or "bottom-up" parsing means for a later stage.
type Flags uint8

const (
	// CaseInsensitive makes letter literals and ranges match both cases.
	CaseInsensitive Flags = 1 << iota
	// Multiline makes '.' match line-feed and makes '^'/'$' also match
	// just after/before internal line-feeds.
	Multiline
	// Global marks a pattern as intended for repeated (g-flag) application
	// by a downstream consumer; the scanner already applies every pattern
	// repeatedly as a matter of course, so this bit has no local effect.
	Global
	// TopDown marks a pattern compiled under top-down composition policy.
	TopDown
	// BottomUp marks a pattern compiled under bottom-up composition policy.
	BottomUp
	// Composed marks a pattern assembled from sub-patterns by an external
	// collaborator before registration.
	Composed
	// Validated marks a pattern that has already passed an external DFA
	// validation pass.
	Validated
)

// Has reports whether all bits of other are set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

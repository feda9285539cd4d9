// Package token defines the compact tagged token record emitted by the
// RIFT-0 scanner and the closed kind enumeration it is drawn from.
package token

import "fmt"

// Kind is the syntactic category of a token. The enumeration is closed:
// downstream stages must not invent new kinds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindIdentifier
	KindNumber
	KindString
	KindOperator
	KindDelimiter
	KindKeyword
	KindWhitespace
	KindComment
	KindRPattern
	KindNullKeyword
	KindNilKeyword
	KindQuantumMarker
	KindCollapseMarker
	KindEntangleMarker
	KindGovernanceTag
	KindError
	KindEOF

	numKinds
)

var kindNames = [numKinds]string{
	KindUnknown:        "unknown",
	KindIdentifier:     "identifier",
	KindNumber:         "number",
	KindString:         "string",
	KindOperator:       "operator",
	KindDelimiter:      "delimiter",
	KindKeyword:        "keyword",
	KindWhitespace:     "whitespace",
	KindComment:        "comment",
	KindRPattern:       "r-pattern",
	KindNullKeyword:    "null-keyword",
	KindNilKeyword:     "nil-keyword",
	KindQuantumMarker:  "quantum-marker",
	KindCollapseMarker: "collapse-marker",
	KindEntangleMarker: "entangle-marker",
	KindGovernanceTag:  "governance-tag",
	KindError:          "error",
	KindEOF:            "eof",
}

// String returns a human-readable name for the kind, or a placeholder for
// values outside the closed enumeration.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the enumeration's declared members.
func (k Kind) Valid() bool {
	return k < numKinds
}

// IsQuantum reports whether the kind always belongs to the quantum channel
// regardless of the scanner's sticky quantum-mode state (spec §4.7).
func (k Kind) IsQuantum() bool {
	switch k {
	case KindQuantumMarker, KindCollapseMarker, KindEntangleMarker:
		return true
	default:
		return false
	}
}

// Flags carries routing and semantic bits alongside a token's kind.
// Flags describe the emitted token, never the pattern that produced it.
type Flags uint8

const (
	// FlagQuantum marks a token as routed to the quantum channel because
	// the scanner was in quantum mode when the token was emitted.
	FlagQuantum Flags = 1 << iota
	// FlagTrusted marks a token whose governance provenance is trusted.
	FlagTrusted
	// FlagVerified marks a token that has passed an external verification
	// step (the tokenizer never performs verification itself; it only
	// carries the bit for downstream collaborators).
	FlagVerified
	// FlagGovernance marks a governance-tag token (spec §4.7: these always
	// route to the classical channel but carry this bit set).
	FlagGovernance
)

// Has reports whether all bits of other are set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// Token is an immutable value object describing one lexeme in the source
// input: its kind, byte offset, byte length, and routing flags.
type Token struct {
	kind   Kind
	offset uint32
	length uint32
	flags  Flags
}

// New constructs a Token. It does not validate against an input bound;
// call Validate for that.
func New(kind Kind, offset, length uint32, flags Flags) Token {
	return Token{kind: kind, offset: offset, length: length, flags: flags}
}

// Kind returns the token's syntactic category.
func (t Token) Kind() Kind { return t.kind }

// Offset returns the token's starting byte offset into the source input.
func (t Token) Offset() uint32 { return t.offset }

// Length returns the token's length in bytes. Only the synthetic EOF token
// may have a length of zero.
func (t Token) Length() uint32 { return t.length }

// Flags returns the token's routing/semantic flag bits.
func (t Token) Flags() Flags { return t.flags }

// End returns Offset()+Length(), the byte offset one past the lexeme.
func (t Token) End() uint32 { return t.offset + t.length }

// Validate rejects a token whose kind is outside the closed enumeration or
// whose span exceeds inputLen, per spec §4.1 and the invariants in §3.
func (t Token) Validate(inputLen int) error {
	if !t.kind.Valid() {
		return fmt.Errorf("token: kind %d is outside the closed enumeration", uint8(t.kind))
	}
	if t.kind != KindEOF && t.length == 0 {
		return fmt.Errorf("token: non-eof token at offset %d has zero length", t.offset)
	}
	if uint64(t.offset)+uint64(t.length) > uint64(inputLen) {
		return fmt.Errorf("token: span [%d,%d) exceeds input length %d", t.offset, t.End(), inputLen)
	}
	return nil
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%s@%d+%d(flags=%02x)", t.kind, t.offset, t.length, uint8(t.flags))
}

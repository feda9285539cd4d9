package pattern

import "github.com/coregx/ahocorasick"

// literalBytes reports whether n is built entirely from ungrouped,
// unquantified, case-sensitive single-byte literals, and if so returns
// the exact byte sequence it matches. Such patterns skip the DFA walk
// entirely in favor of a single Aho-Corasick automaton lookup (spec
// §4.3's "fast literal path"): most registries carry a majority of
// fixed keyword and operator patterns, and a pure string search beats a
// byte-at-a-time state-table walk for those.
func literalBytes(n *node) ([]byte, bool) {
	if n == nil {
		return nil, true
	}
	switch n.kind {
	case nodeLiteral:
		if len(n.ranges) != 1 || n.ranges[0].Lo != n.ranges[0].Hi {
			return nil, false
		}
		return []byte{n.ranges[0].Lo}, true
	case nodeConcat:
		var out []byte
		for _, child := range n.children {
			b, ok := literalBytes(child)
			if !ok {
				return nil, false
			}
			out = append(out, b...)
		}
		return out, true
	default:
		return nil, false
	}
}

// literalMatcher wraps a single-pattern Aho-Corasick automaton built
// over one literal pattern's exact bytes. Only the confirmed subset of
// the automaton's API is used: NewBuilder, AddPattern, Build, and
// Find's Start/End fields — the package exposes no confirmed way to
// recover a pattern ID from a multi-pattern automaton, so the fast path
// keeps one automaton per literal rather than pooling patterns.
type literalMatcher struct {
	bytes []byte
	aut   *ahocorasick.Automaton
}

func newLiteralMatcher(lit []byte) (*literalMatcher, error) {
	b := ahocorasick.NewBuilder()
	b.AddPattern(lit)
	aut, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &literalMatcher{bytes: lit, aut: aut}, nil
}

// MatchAt reports whether the literal matches input starting exactly at
// offset at, and if so its length (always len(bytes), but computed from
// the automaton's own Start/End so a future multi-pattern pool can reuse
// this unchanged).
func (m *literalMatcher) MatchAt(input []byte, at int) (int, bool) {
	match := m.aut.Find(input[at:], 0)
	if match == nil || match.Start != 0 {
		return 0, false
	}
	return match.End - match.Start, true
}

// Package pattern compiles the restricted regular-expression dialect of
// the tokenization core (literals, backslash escapes, character
// classes, '.', postfix '*'/'+'/'?', concatenation, and anchors at
// pattern start/end only) into a dfa.Graph. Alternation, grouping,
// backreferences, and lookaround are rejected with a CompileError
// naming the unsupported construct.
package pattern

import (
	"github.com/obinexus/rift0/dfa"
	"github.com/obinexus/rift0/token"
)

// Compiled is the result of compiling one pattern source string: the
// DFA that recognizes it, its anchor requirements (checked by the
// scanner around the DFA walk rather than encoded as NFA states, since
// this grammar only ever anchors at the pattern's own ends), and,
// when eligible, a literal fast-path matcher.
type Compiled struct {
	Source   string
	Flags    Flags
	Kind     token.Kind
	Priority int

	Graph         *dfa.Graph
	StartAnchored bool
	EndAnchored   bool
	Multiline     bool

	// Literal is non-nil when Source contains no metacharacters handled
	// case-sensitively and unanchored, enabling scan to use an
	// Aho-Corasick lookup instead of walking Graph.
	Literal *literalMatcher
}

// Compile parses source under flags and builds the DFA (and, where
// eligible, the literal fast-path matcher) that recognizes it. kind and
// priority are stamped onto the resulting accept state for use by the
// longest-match scanner's tie-break rule.
func Compile(source string, kind token.Kind, priority int, flags Flags) (*Compiled, error) {
	ci := flags.Has(CaseInsensitive)
	ml := flags.Has(Multiline)

	n, startAnchored, endAnchored, cerr := parsePattern(source, ci, ml)
	if cerr != nil {
		return nil, cerr
	}

	c := dfa.NewCompiler()
	frag := lower(c, n)
	g, err := c.Build(frag, uint8(kind), priority)
	if err != nil {
		return nil, err
	}

	compiled := &Compiled{
		Source:        source,
		Flags:         flags,
		Kind:          kind,
		Priority:      priority,
		Graph:         g,
		StartAnchored: startAnchored,
		EndAnchored:   endAnchored,
		Multiline:     ml,
	}

	if !startAnchored && !endAnchored && !ci {
		if lit, ok := literalBytes(n); ok && len(lit) > 0 {
			if lm, lerr := newLiteralMatcher(lit); lerr == nil {
				compiled.Literal = lm
			}
		}
	}
	return compiled, nil
}

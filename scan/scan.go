// Package scan implements the longest-match scanning loop (spec §4.5)
// that turns an input buffer and a pattern registry into an ordered
// token sequence.
package scan

import (
	"github.com/obinexus/rift0/internal/conv"
	"github.com/obinexus/rift0/internal/swar"
	"github.com/obinexus/rift0/pattern"
	"github.com/obinexus/rift0/registry"
	"github.com/obinexus/rift0/token"
)

// Result carries the tokens produced by one Scan call.
type Result struct {
	Tokens []token.Token
	// StrictFailed reports whether scanning stopped early because
	// Options.Strict was set and a position matched no pattern. Tokens
	// emitted before the failure are still returned, per spec's
	// propagation policy exception for the scanner.
	StrictFailed bool
	// FinalQuantumMode is the sticky quantum-mode state in effect at
	// the end of this call; pass it back as the next call's
	// Options.InitialQuantumMode to preserve continuity across calls.
	FinalQuantumMode bool
}

// Scan runs the longest-match loop over input using every entry in reg,
// from byte offset 0 to completion (or early strict-mode failure).
func Scan(reg *registry.Registry, input []byte, opts Options) (Result, error) {
	var tokens []token.Token
	pos := 0
	quantumMode := opts.InitialQuantumMode

	for pos < len(input) {
		length, kind, ok := bestMatch(reg, input, pos)
		if !ok {
			if opts.Strict {
				tokens = append(tokens, token.New(token.KindError, conv.IntToUint32(pos), 1, flagsFor(token.KindError, quantumMode)))
				return Result{Tokens: tokens, StrictFailed: true, FinalQuantumMode: quantumMode}, nil
			}
			tokens = append(tokens, token.New(token.KindUnknown, conv.IntToUint32(pos), 1, flagsFor(token.KindUnknown, quantumMode)))
			pos++
			continue
		}

		lexeme := input[pos : pos+length]
		newMode := toggleQuantumMode(lexeme, quantumMode)
		effectiveMode := quantumMode
		if !opts.QuantumTogglesSubsequentOnly {
			effectiveMode = newMode
		}

		tokens = append(tokens, token.New(kind, conv.IntToUint32(pos), conv.IntToUint32(length), flagsFor(kind, effectiveMode)))
		quantumMode = newMode
		pos += length
	}

	tokens = append(tokens, token.New(token.KindEOF, conv.IntToUint32(len(input)), 0, flagsFor(token.KindEOF, quantumMode)))
	return Result{Tokens: tokens, FinalQuantumMode: quantumMode}, nil
}

// flagsFor computes the routing flags for a token of kind emitted while
// quantumMode is in effect. Governance tags always carry FlagGovernance
// in addition to whatever the sticky mode contributes.
func flagsFor(kind token.Kind, quantumMode bool) token.Flags {
	var f token.Flags
	if quantumMode {
		f |= token.FlagQuantum
	}
	if kind == token.KindGovernanceTag {
		f |= token.FlagGovernance
	}
	return f
}

// toggleQuantumMode updates the sticky quantum-mode bit when lexeme is
// exactly one of the literal directive strings.
func toggleQuantumMode(lexeme []byte, cur bool) bool {
	switch string(lexeme) {
	case "!quantum":
		return true
	case "!classic":
		return false
	default:
		return cur
	}
}

// bestMatch finds the winning candidate at pos across every registry
// entry: longest match wins; ties break on higher priority, then on
// earlier registration order (spec §4.5 step 2).
func bestMatch(reg *registry.Registry, input []byte, pos int) (length int, kind token.Kind, ok bool) {
	bestLen := -1
	var bestKind token.Kind
	bestPriority := 0
	bestOrder := -1

	for order, e := range reg.Entries() {
		l, matched := matchEntry(e.Compiled, input, pos)
		if !matched || l == 0 {
			continue
		}
		better := l > bestLen ||
			(l == bestLen && e.Compiled.Priority > bestPriority) ||
			(l == bestLen && e.Compiled.Priority == bestPriority && order < bestOrder)
		if bestLen < 0 || better {
			bestLen = l
			bestKind = e.Compiled.Kind
			bestPriority = e.Compiled.Priority
			bestOrder = order
		}
	}
	if bestLen < 0 {
		return 0, 0, false
	}
	return bestLen, bestKind, true
}

// matchEntry returns the longest anchor-respecting accepting length of
// e starting at pos, or ok=false if e does not match there at all.
func matchEntry(c *pattern.Compiled, input []byte, pos int) (int, bool) {
	if c.Literal != nil {
		return c.Literal.MatchAt(input, pos)
	}
	if c.StartAnchored && !startAnchorOK(c.Multiline, input, pos) {
		return 0, false
	}

	g := c.Graph
	cur := g.Start()
	bestLen := -1
	for i := 0; pos+i < len(input); i++ {
		next, stepOK := g.Step(cur, input[pos+i])
		if !stepOK {
			break
		}
		cur = next
		st, err := g.State(cur)
		if err != nil {
			break
		}
		if st.IsAccept() {
			end := pos + i + 1
			if endAnchorOK(c, input, end) {
				bestLen = i + 1
			}
		}
	}
	if bestLen < 0 {
		return 0, false
	}
	return bestLen, true
}

func startAnchorOK(multiline bool, input []byte, pos int) bool {
	return pos == 0 || (multiline && input[pos-1] == '\n')
}

func endAnchorOK(c *pattern.Compiled, input []byte, end int) bool {
	if !c.EndAnchored {
		return true
	}
	return end == len(input) || (c.Multiline && input[end] == '\n')
}

// Advance updates line and column counters for the bytes in lexeme,
// using internal/swar so a multi-line lexeme (e.g. a block comment)
// never costs a byte-at-a-time scan: CountByte bulk-advances the line
// counter in one pass, and LastIndexByte locates the final line feed to
// compute the resulting column directly, without walking every line in
// between.
func Advance(lexeme []byte, line, col *int) {
	n := swar.CountByte(lexeme, '\n')
	if n == 0 {
		*col += len(lexeme)
		return
	}
	*line += n
	last := swar.LastIndexByte(lexeme, '\n')
	*col = len(lexeme) - last
}

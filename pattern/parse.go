package pattern

import "github.com/obinexus/rift0/dfa"

// parser implements the recursive-descent parser for the restricted
// regex dialect of spec §4.3: literals with backslash escapes, [...]/
// [^...] classes, '.', postfix quantifiers '*' '+' '?', and
// concatenation. There is no alternation, no grouping, and anchors are
// recognized only at the very start or end of the whole pattern.
type parser struct {
	src       string // the body, with leading '^' and trailing '$' already stripped
	base      int    // offset of src[0] within the original pattern, for error messages
	pos       int
	ci        bool
	multiline bool
}

// parsePattern parses the full pattern source (including any leading
// '^' or trailing '$') and returns the concatenation AST plus whether
// each anchor was present. A nil node with a nil error means the whole
// pattern was just anchors, e.g. "^$".
func parsePattern(src string, ci, multiline bool) (n *node, startAnchored, endAnchored bool, cerr *CompileError) {
	if len(src) == 0 {
		return nil, false, false, newCompileError(EmptyPattern, 0, "pattern source is empty")
	}

	pos := 0
	if src[pos] == '^' {
		startAnchored = true
		pos++
	}

	end := len(src)
	if end > pos && src[end-1] == '$' && !trailingBackslashEscaped(src, end-1) {
		endAnchored = true
		end--
	}

	p := &parser{src: src[pos:end], base: pos, ci: ci, multiline: multiline}
	n, cerr = p.parseConcat()
	if cerr != nil {
		return nil, false, false, cerr
	}
	if p.pos != len(p.src) {
		return nil, false, false, newCompileError(StrayMetacharacter, p.base+p.pos, "unexpected %q", p.src[p.pos])
	}
	return n, startAnchored, endAnchored, nil
}

// trailingBackslashEscaped reports whether src[i] is preceded by an odd
// number of backslashes, meaning it is an escaped literal rather than a
// live metacharacter.
func trailingBackslashEscaped(src string, i int) bool {
	count := 0
	for j := i - 1; j >= 0 && src[j] == '\\'; j-- {
		count++
	}
	return count%2 == 1
}

func (p *parser) errf(kind ErrorKind, format string, args ...any) *CompileError {
	return newCompileError(kind, p.base+p.pos, format, args...)
}

func (p *parser) parseConcat() (*node, *CompileError) {
	var children []*node
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '|':
			return nil, p.errf(UnsupportedConstruct, "alternation is not supported")
		case '(', ')':
			return nil, p.errf(UnsupportedConstruct, "groups are not supported")
		case '^', '$':
			return nil, p.errf(StrayMetacharacter, "%q is only meaningful at the start or end of a pattern", c)
		case '*', '+', '?':
			return nil, p.errf(StrayMetacharacter, "quantifier %q with nothing to repeat", c)
		}
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		atom, err = p.parseQuantifier(atom)
		if err != nil {
			return nil, err
		}
		children = append(children, atom)
	}
	if len(children) == 0 {
		return nil, nil
	}
	return concatNode(children...), nil
}

func (p *parser) parseAtom() (*node, *CompileError) {
	c := p.src[p.pos]
	switch c {
	case '.':
		p.pos++
		return classNode(anyRanges(p.multiline)), nil
	case '[':
		return p.parseClass()
	case '\\':
		return p.parseEscape()
	default:
		p.pos++
		return p.literal(c), nil
	}
}

func (p *parser) literal(c byte) *node {
	if p.ci {
		if other, ok := toggleCase(c); ok {
			return classNode([]dfa.ByteRange{{Lo: c, Hi: c}, {Lo: other, Hi: other}})
		}
	}
	return litNode(c, c)
}

func (p *parser) parseEscape() (*node, *CompileError) {
	p.pos++ // consume backslash
	if p.pos >= len(p.src) {
		return nil, p.errf(StrayMetacharacter, "dangling escape at end of pattern")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case 'n':
		return p.literal('\n'), nil
	case 't':
		return p.literal('\t'), nil
	case 'r':
		return p.literal('\r'), nil
	case '\\', '.', '*', '+', '?', '[', ']', '^', '$', '-':
		return p.literal(c), nil
	default:
		return nil, p.errf(UnsupportedConstruct, "unsupported escape \\%c", c)
	}
}

func (p *parser) parseQuantifier(atom *node) (*node, *CompileError) {
	if p.pos >= len(p.src) {
		return atom, nil
	}
	switch p.src[p.pos] {
	case '*':
		p.pos++
		return &node{kind: nodeStar, child: atom}, nil
	case '+':
		p.pos++
		return &node{kind: nodePlus, child: atom}, nil
	case '?':
		p.pos++
		return &node{kind: nodeOpt, child: atom}, nil
	}
	return atom, nil
}

func (p *parser) parseClass() (*node, *CompileError) {
	start := p.pos
	p.pos++ // consume '['
	negated := false
	if p.pos < len(p.src) && p.src[p.pos] == '^' {
		negated = true
		p.pos++
	}

	var ranges []dfa.ByteRange
	first := true
	for {
		if p.pos >= len(p.src) {
			return nil, &CompileError{Kind: UnterminatedClass, Offset: p.base + start, Message: "'[' was never closed"}
		}
		if p.src[p.pos] == ']' && !first {
			p.pos++
			break
		}
		first = false

		lo, err := p.classChar()
		if err != nil {
			return nil, err
		}
		hi := lo
		if p.pos < len(p.src) && p.src[p.pos] == '-' && p.pos+1 < len(p.src) && p.src[p.pos+1] != ']' {
			p.pos++ // consume '-'
			hi, err = p.classChar()
			if err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, p.errf(UnsupportedConstruct, "inverted range %q-%q", lo, hi)
			}
		}
		ranges = append(ranges, dfa.ByteRange{Lo: lo, Hi: hi})
		if p.ci {
			ranges = append(ranges, caseExpandRange(lo, hi)...)
		}
	}
	if negated {
		ranges = negateRanges(ranges)
	}
	return classNode(ranges), nil
}

func (p *parser) classChar() (byte, *CompileError) {
	c := p.src[p.pos]
	if c != '\\' {
		p.pos++
		return c, nil
	}
	p.pos++
	if p.pos >= len(p.src) {
		return 0, &CompileError{Kind: UnterminatedClass, Offset: p.base + p.pos, Message: "dangling escape inside class"}
	}
	e := p.src[p.pos]
	p.pos++
	switch e {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '\\', '-', '[', ']', '^', '$', '.', '*', '+', '?':
		return e, nil
	default:
		return 0, p.errf(UnsupportedConstruct, "unsupported escape \\%c in class", e)
	}
}

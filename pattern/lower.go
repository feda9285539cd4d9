package pattern

import "github.com/obinexus/rift0/dfa"

// lower walks an AST node and builds the equivalent dfa.Fragment using
// the Compiler's Thompson-construction primitives. A nil node lowers to
// an empty-match fragment (the pattern matched only anchors, e.g. "^$").
func lower(c *dfa.Compiler, n *node) dfa.Fragment {
	if n == nil {
		return c.Opt(c.Class(nil)) // never consumes a byte but is a valid fragment
	}
	switch n.kind {
	case nodeLiteral:
		return c.Literal(n.ranges[0].Lo, n.ranges[0].Hi)
	case nodeClass:
		return c.Class(n.ranges)
	case nodeConcat:
		f := lower(c, n.children[0])
		for _, child := range n.children[1:] {
			f = c.Concat(f, lower(c, child))
		}
		return f
	case nodeStar:
		return c.Star(lower(c, n.child))
	case nodePlus:
		return c.Plus(lower(c, n.child))
	case nodeOpt:
		return c.Opt(lower(c, n.child))
	default:
		panic("pattern: unreachable node kind in lower")
	}
}

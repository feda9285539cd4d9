package dfa

// Fragment is an opaque, partially-built NFA fragment produced by Compiler
// methods. Callers (package pattern) compose fragments via Concat, Star,
// Plus, and Opt without ever inspecting their internals.
type Fragment struct {
	inner fragment
}

// Compiler exposes Thompson-construction primitives to package pattern,
// which parses the restricted regex dialect of spec §4.3 and drives this
// API to build one NFA fragment per pattern, then calls Build to
// determinize it into a Graph (spec §4.2).
type Compiler struct {
	b *nfaBuilder
}

// NewCompiler creates a Compiler ready to build a single pattern's NFA.
func NewCompiler() *Compiler {
	return &Compiler{b: newNFABuilder()}
}

// Literal builds an atom matching exactly one byte in [lo, hi].
func (c *Compiler) Literal(lo, hi byte) Fragment {
	return Fragment{c.b.byteRange(lo, hi)}
}

// Class builds an atom matching any byte covered by ranges. An empty
// ranges set never matches anything (a negated class that covers every
// byte lowers to one, and package pattern uses one inside the empty-match
// fragment of an anchors-only pattern).
func (c *Compiler) Class(ranges []ByteRange) Fragment {
	return Fragment{c.b.sparse(ranges)}
}

// Concat builds the fragment matching a followed by b.
func (c *Compiler) Concat(a, b Fragment) Fragment {
	return Fragment{c.b.concat(a.inner, b.inner)}
}

// Star builds f* (zero or more).
func (c *Compiler) Star(f Fragment) Fragment {
	return Fragment{c.b.star(f.inner)}
}

// Plus builds f+ (one or more).
func (c *Compiler) Plus(f Fragment) Fragment {
	return Fragment{c.b.plus(f.inner)}
}

// Opt builds f? (zero or one).
func (c *Compiler) Opt(f Fragment) Fragment {
	return Fragment{c.b.opt(f.inner)}
}

// Build finalizes f with a trailing accept state and determinizes the
// result into a Graph whose accept states carry kind and priority.
func (c *Compiler) Build(f Fragment, kind uint8, priority int) (*Graph, error) {
	start := c.b.finish(f.inner)
	return Determinize(c.b, start, kind, priority)
}

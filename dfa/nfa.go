package dfa

import "fmt"

// nfaStateID identifies a state in the intermediate NFA used only during
// pattern compilation. It is a distinct type from StateID to avoid
// confusing NFA-construction-time IDs with the DFA IDs Determinize
// produces.
type nfaStateID uint32

const invalidNFAState nfaStateID = 1<<32 - 1

type nfaStateKind uint8

const (
	nfaByteRange nfaStateKind = iota // matches one byte in [lo,hi], advances to next
	nfaSparse                        // matches one byte in any of ranges, advances to next
	nfaSplit                         // epsilon to left and right (alternation/quantifier branch)
	nfaEpsilon                       // epsilon to next
	nfaMatch                         // accepting; no outgoing transitions
)

// ByteRange is an inclusive byte interval [Lo, Hi] used by character
// classes and case-insensitive expansion.
type ByteRange struct {
	Lo, Hi byte
}

type nfaState struct {
	kind   nfaStateKind
	lo, hi byte
	ranges []ByteRange
	next   nfaStateID
	left   nfaStateID
	right  nfaStateID
}

// patch identifies one dangling outgoing pointer of an nfaState that must
// be filled in once the fragment it belongs to is concatenated with what
// follows. This is the classic Thompson-construction "patch list"
// technique (Aho/Sethi/Ullman; see also Russ Cox's regex-to-NFA series),
// adapted to the teacher's AddX/Patch vocabulary from nfa/builder.go.
type patch struct {
	state nfaStateID
	field patchField
}

type patchField uint8

const (
	patchNext patchField = iota
	patchLeft
	patchRight
)

// fragment is a partially-built piece of NFA: a single entry state and a
// list of dangling pointers to be patched with whatever comes next.
type fragment struct {
	start nfaStateID
	out   []patch
}

// nfaBuilder incrementally constructs an NFA fragment using Thompson
// construction, mirroring the teacher's nfa.Builder (AddByteRange,
// AddSplit, AddEpsilon, AddMatch, Patch/PatchSplit) one level removed from
// capture groups and lookaround, which this restricted dialect omits.
type nfaBuilder struct {
	states []nfaState
}

func newNFABuilder() *nfaBuilder {
	return &nfaBuilder{states: make([]nfaState, 0, 16)}
}

func (b *nfaBuilder) add(s nfaState) nfaStateID {
	id := nfaStateID(len(b.states))
	b.states = append(b.states, s)
	return id
}

// byteRange builds a single-byte-range atom fragment.
func (b *nfaBuilder) byteRange(lo, hi byte) fragment {
	id := b.add(nfaState{kind: nfaByteRange, lo: lo, hi: hi, next: invalidNFAState})
	return fragment{start: id, out: []patch{{id, patchNext}}}
}

// sparse builds an atom fragment matching any byte covered by ranges
// (character classes, negated classes, case-insensitive expansions, and
// the wildcard all lower to this).
func (b *nfaBuilder) sparse(ranges []ByteRange) fragment {
	cp := make([]ByteRange, len(ranges))
	copy(cp, ranges)
	id := b.add(nfaState{kind: nfaSparse, ranges: cp, next: invalidNFAState})
	return fragment{start: id, out: []patch{{id, patchNext}}}
}

// match builds a zero-state-consuming accept fragment (no outs: nothing
// ever follows a match in this grammar, since match is always the final
// fragment concatenated).
func (b *nfaBuilder) match() nfaStateID {
	return b.add(nfaState{kind: nfaMatch})
}

// concat splices g after f: every dangling out of f is patched to g's
// start, and the result's own outs become g's outs.
func (b *nfaBuilder) concat(f, g fragment) fragment {
	b.patchAll(f.out, g.start)
	return fragment{start: f.start, out: g.out}
}

// star builds f* : zero or more repetitions.
func (b *nfaBuilder) star(f fragment) fragment {
	split := b.add(nfaState{kind: nfaSplit, left: f.start, right: invalidNFAState})
	b.patchAll(f.out, split)
	return fragment{start: split, out: []patch{{split, patchRight}}}
}

// plus builds f+ : one or more repetitions.
func (b *nfaBuilder) plus(f fragment) fragment {
	split := b.add(nfaState{kind: nfaSplit, left: f.start, right: invalidNFAState})
	b.patchAll(f.out, split)
	return fragment{start: f.start, out: []patch{{split, patchRight}}}
}

// opt builds f? : zero or one repetitions.
func (b *nfaBuilder) opt(f fragment) fragment {
	split := b.add(nfaState{kind: nfaSplit, left: f.start, right: invalidNFAState})
	out := append([]patch{{split, patchRight}}, f.out...)
	return fragment{start: split, out: out}
}

func (b *nfaBuilder) patchAll(ps []patch, target nfaStateID) {
	for _, p := range ps {
		b.patchOne(p, target)
	}
}

func (b *nfaBuilder) patchOne(p patch, target nfaStateID) {
	s := &b.states[p.state]
	switch p.field {
	case patchNext:
		s.next = target
	case patchLeft:
		s.left = target
	case patchRight:
		s.right = target
	default:
		panic(fmt.Sprintf("dfa: unknown patch field %d", p.field))
	}
}

// finish concatenates the fragment with a trailing match state and
// returns the NFA's start state. Called once per compiled pattern.
func (b *nfaBuilder) finish(f fragment) nfaStateID {
	m := b.match()
	b.patchAll(f.out, m)
	return f.start
}

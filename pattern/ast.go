package pattern

import "github.com/obinexus/rift0/dfa"

// nodeKind tags the small AST the parser produces before lowering it to
// dfa.Fragment. The grammar (spec §4.3) has no alternation and no
// grouping, so concatenation is the only n-ary node.
type nodeKind uint8

const (
	nodeLiteral nodeKind = iota
	nodeClass
	nodeAny
	nodeConcat
	nodeStar
	nodePlus
	nodeOpt
)

// node is a single AST node. Only the fields relevant to kind are set.
type node struct {
	kind     nodeKind
	ranges   []dfa.ByteRange // nodeLiteral (single range), nodeClass (one or more)
	children []*node         // nodeConcat
	child    *node           // nodeStar, nodePlus, nodeOpt
}

func litNode(lo, hi byte) *node {
	return &node{kind: nodeLiteral, ranges: []dfa.ByteRange{{Lo: lo, Hi: hi}}}
}

func classNode(ranges []dfa.ByteRange) *node {
	return &node{kind: nodeClass, ranges: ranges}
}

func concatNode(children ...*node) *node {
	if len(children) == 1 {
		return children[0]
	}
	return &node{kind: nodeConcat, children: children}
}

package dfa

import (
	"hash/fnv"
	"sort"

	"github.com/obinexus/rift0/internal/sparse"
)

// Determinize runs subset construction over the NFA fragment rooted at
// start, producing a DFA Graph whose accept states are marked with kind
// and priority (spec §4.3: "the produced graph matches exactly the
// language of the pattern under the specified flags"; §4.2 for the Graph
// contract itself).
//
// The algorithm follows the standard Rabin-Scott construction: each DFA
// state is the epsilon-closure of a set of NFA states, computed once and
// cached by a hash of its sorted member IDs (mirroring the teacher's
// StateKey/ComputeStateKey/sortStateIDs in dfa/lazy/state.go, adapted
// here from a lazily-grown cache to an eager, one-shot compile since our
// graphs are small and built once per pattern, never evicted).
func Determinize(b *nfaBuilder, start nfaStateID, kind uint8, priority int) (*Graph, error) {
	g := NewGraph()

	closures := map[stateKey][]nfaStateID{}
	ids := map[stateKey]StateID{}

	startClosure := epsilonClosure(b, []nfaStateID{start})
	startKey := closureKey(startClosure)

	worklist := []stateKey{startKey}
	closures[startKey] = startClosure

	startID, err := g.AddState()
	if err != nil {
		return nil, err
	}
	ids[startKey] = startID
	if err := g.SetStart(startID); err != nil {
		return nil, err
	}
	if isAccepting(b, startClosure) {
		if err := g.MarkAccept(startID, kind, priority); err != nil {
			return nil, err
		}
	}

	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]
		closure := closures[key]
		fromID := ids[key]

		for bte := 0; bte < 256; bte++ {
			moved := move(b, closure, byte(bte))
			if len(moved) == 0 {
				continue
			}
			next := epsilonClosure(b, moved)
			nextKey := closureKey(next)

			nextID, seen := ids[nextKey]
			if !seen {
				nextID, err = g.AddState()
				if err != nil {
					return nil, err
				}
				ids[nextKey] = nextID
				closures[nextKey] = next
				worklist = append(worklist, nextKey)
				if isAccepting(b, next) {
					if err := g.MarkAccept(nextID, kind, priority); err != nil {
						return nil, err
					}
				}
			}
			if err := g.AddTransition(fromID, byte(bte), nextID); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// epsilonClosure follows split and epsilon edges from every state in the
// seed set and returns the full reachable set (seeds included).
func epsilonClosure(b *nfaBuilder, seeds []nfaStateID) []nfaStateID {
	seen := sparse.New(len(b.states))
	var stack []nfaStateID
	for _, s := range seeds {
		if !seen.Contains(uint32(s)) {
			seen.Add(uint32(s))
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		st := &b.states[id]
		switch st.kind {
		case nfaEpsilon:
			if !seen.Contains(uint32(st.next)) {
				seen.Add(uint32(st.next))
				stack = append(stack, st.next)
			}
		case nfaSplit:
			for _, nxt := range [2]nfaStateID{st.left, st.right} {
				if !seen.Contains(uint32(nxt)) {
					seen.Add(uint32(nxt))
					stack = append(stack, nxt)
				}
			}
		}
	}
	members := seen.Members()
	out := make([]nfaStateID, len(members))
	for i, m := range members {
		out[i] = nfaStateID(m)
	}
	return out
}

// move returns the set of NFA states reached by consuming byte bte from
// any byte-consuming state in closure.
func move(b *nfaBuilder, closure []nfaStateID, bte byte) []nfaStateID {
	var out []nfaStateID
	for _, id := range closure {
		st := &b.states[id]
		switch st.kind {
		case nfaByteRange:
			if bte >= st.lo && bte <= st.hi {
				out = append(out, st.next)
			}
		case nfaSparse:
			for _, r := range st.ranges {
				if bte >= r.Lo && bte <= r.Hi {
					out = append(out, st.next)
					break
				}
			}
		}
	}
	return out
}

func isAccepting(b *nfaBuilder, closure []nfaStateID) bool {
	for _, id := range closure {
		if b.states[id].kind == nfaMatch {
			return true
		}
	}
	return false
}

// stateKey is a hash of a canonicalized (sorted) NFA state set, used to
// recognize when two different byte transitions land on an equivalent
// DFA state.
type stateKey uint64

func closureKey(closure []nfaStateID) stateKey {
	sorted := make([]nfaStateID, len(closure))
	copy(sorted, closure)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, id := range sorted {
		buf[0] = byte(id)
		buf[1] = byte(id >> 8)
		buf[2] = byte(id >> 16)
		buf[3] = byte(id >> 24)
		_, _ = h.Write(buf)
	}
	return stateKey(h.Sum64())
}

package pattern

import (
	"sort"

	"github.com/obinexus/rift0/dfa"
)

// toggleCase returns the byte of opposite case for an ASCII letter, and
// false for anything else. Case-insensitivity in this dialect is ASCII
// only, matching the restricted grammar's byte-oriented design (spec
// §4.3 operates on bytes, not runes).
func toggleCase(c byte) (byte, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return c - ('a' - 'A'), true
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A'), true
	default:
		return 0, false
	}
}

// caseExpandRange returns the single-byte ranges needed to make [lo,hi]
// match both letter cases. Ranges handed to a character class are short
// in practice, so a byte-by-byte walk keeps this simple over a general
// interval-splitting algorithm.
func caseExpandRange(lo, hi byte) []dfa.ByteRange {
	var out []dfa.ByteRange
	for c := int(lo); c <= int(hi); c++ {
		if other, ok := toggleCase(byte(c)); ok {
			out = append(out, dfa.ByteRange{Lo: other, Hi: other})
		}
	}
	return out
}

// anyRanges returns the byte ranges '.' matches: every byte, or every
// byte but line-feed when multiline is off (spec §4.3's wildcard rule).
func anyRanges(multiline bool) []dfa.ByteRange {
	if multiline {
		return []dfa.ByteRange{{Lo: 0, Hi: 255}}
	}
	return []dfa.ByteRange{{Lo: 0, Hi: '\n' - 1}, {Lo: '\n' + 1, Hi: 255}}
}

// negateRanges returns the complement of ranges over the full byte
// range, used to lower [^...] classes.
func negateRanges(ranges []dfa.ByteRange) []dfa.ByteRange {
	sorted := make([]dfa.ByteRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	var out []dfa.ByteRange
	next := 0
	for _, r := range sorted {
		lo := int(r.Lo)
		hi := int(r.Hi)
		if lo > next {
			out = append(out, dfa.ByteRange{Lo: byte(next), Hi: byte(lo - 1)})
		}
		if hi+1 > next {
			next = hi + 1
		}
	}
	if next <= 255 {
		out = append(out, dfa.ByteRange{Lo: byte(next), Hi: 255})
	}
	return out
}

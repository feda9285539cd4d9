package rift0

import "github.com/obinexus/rift0/token"

// Route partitions tokens into classical and quantum channels,
// preserving relative order in each (spec §4.7). A token routes to the
// quantum channel if its kind is always-quantum (quantum-marker,
// collapse-marker, entangle-marker), or if it already carries
// token.FlagQuantum (set by Scan while the sticky quantum-mode toggle
// was in effect), or if sticky is true. Governance-tag tokens always
// route to the classical channel, carrying their governance flag bit.
//
// sticky lets this pure function classify a token slice that did not
// come from a Context's own Scan call (and so carries no FlagQuantum
// bits of its own) under an externally tracked sticky state; Context's
// own Route method always passes false, since its tokens are already
// correctly flagged by Scan.
func Route(tokens []token.Token, sticky bool) (classical, quantum []token.Token) {
	for _, tok := range tokens {
		switch {
		case tok.Kind().IsQuantum():
			quantum = append(quantum, tok)
		case tok.Kind() == token.KindGovernanceTag:
			classical = append(classical, tok)
		case sticky || tok.Flags().Has(token.FlagQuantum):
			quantum = append(quantum, tok)
		default:
			classical = append(classical, tok)
		}
	}
	return classical, quantum
}

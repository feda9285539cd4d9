package scan

import (
	"testing"

	"github.com/obinexus/rift0/registry"
	"github.com/obinexus/rift0/token"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	must := func(name, src string, kind token.Kind, priority int) {
		if _, err := r.Register(name, src, kind, priority, 0); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	must("identifier", `[a-zA-Z_][a-zA-Z0-9_]*`, token.KindIdentifier, 50)
	must("number", `[0-9]+`, token.KindNumber, 50)
	must("operator", `[+\-*/]`, token.KindOperator, 50)
	must("whitespace", `[ \t\n]+`, token.KindWhitespace, 10)
	must("kw-if", "if", token.KindKeyword, 100)
	must("kw-while", "while", token.KindKeyword, 100)
	return r
}

func TestScanEmptyInput(t *testing.T) {
	r := newTestRegistry(t)
	res, err := Scan(r, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(res.Tokens) != 1 || res.Tokens[0].Kind() != token.KindEOF {
		t.Fatalf("tokens = %v, want single eof token", res.Tokens)
	}
}

func TestScanIdentifier(t *testing.T) {
	r := newTestRegistry(t)
	res, err := Scan(r, []byte("abc"), DefaultOptions())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(res.Tokens) != 2 {
		t.Fatalf("tokens = %v, want [identifier, eof]", res.Tokens)
	}
	tok := res.Tokens[0]
	if tok.Kind() != token.KindIdentifier || tok.Offset() != 0 || tok.Length() != 3 {
		t.Fatalf("token = %v, want identifier@0+3", tok)
	}
	if res.Tokens[1].Kind() != token.KindEOF || res.Tokens[1].Offset() != 3 {
		t.Fatalf("eof token = %v, want eof@3", res.Tokens[1])
	}
}

func TestScanNumberAndOperator(t *testing.T) {
	r := newTestRegistry(t)
	res, err := Scan(r, []byte("12+34"), DefaultOptions())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	wantKinds := []token.Kind{token.KindNumber, token.KindOperator, token.KindNumber, token.KindEOF}
	if len(res.Tokens) != len(wantKinds) {
		t.Fatalf("tokens = %v, want %d tokens", res.Tokens, len(wantKinds))
	}
	for i, want := range wantKinds {
		if res.Tokens[i].Kind() != want {
			t.Errorf("tokens[%d].Kind() = %v, want %v", i, res.Tokens[i].Kind(), want)
		}
	}
}

func TestScanKeywordPriorityTieBreak(t *testing.T) {
	r := newTestRegistry(t)
	res, err := Scan(r, []byte("if"), DefaultOptions())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(res.Tokens) != 2 || res.Tokens[0].Kind() != token.KindKeyword {
		t.Fatalf("tokens = %v, want [keyword, eof] (keyword beats identifier on priority)", res.Tokens)
	}
	if res.Tokens[0].Length() != 2 {
		t.Fatalf("keyword token length = %d, want 2", res.Tokens[0].Length())
	}
}

func TestScanLenientRecoversUnknownByte(t *testing.T) {
	r := newTestRegistry(t)
	res, err := Scan(r, []byte("a#b"), DefaultOptions())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	wantKinds := []token.Kind{token.KindIdentifier, token.KindUnknown, token.KindIdentifier, token.KindEOF}
	if len(res.Tokens) != len(wantKinds) {
		t.Fatalf("tokens = %v, want %d tokens", res.Tokens, len(wantKinds))
	}
	for i, want := range wantKinds {
		if res.Tokens[i].Kind() != want {
			t.Errorf("tokens[%d].Kind() = %v, want %v", i, res.Tokens[i].Kind(), want)
		}
	}
	if res.Tokens[1].Length() != 1 {
		t.Errorf("unknown token length = %d, want 1", res.Tokens[1].Length())
	}
}

func TestScanStrictModeStopsOnFirstUnmatched(t *testing.T) {
	r := newTestRegistry(t)
	res, err := Scan(r, []byte("a#b"), Options{Strict: true})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !res.StrictFailed {
		t.Fatal("expected StrictFailed")
	}
	if len(res.Tokens) != 2 {
		t.Fatalf("tokens = %v, want [identifier, error]", res.Tokens)
	}
	if res.Tokens[1].Kind() != token.KindError || res.Tokens[1].Offset() != 1 {
		t.Fatalf("error token = %v, want error@1", res.Tokens[1])
	}
}

func TestScanQuantumToggleAppliesToSubsequentTokensOnly(t *testing.T) {
	r := registry.New()
	if _, err := r.Register("toggle-quantum", "!quantum", token.KindOperator, 100, 0); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := r.Register("identifier", `[a-zA-Z_]+`, token.KindIdentifier, 50, 0); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := r.Register("whitespace", `[ ]+`, token.KindWhitespace, 10, 0); err != nil {
		t.Fatalf("Register: %v", err)
	}
	res, err := Scan(r, []byte("!quantum x"), DefaultOptions())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(res.Tokens) != 4 {
		t.Fatalf("tokens = %v, want [operator(!quantum), whitespace, identifier(x), eof]", res.Tokens)
	}
	if res.Tokens[0].Flags().Has(token.FlagQuantum) {
		t.Error("the token that triggers the toggle should not itself carry FlagQuantum (subsequent-only resolution)")
	}
	if !res.Tokens[1].Flags().Has(token.FlagQuantum) || !res.Tokens[2].Flags().Has(token.FlagQuantum) {
		t.Error("tokens after the toggle should carry FlagQuantum")
	}
}

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	line, col := 1, 1
	Advance([]byte("x\ny"), &line, &col)
	if line != 2 || col != 2 {
		t.Fatalf("line,col = %d,%d, want 2,2", line, col)
	}
}

// TestScanCoverage checks the coverage invariant: non-eof token lengths
// sum to |input|, offsets strictly increase, and consecutive tokens
// abut (offset[n+1] == offset[n] + length[n]).
func TestScanCoverage(t *testing.T) {
	r := newTestRegistry(t)
	for _, input := range []string{"abc", "12+34", "if x while y", "a#b", ""} {
		res, err := Scan(r, []byte(input), DefaultOptions())
		if err != nil {
			t.Fatalf("Scan(%q): %v", input, err)
		}
		var sum uint32
		for i, tok := range res.Tokens {
			if tok.Kind() == token.KindEOF {
				continue
			}
			if i > 0 && tok.Offset() <= res.Tokens[i-1].Offset() {
				t.Fatalf("input %q: token offsets not strictly increasing at %d: %v", input, i, res.Tokens)
			}
			if i > 0 {
				prev := res.Tokens[i-1]
				if prev.Kind() != token.KindEOF && tok.Offset() != prev.Offset()+prev.Length() {
					t.Fatalf("input %q: token %d does not abut token %d: %v", input, i, i-1, res.Tokens)
				}
			}
			sum += tok.Length()
		}
		if sum != uint32(len(input)) {
			t.Fatalf("input %q: sum of token lengths = %d, want %d", input, sum, len(input))
		}
	}
}

// TestScanDeterminism checks that two scans of the same input against
// equivalently-configured registries produce identical token sequences.
func TestScanDeterminism(t *testing.T) {
	input := []byte("if foo12 + bar while 7")
	r1 := newTestRegistry(t)
	r2 := newTestRegistry(t)

	res1, err := Scan(r1, input, DefaultOptions())
	if err != nil {
		t.Fatalf("Scan (first): %v", err)
	}
	res2, err := Scan(r2, input, DefaultOptions())
	if err != nil {
		t.Fatalf("Scan (second): %v", err)
	}
	if len(res1.Tokens) != len(res2.Tokens) {
		t.Fatalf("token count differs: %d vs %d", len(res1.Tokens), len(res2.Tokens))
	}
	for i := range res1.Tokens {
		a, b := res1.Tokens[i], res2.Tokens[i]
		if a.Kind() != b.Kind() || a.Offset() != b.Offset() || a.Length() != b.Length() || a.Flags() != b.Flags() {
			t.Fatalf("token %d differs: %v vs %v", i, a, b)
		}
	}
}

package dfa

import "testing"

// walk simulates a compiled graph against a whole input and returns
// whether the graph ends in an accept state and that state's accept kind.
func walk(t *testing.T, g *Graph, input string) (accept bool, kind uint8) {
	t.Helper()
	cur := g.Start()
	for i := 0; i < len(input); i++ {
		next, ok := g.Step(cur, input[i])
		if !ok {
			return false, 0
		}
		cur = next
	}
	st, err := g.State(cur)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	return st.IsAccept(), st.AcceptKind()
}

func TestDeterminizeLiteralConcat(t *testing.T) {
	b := newNFABuilder()
	// "if"
	f := b.concat(b.byteRange('i', 'i'), b.byteRange('f', 'f'))
	start := b.finish(f)
	g, err := Determinize(b, start, 3, 100)
	if err != nil {
		t.Fatalf("Determinize: %v", err)
	}
	if ok, kind := walk(t, g, "if"); !ok || kind != 3 {
		t.Fatalf("walk(if) = (%v,%v), want (true,3)", ok, kind)
	}
	if ok, _ := walk(t, g, "i"); ok {
		t.Fatal("walk(i) should not accept (partial match)")
	}
}

func TestDeterminizeStar(t *testing.T) {
	b := newNFABuilder()
	f := b.star(b.sparse([]ByteRange{{'a', 'z'}}))
	start := b.finish(f)
	g, err := Determinize(b, start, 1, 50)
	if err != nil {
		t.Fatalf("Determinize: %v", err)
	}
	for _, in := range []string{"", "a", "abc", "hello"} {
		if ok, _ := walk(t, g, in); !ok {
			t.Errorf("walk(%q) should accept under [a-z]*", in)
		}
	}
	if ok, _ := walk(t, g, "ab1"); ok {
		t.Error("walk(ab1) should not accept: digit outside class")
	}
}

func TestDeterminizePlus(t *testing.T) {
	b := newNFABuilder()
	f := b.plus(b.sparse([]ByteRange{{'0', '9'}}))
	start := b.finish(f)
	g, err := Determinize(b, start, 2, 100)
	if err != nil {
		t.Fatalf("Determinize: %v", err)
	}
	if ok, _ := walk(t, g, ""); ok {
		t.Error("walk(\"\") should not accept under [0-9]+ (at least one required)")
	}
	if ok, _ := walk(t, g, "12+34"); ok {
		t.Error("walk of whole string with operator should not accept")
	}
	if ok, _ := walk(t, g, "12"); !ok {
		t.Error("walk(12) should accept under [0-9]+")
	}
}

func TestDeterminizeOpt(t *testing.T) {
	b := newNFABuilder()
	f := b.concat(b.byteRange('-', '-'), b.opt(b.byteRange('-', '-')))
	start := b.finish(f)
	g, err := Determinize(b, start, 4, 10)
	if err != nil {
		t.Fatalf("Determinize: %v", err)
	}
	if ok, _ := walk(t, g, "-"); !ok {
		t.Error("walk(-) should accept under -?-")
	}
	if ok, _ := walk(t, g, "--"); !ok {
		t.Error("walk(--) should accept under -?-")
	}
	if ok, _ := walk(t, g, "---"); ok {
		t.Error("walk(---) should not accept: only one optional repeat")
	}
}

func TestDeterminizeNegatedClass(t *testing.T) {
	b := newNFABuilder()
	// [^"] -- anything but a quote, used for string bodies
	var ranges []ByteRange
	for lo := 0; lo < 256; lo++ {
		if lo == '"' {
			continue
		}
		hi := lo
		for hi+1 < 256 && hi+1 != '"' {
			hi++
		}
		ranges = append(ranges, ByteRange{byte(lo), byte(hi)})
		lo = hi
	}
	f := b.plus(b.sparse(ranges))
	start := b.finish(f)
	g, err := Determinize(b, start, 5, 10)
	if err != nil {
		t.Fatalf("Determinize: %v", err)
	}
	if ok, _ := walk(t, g, "hello world"); !ok {
		t.Error("walk(hello world) should accept [^\"]+")
	}
	if ok, _ := walk(t, g, "hello\"world"); ok {
		t.Error("walk containing a quote should not accept fully")
	}
}

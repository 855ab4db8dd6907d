package primitive

import "testing"

func TestFromNameExactAndPrefix(t *testing.T) {
	if p, ok := FromName("reverse"); !ok || p.Kind() != Reverse {
		t.Fatalf("exact match for reverse failed: %v %v", p, ok)
	}
	if p, ok := FromName("rev"); !ok || p.Kind() != Reverse {
		t.Fatalf("unambiguous prefix 'rev' should resolve to Reverse: %v %v", p, ok)
	}
	if _, ok := FromName("re"); ok {
		t.Fatalf("'re' is too short (< 3 chars) and must not resolve")
	}
	if p, ok := FromName("resh"); !ok || p.Kind() != Reshape {
		t.Fatalf("unambiguous prefix 'resh' should resolve to Reshape: %v %v", p, ok)
	}
}

func TestFromNameAmbiguousPrefixFails(t *testing.T) {
	// "ran" is long enough to pass the length floor but prefixes both Range
	// and Rank.
	if _, ok := FromName("ran"); ok {
		t.Fatalf("'ran' is ambiguous between Range and Rank and must not resolve")
	}
}

func TestFromNamePiSpecialCase(t *testing.T) {
	for _, name := range []string{"pi", "π", "PI"} {
		p, ok := FromName(name)
		if !ok || p.Kind() != Pi {
			t.Fatalf("FromName(%q) should resolve to Pi, got %v %v", name, p, ok)
		}
	}
}

func TestFromNameRejectsNamelessInversePartners(t *testing.T) {
	for _, name := range []string{"asin", "acos", "root", "asi", "aco", "roo"} {
		if _, ok := FromName(name); ok {
			t.Fatalf("FromName(%q) should not resolve: Asin, Acos, and Root have no canonical name", name)
		}
	}
}

func TestFromNameIoCatalogTakesPriority(t *testing.T) {
	p, ok := FromName("print")
	if !ok || !p.IsIo() {
		t.Fatalf("FromName(\"print\") should resolve to an Io primitive, got %v %v", p, ok)
	}
}

func TestAsciiUnicodeRoundTrip(t *testing.T) {
	for _, p := range All() {
		if tok, ok := p.Ascii(); ok {
			got, ok := FromSimple(tok)
			if !ok || !got.Equals(p) {
				t.Errorf("FromSimple(ascii(%s)) did not round-trip: got %v", p.Name(), got)
			}
		}
		if glyph, ok := p.Unicode(); ok {
			got, ok := FromUnicode(glyph)
			if !ok || !got.Equals(p) {
				t.Errorf("FromUnicode(unicode(%s)) did not round-trip: got %v", p.Name(), got)
			}
		}
	}
}

func TestInverseIsInvolution(t *testing.T) {
	for _, p := range All() {
		inv, ok := p.Inverse()
		if !ok {
			continue
		}
		back, ok := inv.Inverse()
		if !ok || !back.Equals(p) {
			t.Errorf("%s's inverse %s does not invert back to %s", p.Name(), inv.Name(), p.Name())
		}
	}
}

func TestSelfInverseSet(t *testing.T) {
	for _, k := range []Kind{Flip, Neg, Not, Reverse} {
		p := Of(k)
		inv, ok := p.Inverse()
		if !ok || !inv.Equals(p) {
			t.Errorf("%s should be self-inverse", p.Name())
		}
	}
}

func TestNoInverseForOrdinaryOps(t *testing.T) {
	for _, k := range []Kind{Dup, Join, Take, Len} {
		if _, ok := Of(k).Inverse(); ok {
			t.Errorf("%s should have no defined inverse", Of(k).Name())
		}
	}
}

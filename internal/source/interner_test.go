package source

import "testing"

func TestInternerRoundTrip(t *testing.T) {
	in := NewInterner()

	a := in.Intern("alpha")
	b := in.Intern("beta")
	if a == b {
		t.Fatal("distinct strings must get distinct IDs")
	}
	if again := in.Intern("alpha"); again != a {
		t.Errorf("re-intern: got %d, want %d", again, a)
	}

	if s := in.MustLookup(a); s != "alpha" {
		t.Errorf("lookup: got %q", s)
	}
	if s, ok := in.Lookup(StringID(999)); ok || s != "" {
		t.Errorf("expected invalid lookup to fail, got %q ok=%v", s, ok)
	}
}

func TestInternerEmptyString(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string: got %d, want %d", id, NoStringID)
	}
	if in.Len() != 1 {
		t.Errorf("fresh interner Len: got %d, want 1", in.Len())
	}
}

func TestInternerBytesDoNotAlias(t *testing.T) {
	in := NewInterner()
	buf := []byte("register")
	id := in.InternBytes(buf)
	buf[0] = 'X'
	if s := in.MustLookup(id); s != "register" {
		t.Errorf("interned string was mutated through caller buffer: %q", s)
	}
}

package lexer

import (
	"testing"

	"volt/internal/source"
)

func testFile(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor.vt", []byte(content))
	return fs.Get(id)
}

func TestCursorBumpAndEOF(t *testing.T) {
	c := NewCursor(testFile(t, "ab"))
	if c.EOF() {
		t.Fatal("fresh cursor should not be at EOF")
	}
	if got := c.Bump(); got != 'a' {
		t.Fatalf("Bump() = %q, want 'a'", got)
	}
	if got := c.Bump(); got != 'b' {
		t.Fatalf("Bump() = %q, want 'b'", got)
	}
	if !c.EOF() {
		t.Fatal("cursor should be at EOF")
	}
	if got := c.Bump(); got != 0 {
		t.Fatalf("Bump() at EOF = %q, want 0", got)
	}
}

func TestCursorPeekVariants(t *testing.T) {
	c := NewCursor(testFile(t, "xyz"))
	if c.Peek() != 'x' {
		t.Fatal("Peek mismatch")
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'x' || b1 != 'y' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if b0, b1, b2, ok := c.Peek3(); !ok || b0 != 'x' || b1 != 'y' || b2 != 'z' {
		t.Fatalf("Peek3 = %q %q %q %v", b0, b1, b2, ok)
	}
	c.Bump()
	if _, _, _, ok := c.Peek3(); ok {
		t.Fatal("Peek3 past end should fail")
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := NewCursor(testFile(t, "hello"))
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v, want [0,2)", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatalf("Reset failed, Off = %d", c.Off)
	}
}

func TestCursorEat(t *testing.T) {
	c := NewCursor(testFile(t, "=+"))
	if !c.Eat('=') {
		t.Fatal("Eat('=') should succeed")
	}
	if c.Eat('=') {
		t.Fatal("Eat('=') should fail on '+'")
	}
	if !c.Eat('+') {
		t.Fatal("Eat('+') should succeed")
	}
}

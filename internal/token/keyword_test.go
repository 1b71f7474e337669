package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"return": KwReturn,
		"true":   BoolLit,
		"false":  BoolLit,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// case matters; type names and directive names are plain identifiers
	notKw := []string{
		"Return", "TRUE", "False",
		"i32", "string", "bool",
		"import", "const", "func", "while", "for", "typeOf",
		"identifier",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestLookupDirective(t *testing.T) {
	cases := map[string]Kind{
		"import": DirImport,
		"const":  DirConst,
		"typeOf": DirTypeOf,
		"func":   DirFunc,
		"while":  DirWhile,
		"for":    DirFor,
	}
	for name, want := range cases {
		got, ok := LookupDirective(name)
		if !ok || got != want {
			t.Fatalf("LookupDirective(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}

	for _, s := range []string{"typeof", "Import", "fn", "loop", ""} {
		if _, ok := LookupDirective(s); ok {
			t.Fatalf("LookupDirective(%q) returned ok=true, want false", s)
		}
	}
}

package lexer_test

import (
	"testing"

	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/source"
	"volt/internal/token"
)

func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vt", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1] // drop EOF

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\ndiags: %v",
			len(expected), len(tokens), input, tokens, bag.Items())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind {
		t.Errorf("input %q: expected kind %v, got %v", input, kind, tok.Kind)
	}
	if tok.Text != text {
		t.Errorf("input %q: expected text %q, got %q", input, text, tok.Text)
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	expectSingleToken(t, "myFunc", token.Ident, "myFunc")
	expectSingleToken(t, "_under", token.Ident, "_under")
	expectSingleToken(t, "return", token.KwReturn, "return")
	expectSingleToken(t, "true", token.BoolLit, "true")
	expectSingleToken(t, "false", token.BoolLit, "false")
	// uppercase is not a keyword
	expectSingleToken(t, "Return", token.Ident, "Return")
}

func TestScanNumbers(t *testing.T) {
	expectSingleToken(t, "0", token.NumberLit, "0")
	expectSingleToken(t, "123", token.NumberLit, "123")
	expectSingleToken(t, "1.5", token.NumberLit, "1.5")
	expectSingleToken(t, "0xFF", token.HexLit, "0xFF")
	expectSingleToken(t, "0b1010", token.BinaryLit, "0b1010")
	expectSingleToken(t, "0o755", token.OctalLit, "0o755")
}

func TestNumberDotIsMemberAccess(t *testing.T) {
	// "1.foo" must not swallow the dot into the number
	expectTokens(t, "1.foo", []token.Kind{token.NumberLit, token.Dot, token.Ident})
}

func TestRadixPrefixWithoutDigits(t *testing.T) {
	lx, bag := makeTestLexer("0x")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid token, got %v", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for bare radix prefix")
	}
	if bag.Items()[0].Code != diag.LexBadNumber {
		t.Fatalf("expected LexBadNumber, got %v", bag.Items()[0].Code.ID())
	}
}

func TestScanStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, "hello")
	expectSingleToken(t, `'hi there'`, token.StringLit, "hi there")
	expectSingleToken(t, `""`, token.StringLit, "")
	// quote kinds do not terminate each other
	expectSingleToken(t, `"it's"`, token.StringLit, "it's")
}

func TestUnterminatedString(t *testing.T) {
	input := "$a = \"abc"
	lx, bag := makeTestLexer(input)
	toks := collectAllTokens(lx)

	last := toks[len(toks)-2] // before EOF
	if last.Kind != token.Invalid {
		t.Fatalf("expected Invalid token for unterminated string, got %v", last.Kind)
	}
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	d := bag.Items()[0]
	if d.Code != diag.LexUnterminatedString {
		t.Fatalf("expected LexUnterminatedString, got %s", d.Code.ID())
	}
	// span starts at the opening quote
	if d.Primary.Start != 5 {
		t.Fatalf("diagnostic should point at the opening quote (offset 5), got %d", d.Primary.Start)
	}
}

func TestMultilineStringRejected(t *testing.T) {
	lx, bag := makeTestLexer("\"ab\ncd\"")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexMultilineString {
		t.Fatalf("expected LexMultilineString, got %v", bag.Items())
	}
}

func TestScanRegister(t *testing.T) {
	lx, _ := makeTestLexer("$counter")
	tok := lx.Next()
	if tok.Kind != token.Register {
		t.Fatalf("expected Register, got %v", tok.Kind)
	}
	if tok.Text != "counter" {
		t.Fatalf("register text should exclude the sigil, got %q", tok.Text)
	}
	if tok.Span.Start != 0 || tok.Span.End != 8 {
		t.Fatalf("register span should include the sigil, got %v", tok.Span)
	}
}

func TestScanRegisterWithTypeAnnotation(t *testing.T) {
	lx, _ := makeTestLexer("$a: i32")
	reg := lx.Next()
	annot := lx.Next()
	if reg.Kind != token.Register || reg.Text != "a" {
		t.Fatalf("expected Register 'a', got %v %q", reg.Kind, reg.Text)
	}
	if annot.Kind != token.TypeAnnot || annot.Text != "i32" {
		t.Fatalf("expected TypeAnnot 'i32', got %v %q", annot.Kind, annot.Text)
	}
}

func TestEmptyRegisterName(t *testing.T) {
	lx, bag := makeTestLexer("$ = 1;")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexEmptyRegisterName {
		t.Fatalf("expected LexEmptyRegisterName, got %v", bag.Items())
	}
}

func TestScanDirectives(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"@import", token.DirImport},
		{"@const", token.DirConst},
		{"@typeOf", token.DirTypeOf},
		{"@func", token.DirFunc},
		{"@while", token.DirWhile},
		{"@for", token.DirFor},
	}
	for _, tc := range cases {
		lx, _ := makeTestLexer(tc.input)
		tok := lx.Next()
		if tok.Kind != tc.kind {
			t.Errorf("%s: expected %v, got %v", tc.input, tc.kind, tok.Kind)
		}
		if tok.Text != tc.input[1:] {
			t.Errorf("%s: expected text %q, got %q", tc.input, tc.input[1:], tok.Text)
		}
	}
}

func TestUnknownDirective(t *testing.T) {
	lx, bag := makeTestLexer("@bogus")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexUnknownDirective {
		t.Fatalf("expected LexUnknownDirective, got %v", bag.Items())
	}
}

func TestScanOperatorsGreedy(t *testing.T) {
	expectTokens(t, "&&= ||= && || == != <= >= += -= *= /= %= ^=", []token.Kind{
		token.AndAndAssign, token.OrOrAssign,
		token.AndAnd, token.OrOr,
		token.EqEq, token.BangEq, token.LtEq, token.GtEq,
		token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.CaretAssign,
	})
	expectTokens(t, "+ - * / % ^ = ! < > | : ; , . ( ) { }", []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Caret, token.Assign, token.Bang, token.Lt, token.Gt,
		token.PipeDelim, token.Colon, token.Semicolon, token.Comma, token.Dot,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
	})
}

func TestUnknownCharacter(t *testing.T) {
	lx, bag := makeTestLexer("~")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected LexUnknownChar, got %v", bag.Items())
	}
}

func TestLineCommentsAreTrivia(t *testing.T) {
	lx, _ := makeTestLexer("# note\n$a = 1;")
	tok := lx.Next()
	if tok.Kind != token.Register {
		t.Fatalf("expected Register after comment, got %v", tok.Kind)
	}
	var sawComment bool
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaLineComment {
			sawComment = true
			if tr.Text != "# note" {
				t.Errorf("comment text = %q, want %q", tr.Text, "# note")
			}
		}
	}
	if !sawComment {
		t.Fatal("expected the comment retained as leading trivia")
	}
}

func TestMemberAccessTokens(t *testing.T) {
	expectTokens(t, "$a.b.c()", []token.Kind{
		token.Register, token.Dot, token.Ident, token.Dot, token.Ident,
		token.LParen, token.RParen,
	})
}

func TestWholeStatement(t *testing.T) {
	expectTokens(t, `@func add(a: i32, b: i32): i32 { return a + b; }`, []token.Kind{
		token.DirFunc, token.Ident, token.LParen,
		token.Ident, token.Colon, token.Ident, token.Comma,
		token.Ident, token.Colon, token.Ident, token.RParen,
		token.Colon, token.Ident,
		token.LBrace, token.KwReturn, token.Ident, token.Plus, token.Ident,
		token.Semicolon, token.RBrace,
	})
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("$a = 1;")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Fatalf("Peek/Next mismatch: %v %q vs %v %q", p.Kind, p.Text, n.Kind, n.Text)
	}
	if lx.Next().Kind != token.Assign {
		t.Fatal("stream out of sync after Peek")
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	if lx.Next().Kind != token.EOF {
		t.Fatal("expected EOF on empty input")
	}
	if lx.Next().Kind != token.EOF {
		t.Fatal("EOF must repeat")
	}
}

package token

var keywords = map[string]Kind{
	"return": KwReturn,
	"true":   BoolLit,
	"false":  BoolLit,
}

var directives = map[string]Kind{
	"import": DirImport,
	"const":  DirConst,
	"typeOf": DirTypeOf,
	"func":   DirFunc,
	"while":  DirWhile,
	"for":    DirFor,
}

// LookupKeyword returns the kind for an identifier lexeme that is a keyword
// or boolean literal. Keywords are case-sensitive, lowercase only.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupDirective returns the kind for a directive name (the run after '@').
// The set is closed; anything else is a lexical error.
func LookupDirective(name string) (Kind, bool) {
	k, ok := directives[name]
	return k, ok
}

package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Register represents a '$name' register reference token; Text holds the
	// name without the sigil.
	Register
	// TypeAnnot represents the type name scanned after a register's ':'
	// annotation; Text holds the type name.
	TypeAnnot
	// KwReturn represents the 'return' keyword.
	KwReturn // return

	// NumberLit represents a decimal integer or fractional literal.
	NumberLit
	// HexLit represents a hexadecimal literal with its '0x' prefix retained.
	HexLit
	// BinaryLit represents a binary literal with its '0b' prefix retained.
	BinaryLit
	// OctalLit represents an octal literal with its '0o' prefix retained.
	OctalLit
	// BoolLit represents the 'true' or 'false' literal.
	BoolLit
	// StringLit represents a string literal; Text holds the unquoted content.
	StringLit

	// DirImport represents the '@import' directive keyword.
	DirImport // @import
	// DirConst represents the '@const' directive keyword.
	DirConst // @const
	// DirTypeOf represents the '@typeOf' directive keyword.
	DirTypeOf // @typeOf
	// DirFunc represents the '@func' directive keyword.
	DirFunc // @func
	// DirWhile represents the '@while' directive keyword.
	DirWhile // @while
	// DirFor represents the '@for' directive keyword.
	DirFor // @for

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token (binary or prefix).
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Caret represents the caret operator token.
	Caret // ^
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// Bang represents the logical-not operator token.
	Bang // !

	// Assign represents the plain assignment operator token.
	Assign // =
	// PlusAssign represents the compound plus-assignment token.
	PlusAssign // +=
	// MinusAssign represents the compound minus-assignment token.
	MinusAssign // -=
	// StarAssign represents the compound star-assignment token.
	StarAssign // *=
	// SlashAssign represents the compound slash-assignment token.
	SlashAssign // /=
	// PercentAssign represents the compound percent-assignment token.
	PercentAssign // %=
	// CaretAssign represents the compound caret-assignment token.
	CaretAssign // ^=
	// AndAndAssign represents the compound logical-and-assignment token.
	AndAndAssign // &&=
	// OrOrAssign represents the compound logical-or-assignment token.
	OrOrAssign // ||=

	// LParen represents the left parenthesis delimiter token.
	LParen // (
	// RParen represents the right parenthesis delimiter token.
	RParen // )
	// LBrace represents the left brace delimiter token.
	LBrace // {
	// RBrace represents the right brace delimiter token.
	RBrace // }
	// Comma represents the comma delimiter token.
	Comma // ,
	// Semicolon represents the semicolon delimiter token.
	Semicolon // ;
	// Colon represents the colon delimiter token.
	Colon // :
	// Dot represents the dot delimiter token.
	Dot // .
	// PipeDelim represents the '|' delimiter used by while-loop captures.
	PipeDelim // |
)

// IsLiteral reports whether the kind is a numeric, boolean, or string literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case NumberLit, HexLit, BinaryLit, OctalLit, BoolLit, StringLit:
		return true
	default:
		return false
	}
}

// IsDirective reports whether the kind is a '@' compiler-directive keyword.
func (k Kind) IsDirective() bool {
	switch k {
	case DirImport, DirConst, DirTypeOf, DirFunc, DirWhile, DirFor:
		return true
	default:
		return false
	}
}

// IsBinaryOp reports whether the kind can appear as an infix binary operator.
func (k Kind) IsBinaryOp() bool {
	switch k {
	case Plus, Minus, Star, Slash, Percent, Caret,
		EqEq, BangEq, Lt, LtEq, Gt, GtEq, AndAnd, OrOr:
		return true
	default:
		return false
	}
}

// IsUnaryOp reports whether the kind is a dedicated prefix operator.
// Minus and Plus double as binary operators; position disambiguates.
func (k Kind) IsUnaryOp() bool {
	return k == Bang || k == Minus
}

// IsAssignOp reports whether the kind is an assignment operator.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		PercentAssign, CaretAssign, AndAndAssign, OrOrAssign:
		return true
	default:
		return false
	}
}

// IsDelim reports whether the kind is a delimiter.
func (k Kind) IsDelim() bool {
	switch k {
	case LParen, RParen, LBrace, RBrace, Comma, Semicolon, Colon, Dot, PipeDelim:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Register:
		return "Register"
	case TypeAnnot:
		return "TypeAnnot"
	case KwReturn:
		return "KwReturn"
	case NumberLit:
		return "NumberLit"
	case HexLit:
		return "HexLit"
	case BinaryLit:
		return "BinaryLit"
	case OctalLit:
		return "OctalLit"
	case BoolLit:
		return "BoolLit"
	case StringLit:
		return "StringLit"
	case DirImport:
		return "DirImport"
	case DirConst:
		return "DirConst"
	case DirTypeOf:
		return "DirTypeOf"
	case DirFunc:
		return "DirFunc"
	case DirWhile:
		return "DirWhile"
	case DirFor:
		return "DirFor"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Percent:
		return "Percent"
	case Caret:
		return "Caret"
	case EqEq:
		return "EqEq"
	case BangEq:
		return "BangEq"
	case Lt:
		return "Lt"
	case LtEq:
		return "LtEq"
	case Gt:
		return "Gt"
	case GtEq:
		return "GtEq"
	case AndAnd:
		return "AndAnd"
	case OrOr:
		return "OrOr"
	case Bang:
		return "Bang"
	case Assign:
		return "Assign"
	case PlusAssign:
		return "PlusAssign"
	case MinusAssign:
		return "MinusAssign"
	case StarAssign:
		return "StarAssign"
	case SlashAssign:
		return "SlashAssign"
	case PercentAssign:
		return "PercentAssign"
	case CaretAssign:
		return "CaretAssign"
	case AndAndAssign:
		return "AndAndAssign"
	case OrOrAssign:
		return "OrOrAssign"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case Comma:
		return "Comma"
	case Semicolon:
		return "Semicolon"
	case Colon:
		return "Colon"
	case Dot:
		return "Dot"
	case PipeDelim:
		return "PipeDelim"
	}
	return "Unknown"
}

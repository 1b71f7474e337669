package ast

// BinaryOp enumerates binary operators in the expression grammar.
type BinaryOp uint8

const (
	BinInvalid BinaryOp = iota
	BinAdd              // +
	BinSub              // -
	BinMul              // *
	BinDiv              // /
	BinRem              // %
	BinCaret            // ^
	BinEq               // ==
	BinNe               // !=
	BinLt               // <
	BinLe               // <=
	BinGt               // >
	BinGe               // >=
	BinAnd              // &&
	BinOr               // ||
)

func (op BinaryOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinRem:
		return "%"
	case BinCaret:
		return "^"
	case BinEq:
		return "=="
	case BinNe:
		return "!="
	case BinLt:
		return "<"
	case BinLe:
		return "<="
	case BinGt:
		return ">"
	case BinGe:
		return ">="
	case BinAnd:
		return "&&"
	case BinOr:
		return "||"
	default:
		return "invalid"
	}
}

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	UnInvalid UnaryOp = iota
	UnNot             // !
	UnNeg             // -
	UnPlus            // +
)

func (op UnaryOp) String() string {
	switch op {
	case UnNot:
		return "!"
	case UnNeg:
		return "-"
	case UnPlus:
		return "+"
	default:
		return "invalid"
	}
}

// AssignOp enumerates assignment operators. Comparison symbols are
// deliberately absent: they are binary-only.
type AssignOp uint8

const (
	AssignInvalid AssignOp = iota
	AssignEq               // =
	AssignAdd              // +=
	AssignSub              // -=
	AssignMul              // *=
	AssignDiv              // /=
	AssignRem              // %=
	AssignCaret            // ^=
	AssignAnd              // &&=
	AssignOr               // ||=
)

func (op AssignOp) String() string {
	switch op {
	case AssignEq:
		return "="
	case AssignAdd:
		return "+="
	case AssignSub:
		return "-="
	case AssignMul:
		return "*="
	case AssignDiv:
		return "/="
	case AssignRem:
		return "%="
	case AssignCaret:
		return "^="
	case AssignAnd:
		return "&&="
	case AssignOr:
		return "||="
	default:
		return "invalid"
	}
}

// ExprLitKind classifies literal expressions. Raw lexemes are kept as-is;
// radix conversion happens in later stages.
type ExprLitKind uint8

const (
	LitNumber ExprLitKind = iota
	LitString
	LitBool
	LitHex
	LitBinary
	LitOctal
)

func (k ExprLitKind) String() string {
	switch k {
	case LitNumber:
		return "number"
	case LitString:
		return "string"
	case LitBool:
		return "bool"
	case LitHex:
		return "hex"
	case LitBinary:
		return "binary"
	case LitOctal:
		return "octal"
	default:
		return "invalid"
	}
}

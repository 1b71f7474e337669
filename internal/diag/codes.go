package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified failures.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexMultilineString    Code = 1003
	LexBadNumber          Code = 1004
	LexEmptyRegisterName  Code = 1005
	LexEmptyDirectiveName Code = 1006
	LexUnknownDirective   Code = 1007

	// Syntactic
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectSemicolon   Code = 2002
	SynExpectIdentifier  Code = 2003
	SynUnclosedParen     Code = 2004
	SynUnclosedBrace     Code = 2005
	SynExpectExpression  Code = 2006
	SynUnexpectedKeyword Code = 2007
	SynExpectAssign      Code = 2008
	SynExpectImportPath  Code = 2009
	SynExpectPipe        Code = 2010

	// Driver / file IO
	IOFileNotFound Code = 4001
	IOReadFailed   Code = 4002

	// Recognized but unimplemented features
	FutTypeOfDirective Code = 7001
	FutForDirective    Code = 7002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:               "lexical note",
	LexUnknownChar:        "unexpected character",
	LexUnterminatedString: "unterminated string literal",
	LexMultilineString:    "string cannot span multiple lines",
	LexBadNumber:          "malformed number literal",
	LexEmptyRegisterName:  "register name cannot be empty",
	LexEmptyDirectiveName: "directive name cannot be empty",
	LexUnknownDirective:   "not a compiler keyword",

	SynInfo:              "syntactic note",
	SynUnexpectedToken:   "unexpected token",
	SynExpectSemicolon:   "expected ';'",
	SynExpectIdentifier:  "expected identifier",
	SynUnclosedParen:     "expected ')'",
	SynUnclosedBrace:     "expected '}'",
	SynExpectExpression:  "expected expression",
	SynUnexpectedKeyword: "unexpected keyword",
	SynExpectAssign:      "expected assignment operator",
	SynExpectImportPath:  "expected import path string",
	SynExpectPipe:        "expected '|'",

	IOFileNotFound: "source file not found",
	IOReadFailed:   "failed to read source file",

	FutTypeOfDirective: "@typeOf is not supported yet",
	FutForDirective:    "@for is not supported yet",
}

// ID returns the banded, stable identifier for the code (LEX1002, SYN2001...).
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("FUT%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsFeatureGap reports whether the code marks a recognized-but-unimplemented
// construct rather than invalid input.
func (c Code) IsFeatureGap() bool {
	return c >= 7000 && c < 8000
}

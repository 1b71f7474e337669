// Package token defines lexical token kinds and trivia for the Volt front end.
// Invariants:
//   - Token.Span matches the lexeme's bytes exactly (Begin..End); the one
//     exception is StringLit, whose Text is the unquoted content while the
//     span still covers both quotes.
//   - Whitespace and '#' comments never appear in the main token stream;
//     they are carried as leading Trivia on the next significant token.
//   - Directive keywords ('@import', '@func', ...) are single tokens with a
//     dedicated kind each; there is no separate '@' token.
//   - Type names (i32, string, ...) are ordinary identifiers everywhere
//     except after a register annotation, where the lexer emits TypeAnnot.
package token

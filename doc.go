// Package tdop implements a toolkit for top-down operator precedence parsing.
//
// The technique, from Vaughan Pratt's 1973 paper and popularized by Douglas
// Crockford, puts the grammar in the tokens rather than in a grammar table.
// Each token carries a binding power and parses itself, either with no left
// context (its null denotation) or with the expression on its left (its left
// denotation). The parser is a single loop driving those, so a grammar is
// just a set of token types and the patterns that lex them.
//
// Register token constructors on a Lexer, then feed it input. Constructors
// closing over shared state give tokens access to precision settings, symbol
// tables, or whatever else a grammar needs. Parse results are plain values
// of the grammar's choosing; no syntax tree shape is imposed.
//
package tdop

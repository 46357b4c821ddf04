package main

import "strings"

// Cursor is a forward-only position into a sequence of tokens. Nested parsers
// (definitions, conditionals, string literals) share the caller's cursor, so
// that the caller resumes exactly after whatever they consumed.
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor returns a cursor at the start of tokens.
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Tokenize splits source text on whitespace.
func Tokenize(src string) []string {
	return strings.Fields(src)
}

// Next returns the next token and advances, or returns false once exhausted.
func (cur *Cursor) Next() (string, bool) {
	if cur.pos >= len(cur.tokens) {
		return "", false
	}
	token := cur.tokens[cur.pos]
	cur.pos++
	return token, true
}

// Pos returns how many tokens have been consumed.
func (cur *Cursor) Pos() int { return cur.pos }

// Rest returns the unconsumed tokens without advancing.
func (cur *Cursor) Rest() []string { return cur.tokens[cur.pos:] }

// Done returns true if no tokens remain.
func (cur *Cursor) Done() bool { return cur.pos >= len(cur.tokens) }

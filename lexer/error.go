package lexer

import (
	"fmt"
	"strconv"
)

type ErrorKind int

const (
	ErrUnexpectedCharacter ErrorKind = iota
	ErrMalformedNumber
	ErrUnterminatedString
	ErrInvalidEscape
)

// LexError is the terminal result of a failed scan. It points at the exact
// offending character; the scanner does not recover or resynchronize, so at
// most one LexError is produced per scan.
type LexError struct {
	Kind   ErrorKind
	File   string
	Line   int
	Column int
	Char   rune   // set for ErrUnexpectedCharacter and ErrInvalidEscape
	Text   string // set for ErrMalformedNumber
}

func (e *LexError) Error() string {
	var message string
	switch e.Kind {
	case ErrUnexpectedCharacter:
		message = fmt.Sprintf("unexpected character %s", strconv.QuoteRune(e.Char))
	case ErrMalformedNumber:
		message = fmt.Sprintf("malformed number literal %q", e.Text)
	case ErrUnterminatedString:
		message = "unterminated string literal"
	case ErrInvalidEscape:
		message = fmt.Sprintf("invalid escape sequence %s in string literal", strconv.QuoteRune(e.Char))
	default:
		message = "lexical error"
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, message)
}

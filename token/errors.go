package token

import (
	"fmt"

	"github.com/Alphish/ston-go/chartype"
)

// UnexpectedCharacterError is the tokenizer's single error kind (§7): every
// scanning failure is fatal to the current parse and carries enough detail
// to point at the offending code point.
type UnexpectedCharacterError struct {
	Position int
	Line     int
	Column   int
	Got      rune
	Expected chartype.Chartype
	Message  string
}

func (e *UnexpectedCharacterError) Error() string {
	got := "EOS"
	if e.Got != EOS {
		got = fmt.Sprintf("%q", e.Got)
	}
	if e.Message != "" {
		return fmt.Sprintf("unexpected character %s at %d:%d (position %d): %s", got, e.Line, e.Column, e.Position, e.Message)
	}
	return fmt.Sprintf("unexpected character %s at %d:%d (position %d), expected mask %#x", got, e.Line, e.Column, e.Position, uint64(e.Expected))
}

func (t *Tokenizer) unexpected(got rune, expected chartype.Chartype, message string) error {
	err := &UnexpectedCharacterError{
		Position: t.position,
		Line:     t.line,
		Column:   t.column,
		Got:      got,
		Expected: expected,
		Message:  message,
	}
	if t.logger != nil {
		t.logger.Warn("tokenizer: unexpected character", "error", err.Error())
	}
	return err
}

// Package token implements the STON tokenizer: a single-threaded,
// non-suspending scanner over a caller-provided code-point Source,
// generalized from parser.Tokenizer's byte-buffer SQL lexer (see
// parser/token.go in the teacher repo this package is descended from)
// into a code-point lexer with line/column tracking and the full STON
// lexical surface (§6).
package token

import (
	"log/slog"
	"strings"

	"github.com/Alphish/ston-go/chartype"
)

// Tokenizer scans STON lexical elements from a Source. It holds a
// non-owning reference to the source, which outlives it (§5).
type Tokenizer struct {
	source Source

	position int
	line     int
	column   int
	lastWasCR bool

	logger *slog.Logger
}

// Option configures a Tokenizer at construction time.
type Option func(*Tokenizer)

// WithLogger overrides the default logger (slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tokenizer) { t.logger = logger }
}

// New constructs a Tokenizer over source.
func New(source Source, opts ...Option) *Tokenizer {
	t := &Tokenizer{source: source, logger: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Position, Line and Column report the tokenizer's current cursor,
// all 0-based (§4.3).
func (t *Tokenizer) Position() int { return t.position }
func (t *Tokenizer) Line() int     { return t.line }
func (t *Tokenizer) Column() int   { return t.column }

// Peek returns the next code point without consuming it.
func (t *Tokenizer) Peek() rune {
	return t.source.Peek()
}

// Read consumes and returns the next code point, updating position, line
// and column. A CRLF pair bumps position twice (once per code point) but
// line only once; the second half's position bump takes a branch that
// does not re-enter the newline-handling logic (§4.3, §9).
func (t *Tokenizer) Read() rune {
	cp := t.source.Read()
	if cp == EOS {
		return cp
	}
	t.position++

	isCR := cp == '\r'
	isLF := cp == '\n'
	switch {
	case isLF && t.lastWasCR:
		// second half of a CRLF pair: position already bumped above,
		// line was already advanced when the CR was read.
		t.lastWasCR = false
	case isCR || isLF:
		t.line++
		t.column = 0
		t.lastWasCR = isCR
	default:
		t.column++
		t.lastWasCR = false
	}
	return cp
}

// ExpectChartype peeks the next code point; if it carries none of the
// roles in mask, it fails with UnexpectedCharacterError. Otherwise it consumes
// and returns it.
func (t *Tokenizer) ExpectChartype(mask chartype.Chartype) (rune, error) {
	cp := t.Peek()
	if !chartype.Has(cp, mask) {
		return 0, t.unexpected(cp, mask, "")
	}
	return t.Read(), nil
}

// TryChartype consumes and returns the next code point only if it carries
// at least one role in mask; otherwise it leaves the cursor untouched.
func (t *Tokenizer) TryChartype(mask chartype.Chartype) (rune, bool) {
	cp := t.Peek()
	if !chartype.Has(cp, mask) {
		return 0, false
	}
	return t.Read(), true
}

// PeekSignificant skips whitespace, newlines and comments until a
// significant code point is at the front, then returns it without
// consuming it.
func (t *Tokenizer) PeekSignificant() (rune, error) {
	for {
		cp := t.Peek()
		if chartype.Has(cp, chartype.Whitespace) {
			t.Read()
			continue
		}
		if chartype.Has(cp, chartype.CommentOpen) {
			if err := t.skipComment(); err != nil {
				return 0, err
			}
			continue
		}
		return cp, nil
	}
}

func (t *Tokenizer) skipComment() error {
	t.Read() // consume the opening '/'
	cp := t.Peek()
	switch {
	case cp == '/':
		t.Read()
		for {
			c := t.Peek()
			if c == EOS || chartype.Has(c, chartype.Newline) {
				return nil
			}
			t.Read()
		}
	case cp == '*':
		t.Read()
		for {
			c := t.Read()
			if c == EOS {
				return t.unexpected(c, chartype.CommentDiscern, "unterminated block comment")
			}
			if c == '*' && t.Peek() == '/' {
				t.Read()
				return nil
			}
		}
	default:
		return t.unexpected(cp, chartype.CommentDiscern, "expected '/' or '*' to complete a comment opener")
	}
}

// ReadAndSkip reads one code point unconditionally, then skips to the
// next significant code point.
func (t *Tokenizer) ReadAndSkip() (rune, error) {
	cp := t.Read()
	if _, err := t.PeekSignificant(); err != nil {
		return cp, err
	}
	return cp, nil
}

// ExpectAndSkip is ExpectChartype followed by PeekSignificant.
func (t *Tokenizer) ExpectAndSkip(mask chartype.Chartype) (rune, error) {
	cp, err := t.ExpectChartype(mask)
	if err != nil {
		return 0, err
	}
	if _, err := t.PeekSignificant(); err != nil {
		return 0, err
	}
	return cp, nil
}

// TryAndSkip is TryChartype followed by PeekSignificant (only run when a
// match was consumed).
func (t *Tokenizer) TryAndSkip(mask chartype.Chartype) (rune, bool, error) {
	cp, ok := t.TryChartype(mask)
	if !ok {
		return 0, false, nil
	}
	if _, err := t.PeekSignificant(); err != nil {
		return cp, true, err
	}
	return cp, true, nil
}

// ScanCanun reads a CANUN identifier: CanunBegin followed by zero or more
// CanunContinue code points.
func (t *Tokenizer) ScanCanun() (string, error) {
	first, err := t.ExpectChartype(chartype.CanunBegin)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	buf.WriteRune(first)
	for {
		cp, ok := t.TryChartype(chartype.CanunContinue)
		if !ok {
			break
		}
		buf.WriteRune(cp)
	}
	return buf.String(), nil
}

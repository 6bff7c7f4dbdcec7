package token

import (
	"strings"

	"github.com/Alphish/ston-go/chartype"
)

// ScanStringContent scans a string literal's content after the opening
// delimiter has already been consumed by the caller. delimiter must be a
// Text or Code delimiter code point; it is also the code point that
// terminates the literal. Trailing whitespace/comments after the closing
// delimiter are skipped before returning, per §4.3 ("...and_skip").
func (t *Tokenizer) ScanStringContent(delimiter rune) (string, error) {
	var buf strings.Builder
	for {
		cp := t.Peek()
		switch {
		case cp == EOS:
			return "", t.unexpected(cp, chartype.TextDelimiter|chartype.CodeDelimiter, "unterminated string literal")
		case cp == delimiter:
			t.Read()
			if _, err := t.PeekSignificant(); err != nil {
				return "", err
			}
			return buf.String(), nil
		case chartype.Has(cp, chartype.StringEscapeOpen):
			t.Read()
			decoded, err := t.scanEscapeSequence(delimiter)
			if err != nil {
				return "", err
			}
			buf.WriteRune(decoded)
		case cp < 32:
			return "", t.unexpected(cp, 0, "control characters must be escaped in string literals")
		default:
			t.Read()
			buf.WriteRune(cp)
		}
	}
}

// scanEscapeSequence scans the character(s) following a consumed '\\'.
func (t *Tokenizer) scanEscapeSequence(delimiter rune) (rune, error) {
	cp := t.Peek()
	switch cp {
	case EOS:
		return 0, t.unexpected(cp, 0, "string literal terminates mid escape sequence")
	case '"', '\'', '`', '\\', '/':
		t.Read()
		return cp, nil
	case 'b':
		t.Read()
		return '\b', nil
	case 'f':
		t.Read()
		return '\f', nil
	case 'n':
		t.Read()
		return '\n', nil
	case 'r':
		t.Read()
		return '\r', nil
	case 't':
		t.Read()
		return '\t', nil
	case '0':
		t.Read()
		return 0, nil
	case 'u':
		t.Read()
		value := 0
		for i := 0; i < 4; i++ {
			digit, err := t.ExpectChartype(chartype.Base16)
			if err != nil {
				return 0, err
			}
			value = value*16 + chartype.Base16Value(digit)
		}
		return rune(value), nil
	default:
		return 0, t.unexpected(cp, 0, "unrecognized escape sequence")
	}
}

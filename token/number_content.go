package token

import (
	"strconv"
	"strings"

	"github.com/Alphish/ston-go/chartype"
	"github.com/Alphish/ston-go/numcalc"
)

// ScanNumberContent scans a number literal's content after any leading
// '-' has already been consumed by the caller. It returns the canonical
// `[-]<sig>e[-]<exp>` form described in §3/§4.3, normalizing the written
// exponent against the decimal point's position and any trailing zeros.
func (t *Tokenizer) ScanNumberContent(minus bool) (string, error) {
	var committed []byte
	pendingZeros := 0
	haveSignificant := false
	postDecimalCount := 0

	commit := func(d rune, afterDecimal bool) {
		if afterDecimal {
			postDecimalCount++
		}
		if d == '0' {
			if haveSignificant {
				pendingZeros++
			}
			return
		}
		if !haveSignificant {
			haveSignificant = true
			committed = append(committed, byte(d))
			return
		}
		for ; pendingZeros > 0; pendingZeros-- {
			committed = append(committed, '0')
		}
		committed = append(committed, byte(d))
	}

	for {
		cp, ok := t.TryChartype(chartype.Digit)
		if !ok {
			break
		}
		commit(cp, false)
	}

	if _, ok := t.TryChartype(chartype.DecimalPoint); ok {
		first, err := t.ExpectChartype(chartype.Digit)
		if err != nil {
			return "", err
		}
		commit(first, true)
		for {
			cp, ok := t.TryChartype(chartype.Digit)
			if !ok {
				break
			}
			commit(cp, true)
		}
	}

	if !haveSignificant {
		if err := t.consumeExponentSyntaxIfPresent(); err != nil {
			return "", err
		}
		return "0", nil
	}

	trailingZeros := pendingZeros
	sig := string(committed)

	writtenExponent := "0"
	if chartype.Has(t.Peek(), chartype.Exponent) {
		t.Read()
		neg := false
		if s, ok := t.TryChartype(chartype.Sign); ok {
			neg = s == '-'
		}
		digits, err := t.scanDigitsAtLeastOne()
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimLeft(digits, "0")
		if trimmed == "" {
			trimmed = "0"
		}
		if neg && trimmed != "0" {
			writtenExponent = "-" + trimmed
		} else {
			writtenExponent = trimmed
		}
	}

	delta := postDecimalCount - trailingZeros
	var normalizedExponent string
	if writtenExponent != "0" {
		normalizedExponent = numcalc.Subtract(writtenExponent, int32(delta))
	} else {
		normalizedExponent = strconv.Itoa(-delta)
	}

	if minus {
		sig = "-" + sig
	}
	return sig + "e" + normalizedExponent, nil
}

// consumeExponentSyntaxIfPresent greedily consumes an exponent's lexical
// form (without needing its value) so a whole-zero significand doesn't
// leave a dangling 'e' for the next token to misread.
func (t *Tokenizer) consumeExponentSyntaxIfPresent() error {
	if !chartype.Has(t.Peek(), chartype.Exponent) {
		return nil
	}
	t.Read()
	t.TryChartype(chartype.Sign)
	_, err := t.scanDigitsAtLeastOne()
	return err
}

func (t *Tokenizer) scanDigitsAtLeastOne() (string, error) {
	first, err := t.ExpectChartype(chartype.Digit)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	buf.WriteRune(first)
	for {
		cp, ok := t.TryChartype(chartype.Digit)
		if !ok {
			break
		}
		buf.WriteRune(cp)
	}
	return buf.String(), nil
}

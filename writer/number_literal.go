package writer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Alphish/ston-go/model"
	"github.com/Alphish/ston-go/numcalc"
	"github.com/Alphish/ston-go/validate"
)

func errNegativePrecision(minPrecision int) error {
	return fmt.Errorf("minimum precision must be non-negative, got %d", minPrecision)
}

// splitCanonicalNumber parses a validated Number SimpleValue's content
// into sign, significand digits and decimal exponent.
func splitCanonicalNumber(content string) (negative bool, sig string, exp int) {
	if content == "0" {
		return false, "0", 0
	}
	s := content
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	eIdx := strings.IndexByte(s, 'e')
	sig = s[:eIdx]
	exp, _ = strconv.Atoi(s[eIdx+1:])
	return negative, sig, exp
}

func validateNumber(content string) error {
	if err := validate.SimpleValue(model.NewSimpleValue(model.Number, content)); err != nil {
		return &UnsupportedFormatError{DataType: model.Number, Err: err}
	}
	return nil
}

// WriteCanonicalNumberLiteral writes content exactly as the `[-]<sig>e[-]<exp>`
// canonical form already holds it, or the literal "0".
func (w *Writer) WriteCanonicalNumberLiteral(content string) error {
	if err := validateNumber(content); err != nil {
		return err
	}
	return w.Write(content)
}

// WritePlainNumberLiteral writes content as a plain decimal literal with
// no exponent marker, shifting the decimal point to absorb the canonical
// exponent.
func (w *Writer) WritePlainNumberLiteral(content string) error {
	if err := validateNumber(content); err != nil {
		return err
	}
	if content == "0" {
		return w.Write("0")
	}

	neg, sig, exp := splitCanonicalNumber(content)
	point := len(sig) + exp

	var digits string
	switch {
	case point <= 0:
		digits = "0." + strings.Repeat("0", -point) + sig
	case point >= len(sig):
		digits = sig + strings.Repeat("0", point-len(sig))
	default:
		digits = sig[:point] + "." + sig[point:]
	}
	if neg {
		digits = "-" + digits
	}
	return w.Write(digits)
}

// WriteScientificNumberLiteral writes content in `d[.ddd]e[-]exp` form,
// with exactly one digit before the decimal point and at least
// minPrecision digits after it (padded with trailing zeros as needed).
func (w *Writer) WriteScientificNumberLiteral(content string, minPrecision int) error {
	if err := validateNumber(content); err != nil {
		return err
	}
	if minPrecision < 0 {
		return &UnsupportedFormatError{DataType: model.Number, Err: errNegativePrecision(minPrecision)}
	}

	neg, sig, exp := splitCanonicalNumber(content)
	if content == "0" {
		return w.writeScientific(neg, "0", strings.Repeat("0", minPrecision), "0")
	}

	normalizedExp := numcalc.Add(strconv.Itoa(exp), int32(len(sig)-1))
	rest := sig[1:]
	if len(rest) < minPrecision {
		rest += strings.Repeat("0", minPrecision-len(rest))
	}
	return w.writeScientific(neg, sig[:1], rest, normalizedExp)
}

func (w *Writer) writeScientific(neg bool, leadDigit, fraction, exp string) error {
	var buf strings.Builder
	if neg {
		buf.WriteByte('-')
	}
	buf.WriteString(leadDigit)
	if fraction != "" {
		buf.WriteByte('.')
		buf.WriteString(fraction)
	}
	buf.WriteByte('e')
	buf.WriteString(exp)
	return w.Write(buf.String())
}

package token

import (
	"strings"

	"github.com/Alphish/ston-go/chartype"
)

// ScanBinaryContent scans a binary literal's content after any leading
// '-' has already been consumed by the caller (minus records whether it
// was). It reads a base identifier in {b,B,o,O,x,X,z,Z}; any other code
// point (including 'n'/'N', the empty-binary marker) is left untouched
// and an empty content string is returned, per §4.3.
func (t *Tokenizer) ScanBinaryContent(minus bool) (string, error) {
	base, digitMask, bitsPerDigit := 0, chartype.Chartype(0), 0
	switch t.Peek() {
	case 'b', 'B':
		base, digitMask, bitsPerDigit = 2, chartype.Base2, 1
	case 'o', 'O':
		base, digitMask, bitsPerDigit = 8, chartype.Base8, 3
	case 'x', 'X':
		base, digitMask, bitsPerDigit = 16, chartype.Base16, 4
	case 'z', 'Z':
		base, digitMask, bitsPerDigit = 64, chartype.Base64, 6
	default:
		return "", nil
	}
	t.Read() // consume the base identifier

	if base == 16 {
		return t.scanHexBinaryContent(minus)
	}

	bits, err := t.scanBaseDigitBits(digitMask, bitsPerDigit)
	if err != nil {
		return "", err
	}

	padCount := 0
	if base == 64 {
		padCount, err = t.scanBase64Padding()
		if err != nil {
			return "", err
		}
	}

	return bitsToHexContent(bits, padCount, minus)
}

func (t *Tokenizer) scanHexBinaryContent(minus bool) (string, error) {
	first, err := t.ExpectChartype(chartype.Base16)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	buf.WriteRune(toLowerHexDigit(first))
	for {
		cp, ok := t.TryChartype(chartype.Base16)
		if !ok {
			break
		}
		buf.WriteRune(toLowerHexDigit(cp))
	}
	digits := buf.String()
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	if minus {
		digits = "-" + digits
	}
	return digits, nil
}

func toLowerHexDigit(cp rune) rune {
	if cp >= 'A' && cp <= 'F' {
		return cp - 'A' + 'a'
	}
	return cp
}

// scanBaseDigitBits reads one or more digits of the given mask, appending
// each digit's value as bitsPerDigit bits (MSB-first) to a flat bit
// sequence.
func (t *Tokenizer) scanBaseDigitBits(mask chartype.Chartype, bitsPerDigit int) ([]byte, error) {
	var bits []byte
	appendDigit := func(cp rune) {
		value := chartype.Base64Value(cp)
		if bitsPerDigit <= 4 {
			// Base2/Base8 digits share the decimal/hex code points; their
			// numeric value is the plain digit value, not the base64 one.
			value = chartype.Base16Value(cp)
		}
		for i := bitsPerDigit - 1; i >= 0; i-- {
			bits = append(bits, byte((value>>uint(i))&1))
		}
	}

	first, err := t.ExpectChartype(mask)
	if err != nil {
		return nil, err
	}
	appendDigit(first)
	for {
		cp, ok := t.TryChartype(mask)
		if !ok {
			break
		}
		appendDigit(cp)
	}
	return bits, nil
}

// scanBase64Padding reads zero, one or two trailing '=' characters; a
// third is an error.
func (t *Tokenizer) scanBase64Padding() (int, error) {
	count := 0
	for count < 2 {
		if _, ok := t.TryChartype(chartype.Base64Padding); !ok {
			break
		}
		count++
	}
	if _, ok := t.TryChartype(chartype.Base64Padding); ok {
		return 0, t.unexpected('=', 0, "at most two base-64 padding characters are allowed")
	}
	return count, nil
}

// bitsToHexContent converts a flat MSB-first bit sequence (with padCount*2
// trailing padding bits to discard) into the canonical lowercase,
// even-length hex content string.
func bitsToHexContent(bits []byte, padCount int, minus bool) (string, error) {
	effective := len(bits) - 2*padCount
	if effective < 0 {
		effective = 0
	}
	bits = bits[:effective]

	pad := (4 - len(bits)%4) % 4
	if pad > 0 {
		padded := make([]byte, pad, pad+len(bits))
		bits = append(padded, bits...)
	}

	var buf strings.Builder
	for i := 0; i < len(bits); i += 4 {
		value := 0
		for j := 0; j < 4; j++ {
			value = value<<1 | int(bits[i+j])
		}
		buf.WriteRune(chartype.Base16Digit(value))
	}
	digits := buf.String()
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	if minus && digits != "" {
		digits = "-" + digits
	}
	return digits, nil
}

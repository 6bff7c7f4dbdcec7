package writer

import (
	"fmt"
	"strings"

	"github.com/Alphish/ston-go/chartype"
	"github.com/Alphish/ston-go/model"
	"github.com/Alphish/ston-go/validate"
)

func errUnsupportedEmptyBase(base rune) error {
	return fmt.Errorf("empty binary content can only be written with the 'n'/'N' base identifier, got %q", base)
}

func errNonEmptyForN() error {
	return fmt.Errorf("the 'n'/'N' base identifier only writes empty binary content")
}

func errUnknownBase(base rune) error {
	return fmt.Errorf("unrecognized binary base identifier %q", base)
}

// WriteBinaryLiteral writes content (a canonical Binary SimpleValue's
// `[-]<hex pairs>` form) as a literal using the requested base
// identifier: one of b/B (base 2), o/O (base 8), x/X (base 16), z/Z
// (base 64), or n/N (the empty-content marker). It validates content
// before emitting anything, the way generateDDLsForCreateTable refuses
// to emit a statement for a column it can't reconcile.
func (w *Writer) WriteBinaryLiteral(content string, base rune) error {
	sv := model.NewSimpleValue(model.Binary, content)
	if err := validate.SimpleValue(sv); err != nil {
		return &UnsupportedFormatError{DataType: model.Binary, Err: err}
	}

	neg := strings.HasPrefix(content, "-")
	hex := strings.TrimPrefix(content, "-")

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}

	if hex == "" {
		switch base {
		case 'n', 'N':
			out.WriteRune(base)
		default:
			return &UnsupportedFormatError{DataType: model.Binary, Err: errUnsupportedEmptyBase(base)}
		}
		return w.Write(out.String())
	}

	bits := hexContentToBits(hex)

	switch base {
	case 'b', 'B':
		out.WriteRune(base)
		writeBitGroups(&out, bits, 1)
	case 'o', 'O':
		out.WriteRune(base)
		writeBitGroups(&out, padFront(bits, 3), 3)
	case 'x', 'X':
		out.WriteRune(base)
		out.WriteString(hex)
	case 'z', 'Z':
		out.WriteRune(base)
		writeBase64Digits(&out, bits)
	case 'n', 'N':
		return &UnsupportedFormatError{DataType: model.Binary, Err: errNonEmptyForN()}
	default:
		return &UnsupportedFormatError{DataType: model.Binary, Err: errUnknownBase(base)}
	}
	return w.Write(out.String())
}

func hexContentToBits(hex string) []byte {
	bits := make([]byte, 0, len(hex)*4)
	for _, r := range hex {
		v := chartype.Base16Value(r)
		for i := 3; i >= 0; i-- {
			bits = append(bits, byte((v>>uint(i))&1))
		}
	}
	return bits
}

func padFront(bits []byte, bitsPerDigit int) []byte {
	pad := (bitsPerDigit - len(bits)%bitsPerDigit) % bitsPerDigit
	if pad == 0 {
		return bits
	}
	padded := make([]byte, pad, pad+len(bits))
	return append(padded, bits...)
}

func writeBitGroups(out *strings.Builder, bits []byte, bitsPerDigit int) {
	for i := 0; i < len(bits); i += bitsPerDigit {
		value := 0
		for j := 0; j < bitsPerDigit; j++ {
			value = value<<1 | int(bits[i+j])
		}
		out.WriteRune(chartype.Base16Digit(value))
	}
}

// writeBase64Digits encodes bits (a byte-aligned bit sequence) into its
// minimal base-64 digit form, appending '=' padding characters for the
// trailing bits standard base-64 discards.
func writeBase64Digits(out *strings.Builder, bits []byte) {
	numDigits := (len(bits) + 5) / 6
	totalBits := numDigits * 6
	diff := totalBits - len(bits)
	padCount := diff / 2

	full := make([]byte, totalBits)
	copy(full, bits)

	for i := 0; i < totalBits; i += 6 {
		value := 0
		for j := 0; j < 6; j++ {
			value = value<<1 | int(full[i+j])
		}
		out.WriteRune(chartype.Base64Digit(value))
	}
	for i := 0; i < padCount; i++ {
		out.WriteByte(chartype.Base64PaddingChar)
	}
}

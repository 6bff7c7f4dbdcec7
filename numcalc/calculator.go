// Package numcalc implements the numeric-string calculator: addition and
// subtraction of a bounded int32 to/from an arbitrary-length signed
// decimal string, without ever widening into a fixed-width integer. The
// digit-buffer discipline mirrors parser.Tokenizer.scanMantissa, which
// also never accumulates digits into anything but a byte buffer.
package numcalc

import "strconv"

// Add returns the decimal representation of x + y. x must already be in
// canonical signed-integer form (no leading zeros except literal "0", no
// "-0"); the result is returned in the same canonical form.
func Add(x string, y int32) string {
	xNeg, xMag := parseSigned(x)
	yNeg, yMag := signMagnitudeOfInt32(y)
	return addSignedMagnitudes(xNeg, xMag, yNeg, yMag)
}

// Subtract returns the decimal representation of x - y, in the same
// canonical form as Add.
func Subtract(x string, y int32) string {
	xNeg, xMag := parseSigned(x)
	yNeg, yMag := signMagnitudeOfInt32(y)
	// x - y is x + (-y): flip y's sign and reuse the same combinator. This
	// sidesteps the asymmetric "Subtract(|y|, |x|) when x<0<y" shortcut the
	// original implementation took, whose sign came out right only by
	// coincidence for the documented x="-1", y=1 case; see DESIGN.md.
	return addSignedMagnitudes(xNeg, xMag, !yNeg, yMag)
}

func signMagnitudeOfInt32(y int32) (negative bool, magnitude string) {
	if y == 0 {
		return false, "0"
	}
	negative = y < 0
	abs := int64(y)
	if negative {
		abs = -abs
	}
	return negative, strconv.FormatInt(abs, 10)
}

func parseSigned(s string) (negative bool, magnitude string) {
	if len(s) > 0 && s[0] == '-' {
		return true, stripLeadingZeros(s[1:])
	}
	return false, stripLeadingZeros(s)
}

func stripLeadingZeros(digits string) string {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return digits[i:]
}

// addSignedMagnitudes combines two signed magnitudes, choosing magnitude
// addition when signs agree and magnitude subtraction (with the sign of
// whichever operand has the larger magnitude) when they don't.
func addSignedMagnitudes(xNeg bool, xMag string, yNeg bool, yMag string) string {
	if xNeg == yNeg {
		return canonicalSigned(xNeg, magnitudeAdd(xMag, yMag))
	}
	switch magnitudeCompare(xMag, yMag) {
	case 0:
		return "0"
	case 1:
		return canonicalSigned(xNeg, magnitudeSub(xMag, yMag))
	default:
		return canonicalSigned(yNeg, magnitudeSub(yMag, xMag))
	}
}

// canonicalSigned applies the sign, collapsing "-0" to "0".
func canonicalSigned(negative bool, magnitude string) string {
	if magnitude == "0" {
		return "0"
	}
	if negative {
		return "-" + magnitude
	}
	return magnitude
}

// magnitudeCompare compares two non-negative, leading-zero-free decimal
// strings, returning -1, 0 or 1.
func magnitudeCompare(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// magnitudeAdd adds two non-negative decimal strings digit-by-digit from
// the least significant end, carrying a single decimal digit at a time.
func magnitudeAdd(a, b string) string {
	i, j := len(a)-1, len(b)-1
	result := make([]byte, 0, max(len(a), len(b))+1)
	carry := byte(0)
	for i >= 0 || j >= 0 || carry != 0 {
		var da, db byte
		if i >= 0 {
			da = a[i] - '0'
			i--
		}
		if j >= 0 {
			db = b[j] - '0'
			j--
		}
		sum := da + db + carry
		result = append(result, '0'+sum%10)
		carry = sum / 10
	}
	reverse(result)
	return stripLeadingZeros(string(result))
}

// magnitudeSub subtracts b from a, where a and b are non-negative decimal
// strings and a >= b; it borrows a single decimal digit at a time.
func magnitudeSub(a, b string) string {
	i, j := len(a)-1, len(b)-1
	result := make([]byte, 0, len(a))
	borrow := byte(0)
	for i >= 0 {
		da := a[i] - '0'
		var db byte
		if j >= 0 {
			db = b[j] - '0'
			j--
		}
		i--
		diff := int(da) - int(db) - int(borrow)
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		result = append(result, byte('0'+diff))
	}
	reverse(result)
	return stripLeadingZeros(string(result))
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package validate

import (
	"strings"

	"github.com/Alphish/ston-go/model"
)

// SimpleValue checks v's content against the grammar its DataType
// prescribes (§3, §4.3's canonical number/binary forms, §4.5's Named
// CANUN-path rule). Text and Code accept any content, including empty;
// Null requires empty content.
func SimpleValue(v model.SimpleValue) error {
	switch v.DataType() {
	case model.Null:
		if v.Content() != "" {
			return &MalformedContentError{DataType: v.DataType(), Reason: "null content must be empty"}
		}
		return nil
	case model.Number:
		return validateNumberContent(v.Content())
	case model.Binary:
		return validateBinaryContent(v.Content())
	case model.Named:
		if !model.IsCanunPath(v.Content()) {
			return &MalformedContentError{DataType: v.DataType(), Reason: "named content must be a dot-separated sequence of CANUN identifiers"}
		}
		return nil
	case model.Text, model.Code:
		return nil
	default:
		return &ImplementationMismatchError{Context: "DataType"}
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validateNumberContent checks the canonical `[-]<sig>e[-]<exp>` form a
// Number SimpleValue's content must take, or the literal "0" whole-value
// shorthand.
func validateNumberContent(content string) error {
	if content == "0" {
		return nil
	}

	s := content
	s = strings.TrimPrefix(s, "-")

	eIdx := strings.IndexByte(s, 'e')
	if eIdx < 0 {
		return &MalformedContentError{DataType: model.Number, Reason: "content must be the literal \"0\" or contain an exponent marker"}
	}
	sig, exp := s[:eIdx], s[eIdx+1:]

	if sig == "0" {
		return &MalformedContentError{DataType: model.Number, Reason: "a zero significand must not carry an exponent"}
	}
	if !isAllDigits(sig) {
		return &MalformedContentError{DataType: model.Number, Reason: "significand must contain only decimal digits"}
	}
	if sig[0] == '0' {
		return &MalformedContentError{DataType: model.Number, Reason: "significand must not have leading zeros"}
	}
	if sig[len(sig)-1] == '0' {
		return &MalformedContentError{DataType: model.Number, Reason: "significand must not have trailing zeros"}
	}

	expNeg := strings.HasPrefix(exp, "-")
	expDigits := strings.TrimPrefix(exp, "-")
	if !isAllDigits(expDigits) {
		return &MalformedContentError{DataType: model.Number, Reason: "exponent must contain only decimal digits"}
	}
	if expDigits == "0" && expNeg {
		return &MalformedContentError{DataType: model.Number, Reason: "exponent must not be negative zero"}
	}
	if len(expDigits) > 1 && expDigits[0] == '0' {
		return &MalformedContentError{DataType: model.Number, Reason: "exponent must not have leading zeros"}
	}
	return nil
}

// validateBinaryContent checks the canonical `[-]<hex pairs>` form a
// Binary SimpleValue's content must take; empty content denotes the
// empty binary sequence.
func validateBinaryContent(content string) error {
	s := strings.TrimPrefix(content, "-")
	neg := s != content

	if s == "" {
		if neg {
			return &MalformedContentError{DataType: model.Binary, Reason: "a lone \"-\" is not valid binary content"}
		}
		return nil
	}
	if len(s)%2 != 0 {
		return &MalformedContentError{DataType: model.Binary, Reason: "content must hold a whole number of hex-digit pairs"}
	}
	for _, r := range s {
		isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
		if !isHex {
			return &MalformedContentError{DataType: model.Binary, Reason: "content must use only lowercase hex digits"}
		}
	}
	return nil
}

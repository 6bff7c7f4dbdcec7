package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alphish/ston-go/token"
)

func scanBinary(t *testing.T, src string, minus bool) string {
	t.Helper()
	tok := token.New(token.NewStringSource(src))
	content, err := tok.ScanBinaryContent(minus)
	require.NoError(t, err)
	return content
}

func TestScanBinaryContent_Hex(t *testing.T) {
	require.Equal(t, "0a", scanBinary(t, "x0a", false))
}

func TestScanBinaryContent_HexLowercasesAndPadsOddLength(t *testing.T) {
	require.Equal(t, "0a", scanBinary(t, "Xa", false))
	require.Equal(t, "0a", scanBinary(t, "XA", false))
}

func TestScanBinaryContent_Base2(t *testing.T) {
	require.Equal(t, "aa", scanBinary(t, "b10101010", false))
}

func TestScanBinaryContent_Base64WithPadding(t *testing.T) {
	require.Equal(t, "aa", scanBinary(t, "zqg==", false))
}

func TestScanBinaryContent_Base64NoPaddingNeeded(t *testing.T) {
	// three bytes (24 bits) divide evenly into four base-64 digits.
	require.Equal(t, "000000", scanBinary(t, "zAAAA", false))
}

func TestScanBinaryContent_NegativeSign(t *testing.T) {
	require.Equal(t, "-aa", scanBinary(t, "b10101010", true))
}

func TestScanBinaryContent_EmptyOnUnrecognizedBase(t *testing.T) {
	require.Equal(t, "", scanBinary(t, "n", false))
}

func TestScanBinaryContent_TooManyPaddingCharsIsError(t *testing.T) {
	tok := token.New(token.NewStringSource("zqg==="))
	_, err := tok.ScanBinaryContent(false)
	require.Error(t, err)
}

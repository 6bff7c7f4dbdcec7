package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alphish/ston-go/token"
)

func TestScanCollectionTypeSuffix_ShortFormAllowedWhenNotRequiringFull(t *testing.T) {
	tok := token.New(token.NewStringSource("[]"))
	ok, err := tok.ScanCollectionTypeSuffix(false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestScanCollectionTypeSuffix_ShortFormRejectedWhenRequiringFull(t *testing.T) {
	tok := token.New(token.NewStringSource("[]"))
	ok, err := tok.ScanCollectionTypeSuffix(true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScanCollectionTypeSuffix_FullFormSingleDot(t *testing.T) {
	tok := token.New(token.NewStringSource("[.]"))
	ok, err := tok.ScanCollectionTypeSuffix(true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestScanCollectionTypeSuffix_FullFormMultipleDots(t *testing.T) {
	tok := token.New(token.NewStringSource("[..]"))
	ok, err := tok.ScanCollectionTypeSuffix(false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestScanCollectionTypeSuffix_NoOpeningBracket(t *testing.T) {
	tok := token.New(token.NewStringSource("x"))
	ok, err := tok.ScanCollectionTypeSuffix(false)
	require.NoError(t, err)
	assert.False(t, ok)
}

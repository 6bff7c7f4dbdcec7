package chartype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alphish/ston-go/chartype"
)

func TestOf_EOS(t *testing.T) {
	assert.Equal(t, chartype.EOS, chartype.Of(-1))
}

func TestOf_NonASCII(t *testing.T) {
	assert.Equal(t, chartype.None, chartype.Of(0x00e9))
	assert.Equal(t, chartype.None, chartype.Of(-2))
}

func TestHas_MultipleRoles(t *testing.T) {
	assert.True(t, chartype.Has('.', chartype.DecimalPoint))
	assert.True(t, chartype.Has('.', chartype.NameSeparator))
	assert.True(t, chartype.Has('.', chartype.DecimalPoint|chartype.NameSeparator))
	assert.False(t, chartype.Has('.', chartype.Letter))
}

func TestHas_Digits(t *testing.T) {
	assert.True(t, chartype.Has('0', chartype.Digit))
	assert.True(t, chartype.Has('5', chartype.Digit))
	assert.False(t, chartype.Has('0', chartype.NonZeroDigit))
	assert.True(t, chartype.Has('5', chartype.NonZeroDigit))
}

func TestHas_CanunRoles(t *testing.T) {
	assert.True(t, chartype.Has('a', chartype.CanunBegin))
	assert.True(t, chartype.Has('_', chartype.CanunBegin))
	assert.False(t, chartype.Has('3', chartype.CanunBegin))
	assert.True(t, chartype.Has('3', chartype.CanunContinue))
}

func TestCommentDiscern_SlashAndStar(t *testing.T) {
	assert.True(t, chartype.Has('/', chartype.CommentDiscern))
	assert.True(t, chartype.Has('*', chartype.CommentDiscern))
}

func TestBase16Value_RoundTrip(t *testing.T) {
	for value := 0; value < 16; value++ {
		digit := chartype.Base16Digit(value)
		assert.Equal(t, value, chartype.Base16Value(digit))
	}
}

func TestBase64Value_RoundTrip(t *testing.T) {
	for value := 0; value < 64; value++ {
		digit := chartype.Base64Digit(value)
		assert.Equal(t, value, chartype.Base64Value(digit))
	}
}

func TestBase64Value_KnownDigits(t *testing.T) {
	assert.Equal(t, 0, chartype.Base64Value('A'))
	assert.Equal(t, 25, chartype.Base64Value('Z'))
	assert.Equal(t, 26, chartype.Base64Value('a'))
	assert.Equal(t, 51, chartype.Base64Value('z'))
	assert.Equal(t, 52, chartype.Base64Value('0'))
	assert.Equal(t, 61, chartype.Base64Value('9'))
	assert.Equal(t, 62, chartype.Base64Value('-'))
	assert.Equal(t, 63, chartype.Base64Value('_'))
}

func TestBaseIdentifiers(t *testing.T) {
	for _, cp := range []rune{'b', 'B', 'o', 'O', 'x', 'X', 'z', 'Z', 'n', 'N'} {
		assert.True(t, chartype.Has(cp, chartype.BaseIdentifier), "expected %q to be a base identifier", cp)
	}
}

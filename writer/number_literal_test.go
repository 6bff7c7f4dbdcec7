package writer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCanonicalNumberLiteral_PassesThroughValidContent(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WriteCanonicalNumberLiteral("105e-3"))
	assert.Equal(t, "105e-3", buf.String())
}

func TestWriteCanonicalNumberLiteral_RejectsMalformedContent(t *testing.T) {
	w, _ := newWriter(t)
	require.Error(t, w.WriteCanonicalNumberLiteral("0105e-3"))
}

func TestWritePlainNumberLiteral_Zero(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WritePlainNumberLiteral("0"))
	assert.Equal(t, "0", buf.String())
}

func TestWritePlainNumberLiteral_NegativeExponentShiftsDecimalLeft(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WritePlainNumberLiteral("105e-3"))
	assert.Equal(t, "0.105", buf.String())
}

func TestWritePlainNumberLiteral_PositiveExponentPadsWithZeros(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WritePlainNumberLiteral("1e3"))
	assert.Equal(t, "1000", buf.String())
}

func TestWritePlainNumberLiteral_NegativeSignificand(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WritePlainNumberLiteral("-105e-3"))
	assert.Equal(t, "-0.105", buf.String())
}

func TestWriteScientificNumberLiteral_NormalizesToOneLeadingDigit(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WriteScientificNumberLiteral("105e-3", 2))
	assert.Equal(t, "1.05e-1", buf.String())
}

func TestWriteScientificNumberLiteral_PadsFractionToMinPrecision(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WriteScientificNumberLiteral("105e-3", 4))
	assert.Equal(t, "1.0500e-1", buf.String())
}

func TestWriteScientificNumberLiteral_ZeroMinPrecisionOmitsDecimalPoint(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WriteScientificNumberLiteral("9e10", 0))
	assert.Equal(t, "9e10", buf.String())
}

func TestWriteScientificNumberLiteral_Zero(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WriteScientificNumberLiteral("0", 2))
	assert.Equal(t, "0.00e0", buf.String())
}

func TestWriteScientificNumberLiteral_RejectsNegativePrecision(t *testing.T) {
	w, _ := newWriter(t)
	require.Error(t, w.WriteScientificNumberLiteral("9e10", -1))
}

package stonfixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alphish/ston-go/stonfixture"
)

func TestLoadCases_ReadsYAML(t *testing.T) {
	cases, err := stonfixture.LoadCases("testdata/numbers.yaml")
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "whole_zero", cases[0].Name)
	assert.Equal(t, "0.000", cases[0].Input)
	assert.Equal(t, "0", cases[0].Expected)
}

func TestLoadCases_MissingFileIsError(t *testing.T) {
	_, err := stonfixture.LoadCases("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

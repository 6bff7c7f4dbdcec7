package numcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alphish/ston-go/numcalc"
)

func TestAdd_Table(t *testing.T) {
	cases := []struct {
		x, want string
		y       int32
	}{
		{"0", "5", 5},
		{"5", "5", 0},
		{"-5", "-5", 0},
		{"10", "15", 5},
		{"10", "5", -5},
		{"5", "0", -5},
		{"-10", "-15", -5},
		{"999", "1000", 1},
		{"-1", "0", 1},
		{"100", "99", -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, numcalc.Add(c.x, c.y), "Add(%s, %d)", c.x, c.y)
	}
}

func TestSubtract_Table(t *testing.T) {
	cases := []struct {
		x, want string
		y       int32
	}{
		{"0", "-5", 5},
		{"-1", "-2", 1},
		{"10", "5", 5},
		{"5", "15", -10},
		{"-5", "-15", 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, numcalc.Subtract(c.x, c.y), "Subtract(%s, %d)", c.x, c.y)
	}
}

func TestAdd_NoLeadingZerosOrNegativeZero(t *testing.T) {
	assert.Equal(t, "0", numcalc.Add("5", -5))
	assert.Equal(t, "0", numcalc.Add("-5", 5))
	assert.NotEqual(t, "-0", numcalc.Add("5", -5))
}

func TestAdd_LargeMagnitudeDoesNotOverflow(t *testing.T) {
	big := "99999999999999999999999999999999999999999999999999"
	want := "100000000000000000000000000000000000000000000000000"
	assert.Equal(t, want, numcalc.Add(big, 1))
}

package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberToString(t *testing.T) {
	a, b := 0.1, 0.2
	testCases := []struct {
		name     string
		value    float64
		expected string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"integer", 12, "12"},
		{"negative", -7, "-7"},
		{"fraction", 123.456, "123.456"},
		{"binary noise kept", a + b, "0.30000000000000004"},
		{"one third", 1.0 / 3.0, "0.3333333333333333"},
		{"small plain", 0.000001, "0.000001"},
		{"small exponent", 1e-7, "1e-7"},
		{"small exponent with fraction", 1.5e-7, "1.5e-7"},
		{"large plain", 1e20, "100000000000000000000"},
		{"large exponent", 1e21, "1e+21"},
		{"large exponent with fraction", 9.99999999998e23, "9.99999999998e+23"},
		{"NaN", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NumberToString(tc.value))
		})
	}
}

func TestFormatForDisplay(t *testing.T) {
	testCases := []struct {
		name     string
		entry    string
		expected string
	}{
		{"error passes through", "Error", "Error"},
		{"zero", "0", "0"},
		{"typed trailing point kept", "10.", "10."},
		{"single trailing zero stripped", "10.0", "10"},
		{"trailing zeros stripped", "3.00", "3"},
		{"partial trailing zeros stripped", "3.50", "3.5"},
		{"integer zeros untouched", "1200", "1200"},
		{"zero point zero", "0.0", "0"},
		{"twelve characters untouched", "123456789012", "123456789012"},
		{"one third truncated", "0.3333333333333333", "0.3333333333"},
		{"float noise rounded away", "0.30000000000000004", "0.3"},
		{"tie rounds away from zero", "123456789012.5", "123456789013"},
		{"negative long", "-0.3333333333333333", "-0.333333333"},
		{"exponent truncated", "9.99999999998e+23", "9.9999999999"},
		{"short exponent untouched", "1e+21", "1e+21"},
		{"plain large truncated", "120000000000000000000", "120000000000"},
		{"infinity", "Infinity", "Infinity"},
		{"negative infinity", "-Infinity", "-Infinity"},
		{"NaN", "NaN", "NaN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatForDisplay(tc.entry)
			assert.Equal(t, tc.expected, got)
			assert.LessOrEqual(t, len(got), DefaultDisplayWidth)
		})
	}
}

func TestFormatForDisplay_Idempotent(t *testing.T) {
	entries := []string{
		"0", "0.", "7", "10.", "10.0", "1.50", "123456789012",
		"0.3333333333333333", "0.30000000000000004", "12345678901.5",
		"1234567890.05", "-0.6666666666666666", "9.99999999998e+23",
		"1e+21", "1.5e-7", "120000000000000000000", "Infinity", "NaN", "Error",
	}

	for _, entry := range entries {
		once := FormatForDisplay(entry)
		assert.Equal(t, once, FormatForDisplay(once), "entry %q", entry)
	}
}

func TestFormatForDisplay_TruncationQuirk(t *testing.T) {
	// Cutting at the width can leave a dangling point; it is kept.
	assert.Equal(t, "12345678901.", FormatForDisplay("12345678901.5"))
	assert.Equal(t, "1234567890", FormatForDisplay("1234567890.05"))
}

func TestRoundSignificant(t *testing.T) {
	a, b := 0.1, 0.2
	require.NotEqual(t, 0.3, a+b)
	assert.Equal(t, 0.3, roundSignificant(a+b, 12))
	assert.Equal(t, "0.3", FormatForDisplay(NumberToString(a+b)))
	assert.Equal(t, 123456789013.0, roundSignificant(123456789012.5, 12))
	assert.Equal(t, -123456789013.0, roundSignificant(-123456789012.5, 12))
	assert.Equal(t, 1e12, roundSignificant(999999999999.5, 12))
	assert.Equal(t, 0.0, roundSignificant(0, 12))
	assert.True(t, math.IsInf(roundSignificant(math.Inf(1), 12), 1))
}

func TestFormatWidth_Narrow(t *testing.T) {
	assert.Equal(t, "0.3333", FormatWidth("0.3333333333333333", 6))
	assert.Equal(t, "42", FormatWidth("42", 6))
}

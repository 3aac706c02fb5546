package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{input: "0", expected: 0},
		{input: "42", expected: 42},
		{input: "-7", expected: -7},
		{input: "+3", expected: 3},
		{input: "1.5", expected: 1.5},
		{input: ".25", expected: 0.25},
		{input: "5.", expected: 5},
		{input: "  12", expected: 12},
		{input: "12.5.3", expected: 12.5},
		{input: "7-", expected: 7},
		{input: "12abc", expected: 12},
		{input: "1e3", expected: 1000},
		{input: "1e", expected: 1},
		{input: "2.5e-3", expected: 0.0025},
		{input: "Infinity", expected: math.Inf(1)},
		{input: "-Infinity", expected: math.Inf(-1)},
		{input: "1e400", expected: math.Inf(1)},
		{input: "0x10", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNumber(tt.input))
		})
	}
}

func TestParseNumber_NaN(t *testing.T) {
	for _, input := range []string{"", "-", ".", "abc", "±5", "NaN", "e5", "inf"} {
		t.Run(input, func(t *testing.T) {
			assert.True(t, math.IsNaN(ParseNumber(input)), "expected NaN for %q", input)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	// Constant expressions are exact; add at run time to get float64 rounding.
	a, b := 0.1, 0.2

	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero", input: 0, expected: "0"},
		{name: "negative zero", input: math.Copysign(0, -1), expected: "0"},
		{name: "integer", input: 10, expected: "10"},
		{name: "negative integer", input: -5, expected: "-5"},
		{name: "fraction", input: 0.2, expected: "0.2"},
		{name: "rounding error", input: a + b, expected: "0.30000000000000004"},
		{name: "small fraction", input: 0.000001, expected: "0.000001"},
		{name: "tiny fraction", input: 0.0000001, expected: "1e-7"},
		{name: "tiny fraction with mantissa", input: 1.5e-10, expected: "1.5e-10"},
		{name: "large integer", input: 123456789012345680000, expected: "123456789012345680000"},
		{name: "huge integer", input: 1e21, expected: "1e+21"},
		{name: "huge negative", input: -2.5e30, expected: "-2.5e+30"},
		{name: "positive infinity", input: math.Inf(1), expected: "Infinity"},
		{name: "negative infinity", input: math.Inf(-1), expected: "-Infinity"},
		{name: "not a number", input: math.NaN(), expected: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}

func TestFormatNumber_RoundTrip(t *testing.T) {
	for _, f := range []float64{1, 0.1, 1.0 / 3, 2.5e-7, 9.99e20, 1e21, -42.125} {
		assert.Equal(t, f, ParseNumber(FormatNumber(f)))
	}
}

package expression_test

import (
	"math"
	"testing"

	"github.com/codehardth/calc/internal/expression"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		value    float64
		expected string
	}{
		{value: 14, expected: "14"},
		{value: -6, expected: "-6"},
		{value: 0, expected: "0"},
		{value: math.Copysign(0, -1), expected: "0"},
		{value: 0.5, expected: "0.5"},
		{value: 2.5, expected: "2.5"},
		{value: 1.0 / 3.0, expected: "0.3333333333333333"},
		{value: 1e14, expected: "100000000000000"},
		{value: 999999999999999, expected: "999999999999999"},
		{value: 1e15, expected: "1e+15"},
		{value: 1.5e15, expected: "1.5e+15"},
		{value: math.Inf(1), expected: "+Inf"},
		{value: math.Inf(-1), expected: "-Inf"},
	} {
		tt := tt
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if got := expression.FormatValue(tt.value); got != tt.expected {
				t.Errorf("unexpected rendering of %v: got %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatValueNaN(t *testing.T) {
	t.Parallel()

	if got := expression.FormatValue(math.NaN()); got != "NaN" {
		t.Errorf("unexpected rendering of NaN: got %q", got)
	}
}

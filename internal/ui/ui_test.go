package ui

import "testing"

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tc := range tests {
		if got := toRoman(tc.in); got != tc.want {
			t.Errorf("toRoman(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFilledCells(t *testing.T) {
	tests := []struct {
		health, max, want int
	}{
		{100, 100, 20},
		{0, 100, 0},
		{-5, 100, 0},
		{50, 100, 10},
		{1, 100, 1},
		{96, 100, 20},
		{95, 100, 19},
		{150, 100, 20},
	}
	for _, tc := range tests {
		if got := filledCells(tc.health, tc.max, 20); got != tc.want {
			t.Errorf("filledCells(%d, %d) = %d, want %d", tc.health, tc.max, got, tc.want)
		}
	}
}

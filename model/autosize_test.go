package model

import (
	"strings"
	"testing"
)

func TestFitHeight(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		width   int
		maxRows int
		want    int
	}{
		{"empty", "", 20, 6, 1},
		{"single short line", "hello", 20, 6, 1},
		{"one short of width", strings.Repeat("a", 19), 20, 6, 1},
		{"exact width leaves cursor row", strings.Repeat("a", 20), 20, 6, 2},
		{"long word split", strings.Repeat("a", 21), 20, 6, 2},
		{"word wrap", "appointment appointment appointment", 22, 6, 3},
		{"words fit on one row", "book an appointment", 22, 6, 1},
		{"hard newlines", "a\nb\nc", 20, 6, 3},
		{"blank lines count", "a\n\n\nb", 20, 6, 4},
		{"trailing newline", "a\n", 20, 6, 2},
		{"clamped", strings.Repeat("x\n", 10), 20, 6, 6},
		{"unbounded", strings.Repeat("x\n", 10), 20, 0, 11},
		{"wide runes", "予約をお願いします", 10, 6, 2},
		{"zero width guard", "abc", 0, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FitHeight(tc.value, tc.width, tc.maxRows); got != tc.want {
				t.Errorf("FitHeight(%q, %d, %d) = %d, want %d", tc.value, tc.width, tc.maxRows, got, tc.want)
			}
		})
	}
}

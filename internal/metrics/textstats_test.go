package metrics_test

import (
	"testing"

	"notecage/internal/metrics"
)

func TestMeasure_Table(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want metrics.Stats
	}{
		{
			name: "Empty",
			in:   "",
			want: metrics.Stats{},
		},
		{
			name: "Command",
			in:   `<get-notes/>`,
			want: metrics.Stats{Bytes: 12, Runes: 12, Words: 1, Lines: 1},
		},
		{
			name: "ASCII",
			in:   "hello world",
			want: metrics.Stats{Bytes: 11, Runes: 11, Words: 2, Lines: 1},
		},
		{
			name: "Multibyte",
			in:   "héllö 世界",
			want: metrics.Stats{Bytes: 14, Runes: 8, Words: 2, Lines: 1},
		},
		{
			name: "ReasoningBlock",
			in:   "<think>\nsome plan\n</think>\n<get-notes/>",
			want: metrics.Stats{Bytes: 39, Runes: 39, Words: 5, Lines: 4},
		},
		{
			name: "Multiline_Trailing",
			in:   "a\nb\n",
			want: metrics.Stats{Bytes: 4, Runes: 4, Words: 2, Lines: 3},
		},
		{
			name: "OnlyWhitespace",
			in:   " \t\n",
			want: metrics.Stats{Bytes: 3, Runes: 3, Words: 0, Lines: 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := metrics.Measure(tc.in)
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

package charrun_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/strpattern/charrun"
	"github.com/katalvlaran/strpattern/spanopt"
)

func TestFindSpans(t *testing.T) {
	tests := []struct {
		name string
		el   charrun.Element
		in   string
		want []spanopt.Span
	}{
		{"digit runs", charrun.New(charrun.Digit), "ab12c345", []spanopt.Span{{Start: 2, End: 4}, {Start: 5, End: 8}}},
		{"no digits", charrun.New(charrun.Digit), "abc", nil},
		{"empty", charrun.New(charrun.Letters), "", nil},
		{"lowercase", charrun.New(charrun.Lowercase), "abCde", []spanopt.Span{{Start: 0, End: 2}, {Start: 3, End: 5}}},
		{"uppercase", charrun.New(charrun.Uppercase), "abCDe", []spanopt.Span{{Start: 2, End: 4}}},
		{"letters", charrun.New(charrun.Letters), "ab1Cd", []spanopt.Span{{Start: 0, End: 2}, {Start: 3, End: 5}}},
		{"alphanumeric", charrun.New(charrun.AlphaNumeric), "a1-b2", []spanopt.Span{{Start: 0, End: 2}, {Start: 3, End: 5}}},
		{"any covers all", charrun.New(charrun.AnySet), "a b-c", []spanopt.Span{{Start: 0, End: 5}}},
		{"rune offsets", charrun.New(charrun.Digit), "éé12", []spanopt.Span{{Start: 2, End: 4}}},
		{"set at start", charrun.NewChoices('R', 'S'), "R12", []spanopt.Span{{Start: 0, End: 1}}},
		{"set not at start", charrun.NewChoices('R'), "1R2", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.el.FindSpans(tc.in))
		})
	}
}

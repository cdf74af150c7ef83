package charrun_test

import (
	"fmt"

	"github.com/katalvlaran/strpattern/charrun"
	"github.com/katalvlaran/strpattern/spanopt"
)

// ExampleElement_FitStart trims a leading digit run off every value.
func ExampleElement_FitStart() {
	f := charrun.New(charrun.Digit).FitStart([]string{"123-a", "45-b", "6-c"})
	fmt.Println(f.Element.Token(), f.Left, f.Matched)
	// Output:
	// \d{1,3} [-a -b -c] 3
}

// ExampleElement_Fit finds digit runs anywhere in the values.
func ExampleElement_Fit() {
	f, err := charrun.New(charrun.Digit).Fit([]string{"id-42-x", "id-7-y", "id-913-z"}, spanopt.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(f.Element.Token())
	fmt.Println(f.Left, f.Right)
	// Output:
	// \d{1,3}
	// [id- id- id-] [-x -y -z]
}

// ExampleParseToken reads a serialized pattern one element at a time.
func ExampleParseToken() {
	s := `[R]\d{3,3}`
	for s != "" {
		el, rest, err := charrun.ParseToken(s)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(el.Kind, el.MinRepeat, el.MaxRepeat)
		s = rest
	}
	// Output:
	// single_char_set 1 1
	// digit 3 3
}

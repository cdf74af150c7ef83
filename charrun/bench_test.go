package charrun_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strpattern/charrun"
	"github.com/katalvlaran/strpattern/rng"
	"github.com/katalvlaran/strpattern/spanopt"
)

func column(n int) []string {
	r := rng.FromSeed(3)
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("usr-%d-%s", r.Intn(100000), string(rune('a'+r.Intn(26))))
	}

	return out
}

func BenchmarkFitStart_1000(b *testing.B) {
	values := column(1000)
	el := charrun.New(charrun.Lowercase)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = el.FitStart(values)
	}
}

func BenchmarkFit_1000(b *testing.B) {
	values := column(1000)
	el := charrun.New(charrun.Digit)
	opts := spanopt.DefaultOptions()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := el.Fit(values, opts); err != nil {
			b.Fatal(err)
		}
	}
}

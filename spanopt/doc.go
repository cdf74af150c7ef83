// Package spanopt assigns one matching span per string so that the
// leftover prefixes and suffixes are as predictable as possible.
//
// 🚀 What problem does it solve?
//
//	A character-run element (say “a run of digits”) may match a string at
//	several places: "ab12cd345" has digit runs at [2,4) and [6,9). Whichever
//	run is chosen splits the string into a left remainder ("ab" or "ab12cd")
//	and a right remainder ("cd345" or ""). Across a whole column the choice
//	should make remainder lengths concentrate, because concentrated lengths
//	are cheap to describe by the elements fitted next.
//
// ⚙️ Model:
//
//	left[L]  = number of strings whose left remainder is longer than L
//	right[L] = number of strings whose right remainder is longer than L
//	Energy   = Σ_L log(left[L]+1) + Σ_L log(right[L]+1)
//
//	Strings without any candidate span are dumped whole into either the
//	left or the right pool; that side is part of the search too.
//
// 🔁 Algorithm (coordinate descent):
//  1. Start every string on its longest candidate (first on ties), or on a
//     seeded random dump side when it has none.
//  2. Sweep all strings; for each, evaluate every alternative treatment with
//     all other strings fixed and apply the best one whose Δ < −Eps.
//  3. Repeat sweeps until one makes no change (or MaxPasses is reached).
//
// Energy is bounded below and strictly decreases on each applied move, so the
// search always terminates in a local optimum. It is deterministic for a
// fixed seed.
//
// Complexity:
//   - One move evaluation: O(|Δlength|) histogram buckets.
//   - One sweep: O(Σ candidates · max remainder length).
//   - Memory: O(n + max length).
//
// Usage:
//
//	opt, err := spanopt.New(values, candidates, spanopt.DefaultOptions())
//	if err != nil { … }
//	opt.Optimize()
//	left, right := opt.Remainders()
//	stats := opt.Statistics()
package spanopt

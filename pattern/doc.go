// Package pattern fits, serializes and samples structural string patterns.
//
// A Pattern is an ordered list of charrun elements whose concatenation
// explains a column of strings. Fitting is greedy: at every step each
// element kind is tried against the current remainders, the one with the
// highest gradient (energy gain per unit of information budget) is
// committed, and fitting continues on what is left.
//
// 🚀 Methods:
//
//	Fast        greedy-left. Every kind is matched from the start of each
//	            remainder (charrun.Element.FitStart); the loop runs on a
//	            single remainder list until nothing is left.
//	Exhaustive  greedy-both-sides. Every kind is matched anywhere
//	            (charrun.Element.Fit via spanopt); the fitter then recurses
//	            on the left and on the right remainders independently and
//	            returns left + [element] + right.
//	Auto        Exhaustive when the mean rune length is ≤ 10, else Fast.
//
// Ties between kinds go to the earlier kind in charrun.Kinds(). Candidates
// that match no string, have non-positive gain, or match fewer strings than
// CountThreshold are skipped; AnySet ignores the threshold so every step can
// make progress.
//
// ✨ Sampling:
//
//	p.Draw(r)                  one sample from an explicit *rand.Rand
//	NewUnique(p, n).Draw(r)    no repeats; ErrExhaustedKeyspace after n retries
//	NewGenerator(p, opts...)   owns its RNG and, for unique patterns, the seen set
//
// ⚙️ Wire form:
//
//	Document{unique, elements: [{kind, token, fraction_used}, ...]}
//
// encoded with encoding/json or gopkg.in/yaml.v3. Decoding keeps element
// order and rejects any token it cannot consume completely. Parse and
// String use the compact single-line token stream, e.g. `[R]\d{3,3}`.
//
// Concurrency:
//
//	Fit owns all of its state. With Parallel set, the kinds of one step are
//	tried concurrently on an immutable snapshot, each with its own derived
//	seed; the choice is made after all trials finish, so the result does not
//	depend on Parallel. Unique and Generator are not safe for concurrent use.
package pattern

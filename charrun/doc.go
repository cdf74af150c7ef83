// Package charrun describes character-run elements: typed, bounded-length
// spans of repeated characters that make up one token of a structural
// string pattern.
//
// 🚀 Kinds (in fitting priority order):
//
//	Digit         \d{m,n}            0-9
//	AlphaNumeric  [a-zA-Z0-9]{m,n}   ASCII letters and digits
//	Lowercase     [a-z]{m,n}
//	Uppercase     [A-Z]{m,n}
//	Letters       [a-zA-Z]{m,n}
//	SingleCharSet [c1c2…]            exactly one rune out of a fixed set
//	AnySet        .[extras]{m,n}     anything; printable ASCII plus extras
//
// Every kind is a row in one dispatch table (see classes.go); an Element is
// a plain value holding the kind and its parameters, so behaviour is a pure
// function of that value.
//
// ✨ What an element can do:
//   - FindSpans  – all maximal matches in a remainder (alignment candidates).
//   - FitStart   – left-anchored fit over a column (greedy-left fitting).
//   - Fit        – unanchored fit through spanopt (greedy-both-sides fitting).
//   - Draw       – sample a random instance from an explicit *rand.Rand.
//   - InformationBudget – BIC-style complexity cost of the element.
//   - Token / ParseToken – compact single-line serialization.
//
// Gradient:
//
//	A fit reports Gain (energy removed from the column, see spanopt) and
//	Budget (information budget); Gradient = Gain / Budget ranks candidates.
package charrun

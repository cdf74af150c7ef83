package charrun

import "github.com/katalvlaran/strpattern/spanopt"

// FindSpans returns every place the element could match inside remainder,
// as rune offsets.
//
//   - Run kinds: every maximal run of the character class.
//   - AnySet: one span covering the whole remainder (none when empty).
//   - SingleCharSet: a one-rune span at position 0 when the first rune is a choice.
//
// Complexity: O(len(remainder)).
func (e Element) FindSpans(remainder string) []spanopt.Span {
	return e.findSpans([]rune(remainder))
}

func (e Element) findSpans(rs []rune) []spanopt.Span {
	if len(rs) == 0 {
		return nil
	}
	switch e.Kind {
	case AnySet:
		return []spanopt.Span{{Start: 0, End: len(rs)}}
	case SingleCharSet:
		if e.Matches(rs[0]) {
			return []spanopt.Span{{Start: 0, End: 1}}
		}
		return nil
	}

	var out []spanopt.Span
	for i := 0; i < len(rs); {
		if !e.Matches(rs[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(rs) && e.Matches(rs[j]) {
			j++
		}
		out = append(out, spanopt.Span{Start: i, End: j})
		i = j
	}

	return out
}

// prefixLen returns the length of the element's match anchored at position 0.
func (e Element) prefixLen(rs []rune) int {
	switch e.Kind {
	case AnySet:
		return len(rs)
	case SingleCharSet:
		if len(rs) > 0 && e.Matches(rs[0]) {
			return 1
		}
		return 0
	}

	n := 0
	for n < len(rs) && e.Matches(rs[n]) {
		n++
	}

	return n
}

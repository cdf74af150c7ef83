package pattern

import (
	"fmt"
	"math/rand"
)

// Drawer is anything that can draw a string from an explicit RNG and
// print itself; charrun.Element and Pattern both qualify.
type Drawer interface {
	Draw(r *rand.Rand) string
	String() string
}

// Unique wraps a Drawer and never returns the same value twice until Reset.
// It is not safe for concurrent use.
type Unique[T Drawer] struct {
	inner       T
	maxAttempts int
	seen        map[string]struct{}
}

// NewUnique wraps inner. maxAttempts bounds the retries of one Draw;
// values ≤ 0 mean DefaultMaxAttempts.
func NewUnique[T Drawer](inner T, maxAttempts int) *Unique[T] {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Unique[T]{
		inner:       inner,
		maxAttempts: maxAttempts,
		seen:        make(map[string]struct{}),
	}
}

// Draw draws from the inner value until it produces a value not returned
// before, recording it.
//
// Errors: ErrExhaustedKeyspace when maxAttempts draws in a row were all seen.
func (u *Unique[T]) Draw(r *rand.Rand) (string, error) {
	for i := 0; i < u.maxAttempts; i++ {
		v := u.inner.Draw(r)
		if _, dup := u.seen[v]; dup {
			continue
		}
		u.seen[v] = struct{}{}

		return v, nil
	}

	return "", fmt.Errorf("%w: %d attempts on %s after %d values", ErrExhaustedKeyspace, u.maxAttempts, u.inner, len(u.seen))
}

// Reset forgets every value drawn so far.
func (u *Unique[T]) Reset() { clear(u.seen) }

// Seen returns the number of distinct values drawn since the last Reset.
func (u *Unique[T]) Seen() int { return len(u.seen) }

// Inner returns the wrapped value.
func (u *Unique[T]) Inner() T { return u.inner }

// String forwards to the wrapped value.
func (u *Unique[T]) String() string { return u.inner.String() }

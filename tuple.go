// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// inlineArity is the storage threshold for the inline representation.
// 4 erased slots fill a single cache line; larger arities spill to a
// heap slice and take the uniform path.
const inlineArity = 4

// Tuple is an immutable, ordered, heterogeneous container of fixed arity.
// The zero value is the empty tuple. Tuples are values: copies are
// independent and no operation mutates its receiver; "setindex"-style
// updates go through [Tuple.With], which returns a new tuple.
type Tuple struct {
	n      int
	inline [inlineArity]any
	spill  []any
}

// Sentinel errors for tuple construction and structural preconditions.
var (
	ErrTooFew     = errors.New("base: too few elements to fill tuple")
	ErrEmptyTuple = errors.New("base: empty tuple")
)

// BoundsError reports an index outside [0, Len). It carries the container
// and the offending index.
type BoundsError struct {
	Tuple Tuple
	Index int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("base: index %d out of bounds for tuple of arity %d", e.Index, e.Tuple.Len())
}

// Of builds a tuple from the given elements.
func Of(vs ...any) Tuple {
	t := newTuple(len(vs))
	for i, v := range vs {
		t.set(i, v)
	}
	return t
}

// Of1 through Of4 are arity-specialized constructors. They avoid the
// variadic slice allocation of [Of] for small statically-known arities.
func Of1(a any) Tuple { return Tuple{n: 1, inline: [inlineArity]any{a}} }

func Of2(a, b any) Tuple { return Tuple{n: 2, inline: [inlineArity]any{a, b}} }

func Of3(a, b, c any) Tuple { return Tuple{n: 3, inline: [inlineArity]any{a, b, c}} }

func Of4(a, b, c, d any) Tuple { return Tuple{n: 4, inline: [inlineArity]any{a, b, c, d}} }

// FromSeq fills a tuple of arity n from seq, element-wise in order.
// It fails wrapping [ErrTooFew] when the sequence is exhausted before all
// n slots are filled. Surplus elements are left unconsumed; the result is
// never truncated or padded.
func FromSeq(n int, seq iter.Seq[any]) (Tuple, error) {
	if n < 0 {
		return Tuple{}, fmt.Errorf("base: negative tuple arity %d", n)
	}
	t := newTuple(n)
	i := 0
	for v := range seq {
		t.set(i, v)
		i++
		if i == n {
			break
		}
	}
	if i < n {
		return Tuple{}, fmt.Errorf("%w: want %d, have %d", ErrTooFew, n, i)
	}
	return t, nil
}

// newTuple returns an all-nil tuple of arity n with writable storage.
// Writes via set must complete before the tuple escapes.
func newTuple(n int) Tuple {
	t := Tuple{n: n}
	if n > inlineArity {
		t.spill = make([]any, n)
	}
	return t
}

// set writes slot i during construction only.
func (t *Tuple) set(i int, v any) {
	if t.n <= inlineArity {
		t.inline[i] = v
	} else {
		t.spill[i] = v
	}
}

// Len returns the arity.
func (t Tuple) Len() int { return t.n }

// AtUnchecked returns the element at i without bounds checking. The
// caller must have proven 0 <= i < Len; anything else is a storage-level
// access violation. Use [Tuple.At] unless validity is already established.
func (t Tuple) AtUnchecked(i int) any {
	if t.n <= inlineArity {
		return t.inline[i]
	}
	return t.spill[i]
}

// At returns the element at i, or a *[BoundsError] when i is outside
// [0, Len).
func (t Tuple) At(i int) (any, error) {
	if i < 0 || i >= t.n {
		return nil, &BoundsError{Tuple: t, Index: i}
	}
	return t.AtUnchecked(i), nil
}

// With returns a new tuple identical to t except that slot i holds v.
// It fails with a *[BoundsError] when i is outside [0, Len). The receiver
// is unchanged.
func (t Tuple) With(i int, v any) (Tuple, error) {
	if i < 0 || i >= t.n {
		return Tuple{}, &BoundsError{Tuple: t, Index: i}
	}
	if t.n <= inlineArity {
		// The receiver is already a copy.
		t.inline[i] = v
		return t, nil
	}
	spill := make([]any, t.n)
	copy(spill, t.spill)
	spill[i] = v
	return Tuple{n: t.n, spill: spill}, nil
}

// Iterate advances explicit-state iteration. The state is the next index;
// start from 0 and restart by passing 0 again. It returns the element,
// the next state, and whether an element was produced.
func (t Tuple) Iterate(state int) (any, int, bool) {
	if state < 0 || state >= t.n {
		return nil, state, false
	}
	return t.AtUnchecked(state), state + 1, true
}

// All returns the elements in order as a restartable lazy sequence.
func (t Tuple) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := 0; i < t.n; i++ {
			if !yield(t.AtUnchecked(i)) {
				return
			}
		}
	}
}

// Front returns a new tuple omitting the last element. It fails wrapping
// [ErrEmptyTuple] on the empty tuple.
func (t Tuple) Front() (Tuple, error) {
	if t.n == 0 {
		return Tuple{}, fmt.Errorf("%w: cannot call Front on an empty tuple", ErrEmptyTuple)
	}
	return t.slice(0, t.n-1), nil
}

// Rest returns a new tuple omitting the first element. It fails wrapping
// [ErrEmptyTuple] on the empty tuple.
func (t Tuple) Rest() (Tuple, error) {
	if t.n == 0 {
		return Tuple{}, fmt.Errorf("%w: cannot call Rest on an empty tuple", ErrEmptyTuple)
	}
	return t.slice(1, t.n), nil
}

// slice copies elements [lo, hi) into a fresh tuple.
func (t Tuple) slice(lo, hi int) Tuple {
	out := newTuple(hi - lo)
	for i := lo; i < hi; i++ {
		out.set(i-lo, t.AtUnchecked(i))
	}
	return out
}

// Reverse returns a new tuple with the element order reversed.
func (t Tuple) Reverse() Tuple {
	out := newTuple(t.n)
	for i := 0; i < t.n; i++ {
		out.set(t.n-1-i, t.AtUnchecked(i))
	}
	return out
}

// CircShift returns a new tuple rotated by k positions: the element at
// index i moves to index (i+k) mod Len. Negative k rotates the opposite
// way via modular arithmetic. Arity 0 and 1 tuples are returned as-is.
func (t Tuple) CircShift(k int) Tuple {
	if t.n <= 1 {
		return t
	}
	k %= t.n
	if k < 0 {
		k += t.n
	}
	if k == 0 {
		return t
	}
	out := newTuple(t.n)
	for i := 0; i < t.n; i++ {
		out.set((i+k)%t.n, t.AtUnchecked(i))
	}
	return out
}

// String renders the tuple in parenthesized element order.
func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < t.n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", t.AtUnchecked(i))
	}
	sb.WriteByte(')')
	return sb.String()
}

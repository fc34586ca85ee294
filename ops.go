// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

// Map applies f element-wise, producing a new tuple of the same arity.
// Mapping over the empty tuple returns the empty tuple for any f.
func Map(f func(any) any, t Tuple) Tuple {
	out := newTuple(t.n)
	for i := 0; i < t.n; i++ {
		out.set(i, f(t.AtUnchecked(i)))
	}
	return out
}

// Map2 applies f pairwise across two tuples. The result arity is the
// minimum of the input arities: the shorter input truncates the zip.
func Map2(f func(a, b any) any, t1, t2 Tuple) Tuple {
	n := min(t1.n, t2.n)
	out := newTuple(n)
	for i := 0; i < n; i++ {
		out.set(i, f(t1.AtUnchecked(i), t2.AtUnchecked(i)))
	}
	return out
}

// MapN applies f position-wise across any number of tuples. The result
// arity is the minimum input arity; with no inputs it returns the empty
// tuple.
func MapN(f func(vs ...any) any, ts ...Tuple) Tuple {
	if len(ts) == 0 {
		return Tuple{}
	}
	n := ts[0].n
	for _, t := range ts[1:] {
		n = min(n, t.n)
	}
	out := newTuple(n)
	args := make([]any, len(ts))
	for i := 0; i < n; i++ {
		for j, t := range ts {
			args[j] = t.AtUnchecked(i)
		}
		out.set(i, f(args...))
	}
	return out
}

// Filter returns a new tuple containing only the elements satisfying
// pred, in original order.
func Filter(pred func(any) bool, t Tuple) Tuple {
	kept := make([]any, 0, t.n)
	for i := 0; i < t.n; i++ {
		if v := t.AtUnchecked(i); pred(v) {
			kept = append(kept, v)
		}
	}
	return Of(kept...)
}

// FindFirst returns the lowest index whose element satisfies pred, or
// (0, false) when no element does.
func FindFirst(pred func(any) bool, t Tuple) (int, bool) {
	for i := 0; i < t.n; i++ {
		if pred(t.AtUnchecked(i)) {
			return i, true
		}
	}
	return 0, false
}

// FindLast returns the highest index whose element satisfies pred, or
// (0, false) when no element does.
func FindLast(pred func(any) bool, t Tuple) (int, bool) {
	for i := t.n - 1; i >= 0; i-- {
		if pred(t.AtUnchecked(i)) {
			return i, true
		}
	}
	return 0, false
}

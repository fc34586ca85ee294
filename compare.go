// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

// Ternary is a three-valued comparison result. Unknown models
// comparisons against [Missing] values, where neither True nor False can
// be determined.
type Ternary uint8

const (
	False Ternary = iota
	True
	Unknown
)

func (v Ternary) String() string {
	switch v {
	case False:
		return "False"
	case True:
		return "True"
	case Unknown:
		return "Unknown"
	}
	return "Ternary(invalid)"
}

// Missing is the unknown-value sentinel: any three-valued comparison
// involving a Missing element yields Unknown for that pair.
type Missing struct{}

// Equal reports structural equality: same arity and every pair of
// corresponding elements equal. Missing equals Missing, nested tuples
// recurse, and differing arities are unequal, never an error. Element
// types must be comparable, the same discipline as map keys.
func Equal(t1, t2 Tuple) bool {
	if t1.n != t2.n {
		return false
	}
	for i := 0; i < t1.n; i++ {
		if !equalValue(t1.AtUnchecked(i), t2.AtUnchecked(i)) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if at, ok := a.(Tuple); ok {
		bt, ok := b.(Tuple)
		return ok && Equal(at, bt)
	}
	if _, ok := b.(Tuple); ok {
		return false
	}
	if _, ok := a.(Missing); ok {
		_, ok := b.(Missing)
		return ok
	}
	if _, ok := b.(Missing); ok {
		return false
	}
	return a == b
}

// EqualTernary is the three-valued structural equality. The fold visits
// pairs in order: the first False determines the result immediately,
// while Unknown is recorded and only survives to the end if no later
// pair contradicts it into False. Differing arities yield False.
func EqualTernary(t1, t2 Tuple) Ternary {
	if t1.n != t2.n {
		return False
	}
	anyUnknown := false
	for i := 0; i < t1.n; i++ {
		switch equalTernaryValue(t1.AtUnchecked(i), t2.AtUnchecked(i)) {
		case False:
			return False
		case Unknown:
			anyUnknown = true
		}
	}
	if anyUnknown {
		return Unknown
	}
	return True
}

func equalTernaryValue(a, b any) Ternary {
	if _, ok := a.(Missing); ok {
		return Unknown
	}
	if _, ok := b.(Missing); ok {
		return Unknown
	}
	if at, ok := a.(Tuple); ok {
		bt, ok := b.(Tuple)
		if !ok {
			return False
		}
		return EqualTernary(at, bt)
	}
	if _, ok := b.(Tuple); ok {
		return False
	}
	if a == b {
		return True
	}
	return False
}

// Compare orders tuples lexicographically using cmp over element pairs
// (negative, zero, or positive, as in [cmp.Compare]), with arity as the
// final tie-break: a shorter tuple precedes any of its proper extensions.
func Compare(t1, t2 Tuple, cmp func(a, b any) int) int {
	n := min(t1.n, t2.n)
	for i := 0; i < n; i++ {
		if c := cmp(t1.AtUnchecked(i), t2.AtUnchecked(i)); c != 0 {
			return c
		}
	}
	switch {
	case t1.n < t2.n:
		return -1
	case t1.n > t2.n:
		return 1
	}
	return 0
}

// Less reports the strict total order induced by [Compare].
func Less(t1, t2 Tuple, cmp func(a, b any) int) bool {
	return Compare(t1, t2, cmp) < 0
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import (
	"code.hybscloud.com/kont"
)

// Step evaluates an exception-typed computation until the first effect
// suspension. Returns (Either, nil) on completion, or (zero, suspension)
// when an operation is pending.
func Step[R any](comp kont.Expr[R]) (kont.Either[Exception, R], *kont.Suspension[kont.Either[Exception, R]]) {
	wrapped := kont.ExprMap(comp, func(r R) kont.Either[Exception, R] {
		return kont.Right[Exception, R](r)
	})
	return kont.StepExpr(wrapped)
}

// Advance dispatches the suspended exception operation on xc. Exception
// dispatch never blocks; a propagating raise discards the suspension and
// returns Left.
func Advance[R any](xc *Context, susp *kont.Suspension[kont.Either[Exception, R]]) (kont.Either[Exception, R], *kont.Suspension[kont.Either[Exception, R]]) {
	eop, ok := susp.Op().(excDispatcher)
	if !ok {
		panic("base: unhandled effect in Advance")
	}
	v, _ := eop.DispatchExc(xc)
	if xc.raised() {
		susp.Discard()
		return kont.Left[Exception, R](xc.take()), nil
	}
	return susp.Resume(v)
}

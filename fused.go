// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import (
	"code.hybscloud.com/kont"
)

// Throw raises v and unwinds to the nearest handler scope. The R
// parameter types the unreachable continuation.
// Fuses Perform(Raise{Value: v}) + Then + Pure.
func Throw[R any](v any) kont.Eff[R] {
	var zero R
	return kont.Then(kont.Perform(Raise{Value: v}), kont.Pure(zero))
}

// Rethrow re-raises the active record unchanged, preserving its trace
// and every earlier record.
// Fuses Perform(Reraise{}) + Then + Pure.
func Rethrow[R any]() kont.Eff[R] {
	var zero R
	return kont.Then(kont.Perform(Reraise{}), kont.Pure(zero))
}

// RethrowAs re-raises with a replacement payload. The new record keeps
// the original trace and earlier records remain inspectable (root-cause
// preservation).
// Fuses Perform(Reraise{Value: v, Substitute: true}) + Then + Pure.
func RethrowAs[R any](v any) kont.Eff[R] {
	var zero R
	return kont.Then(kont.Perform(Reraise{Value: v, Substitute: true}), kont.Pure(zero))
}

// Exceptions reads the context's stack from inside a computation,
// most-recent-last. With includeTrace false the returned records omit
// frames.
func Exceptions(includeTrace bool) kont.Eff[[]Exception] {
	return kont.Perform(Current{IncludeTrace: includeTrace})
}

// CatchEff runs body in an inner handler scope and calls handler with
// the caught record.
// Fuses Perform(Catch{Body: body, Handler: handler}).
func CatchEff[R any](body kont.Eff[R], handler func(Exception) kont.Eff[R]) kont.Eff[R] {
	return kont.Perform(Catch[R]{Body: body, Handler: handler})
}

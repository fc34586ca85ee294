// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import (
	"code.hybscloud.com/kont"
)

// Raise is the effect operation for raising an error value.
// Perform(Raise{Value: v}) appends a record to the context's stack and
// unwinds to the nearest enclosing handler scope.
type Raise struct {
	kont.Phantom[struct{}]
	Value any
}

// DispatchExc handles Raise. Backtrace capture happens here, at raise
// time, when the context captures. Never resumes.
func (r Raise) DispatchExc(xc *Context) (kont.Resumed, bool) {
	rec := Exception{Value: r.Value}
	if xc.capture {
		rec.Trace = Capture()
	}
	xc.push(rec)
	return nil, false
}

// Reraise is the effect operation for rethrowing the active record.
// With Substitute set, Value becomes the payload of a new record that
// keeps the original trace; earlier records are never discarded, so the
// root cause stays inspectable.
type Reraise struct {
	kont.Phantom[struct{}]
	Value      any
	Substitute bool
}

// DispatchExc handles Reraise. Panics when nothing has been raised on
// the context: rethrow is only meaningful inside a handler scope.
func (r Reraise) DispatchExc(xc *Context) (kont.Resumed, bool) {
	if len(xc.records) == 0 {
		panic("base: rethrow with no active exception")
	}
	if r.Substitute {
		xc.push(Exception{Value: r.Value, Trace: xc.last().Trace})
	} else {
		xc.reraise()
	}
	return nil, false
}

// Current is the effect operation for inspecting the context's stack
// from inside a computation. Resumes with the snapshot; never unwinds.
type Current struct {
	kont.Phantom[[]Exception]
	IncludeTrace bool
}

// DispatchExc handles Current with owner-side snapshot semantics.
func (c Current) DispatchExc(xc *Context) (kont.Resumed, bool) {
	return xc.snapshotOwner(c.IncludeTrace), true
}

// Catch is the effect operation for an inner handler scope. Body runs
// first; if it raises, this scope consumes the record and Handler runs
// with it. A raise inside Handler propagates to the enclosing scope with
// all earlier records intact.
type Catch[R any] struct {
	kont.Phantom[R]
	Body    kont.Eff[R]
	Handler func(Exception) kont.Eff[R]
}

// DispatchExc handles Catch by running Body, then Handler on a caught
// record, each in a nested handler scope on the same context.
func (c Catch[R]) DispatchExc(xc *Context) (kont.Resumed, bool) {
	res := Try(xc, c.Body)
	if v, ok := res.GetRight(); ok {
		return v, true
	}
	rec, _ := res.GetLeft()
	res = Try(xc, c.Handler(rec))
	if v, ok := res.GetRight(); ok {
		return v, true
	}
	// Handler re-raised: flag the record for the enclosing scope.
	xc.reraise()
	return nil, false
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Exception is one raised-error record: the raised value, opaque to this
// package, and the frames captured at raise time. Records are immutable
// once created. Trace is nil on contexts created with [NewContextNoTrace].
type Exception struct {
	Value any
	Trace []Frame
}

// State is the lifecycle state of a [Context].
type State = uint32

// Context lifecycle: idle until the first raise, raised while a record
// propagates toward a handler scope, handled once a scope consumed it,
// terminated after [Context.Retire] or an uncaught raise in [Run].
const (
	StateIdle State = iota
	StateRaised
	StateHandled
	StateTerminated
)

// Context owns the exception stack of one logical execution context.
// Records accumulate most-recent-last; inspection reads the stack, it
// never pops. Only the owning goroutine may raise or reset; foreign
// goroutines read diagnostics through [Context.Snapshot].
type Context struct {
	serial  Serial
	capture bool
	state   atomix.Uint32
	// version is the seqlock word bracketing stack mutations: odd while
	// the owner is mid-mutation, even when the stack is stable.
	version atomix.Uint32
	records []Exception
	pending bool
}

// NewContext creates an idle execution context that captures a backtrace
// for every raise.
func NewContext() *Context {
	return &Context{serial: nextSerial(), capture: true}
}

// NewContextNoTrace creates a context that skips backtrace capture at
// raise time. The skip is a capture-time fact: records from this context
// never carry frames, regardless of how they are inspected later.
func NewContextNoTrace() *Context {
	return &Context{serial: nextSerial()}
}

// Serial returns the serial number assigned to this context.
func (xc *Context) Serial() Serial {
	return xc.serial
}

// State returns the current lifecycle state.
func (xc *Context) State() State {
	return xc.state.Load()
}

// Depth returns the number of records on the stack. Owner-side; foreign
// readers use [Context.Snapshot].
func (xc *Context) Depth() int {
	return len(xc.records)
}

// Reset repurposes the context: the stack is cleared and the lifecycle
// returns to idle. Owner-side only.
func (xc *Context) Reset() {
	xc.version.Add(1)
	xc.records = nil
	xc.pending = false
	xc.version.Add(1)
	xc.state.Store(StateIdle)
}

// Retire marks the context completed and clears its stack. A retired
// context must not raise again; doing so panics.
func (xc *Context) Retire() {
	xc.version.Add(1)
	xc.records = nil
	xc.pending = false
	xc.version.Add(1)
	xc.state.Store(StateTerminated)
}

// push appends a record most-recent-last and flags it as propagating.
// Owner-side; the seqlock version word brackets the append for foreign
// Snapshot readers.
func (xc *Context) push(rec Exception) {
	if xc.state.Load() == StateTerminated {
		panic("base: raise on a terminated context")
	}
	xc.version.Add(1)
	xc.records = append(xc.records, rec)
	xc.version.Add(1)
	xc.pending = true
	xc.state.Store(StateRaised)
}

// reraise re-flags the top record as propagating without appending.
func (xc *Context) reraise() {
	if xc.state.Load() == StateTerminated {
		panic("base: raise on a terminated context")
	}
	xc.pending = true
	xc.state.Store(StateRaised)
}

// raised reports whether a record is propagating toward a handler scope.
func (xc *Context) raised() bool {
	return xc.pending
}

// take consumes the propagating flag and returns the top record. The
// calling scope becomes the handler; the record stays on the stack.
func (xc *Context) take() Exception {
	xc.pending = false
	xc.state.Store(StateHandled)
	return xc.records[len(xc.records)-1]
}

// last returns the most recent record.
func (xc *Context) last() Exception {
	return xc.records[len(xc.records)-1]
}

// snapshotOwner copies the stack without synchronization; owner-side.
func (xc *Context) snapshotOwner(includeTrace bool) []Exception {
	return copyRecords(xc.records, includeTrace)
}

func copyRecords(recs []Exception, includeTrace bool) []Exception {
	out := make([]Exception, len(recs))
	copy(out, recs)
	if !includeTrace {
		for i := range out {
			out[i].Trace = nil
		}
	}
	return out
}

// Snapshot returns a read-only copy of the stack, most-recent-last, safe
// to call from a foreign goroutine. Readers retry through the seqlock
// with adaptive backoff (iox.Backoff) while the owner is mid-mutation.
//
// includeTrace false omits frames from the returned records; whether
// frames were captured at all is the context's capture-time flag, not
// this parameter.
func (xc *Context) Snapshot(includeTrace bool) []Exception {
	var bo iox.Backoff
	for {
		v := xc.version.Load()
		if v&1 == 0 {
			out := copyRecords(xc.records, includeTrace)
			if xc.version.Load() == v {
				return out
			}
		}
		bo.Wait()
	}
}

// excDispatcher is the structural interface for exception operations.
type excDispatcher interface {
	DispatchExc(xc *Context) (kont.Resumed, bool)
}

// excHandler interprets exception effects against one context. A
// propagating raise short-circuits the computation with Left.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type excHandler[R any] struct {
	xc *Context
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h excHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	eop, ok := op.(excDispatcher)
	if !ok {
		panic("base: unhandled effect in excHandler")
	}
	v, _ := eop.DispatchExc(h.xc)
	if h.xc.raised() {
		return kont.Left[Exception, R](h.xc.take()), false
	}
	return v, true
}

// Try runs comp as a handler scope on xc. Returns Right on success or
// Left carrying the caught record. The record stays on the stack for
// later inspection; leaving the scope with Left is the handled
// transition.
func Try[R any](xc *Context, comp kont.Eff[R]) kont.Either[Exception, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[Exception, R]](comp, func(r R) kont.Either[Exception, R] {
		return kont.Right[Exception, R](r)
	})
	return kont.Handle(wrapped, excHandler[R]{xc: xc})
}

// TryExpr is [Try] for Expr-world computations.
func TryExpr[R any](xc *Context, comp kont.Expr[R]) kont.Either[Exception, R] {
	wrapped := kont.ExprMap(comp, func(r R) kont.Either[Exception, R] {
		return kont.Right[Exception, R](r)
	})
	return kont.HandleExpr(wrapped, excHandler[R]{xc: xc})
}

// Run runs comp to completion. An uncaught raise is fatal: the context is
// retired and Run panics with the [Exception]. Use [Try] where recovery
// is wanted.
func Run[R any](xc *Context, comp kont.Eff[R]) R {
	res := Try(xc, comp)
	if rec, ok := res.GetLeft(); ok {
		xc.Retire()
		panic(rec)
	}
	v, _ := res.GetRight()
	return v
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package base provides fixed-arity tuple values and an exception channel
// with backtrace capture and retry, built on algebraic effects from
// [code.hybscloud.com/kont].
//
// # Architecture
//
//   - Tuples: [Tuple] is an immutable, ordered, heterogeneous container of
//     fixed arity with value semantics. Storage is two-tier: arities up to 4
//     live inline without heap indirection, larger arities spill to a shared
//     immutable slice.
//   - Exceptions: raising, rethrowing, and inspecting errors are typed effect
//     operations dispatched against a [Context], the per-execution-context
//     exception stack. Handler scopes short-circuit returning
//     [code.hybscloud.com/kont.Either].
//   - Backtraces: [Capture] records native frames; [Decode] converts the
//     dual-stream raw form produced by a native unwinder into structured
//     [Frame] values. [TraceFeed] hands raw traces across goroutines over a
//     bounded lock-free queue via [code.hybscloud.com/lfq].
//   - Retry: [Retry] wraps a computation with retry-on-raise semantics driven
//     by a [Backoff] delay sequence and an optional [Check] predicate.
//
// # API Topologies
//
//   - Tuple construction: [Of], [Of1] through [Of4], [FromSeq].
//   - Tuple operations: [Tuple.At], [Tuple.With], [Tuple.Front], [Tuple.Rest],
//     [Tuple.Reverse], [Tuple.CircShift], [Map], [Map2], [MapN], [Filter],
//     [FindFirst], [FindLast], [Equal], [EqualTernary], [Compare], [Hash].
//   - Effect operations: [Raise], [Reraise], [Current], [Catch].
//   - Fused constructors: [Throw], [Rethrow], [RethrowAs], [Exceptions],
//     [CatchEff].
//   - Runners: [Try], [TryExpr], [Run]. Stepping via [Step] and [Advance] for
//     hosts that drive computation from an event loop.
//
// # Execution Contexts
//
// Each logical execution context owns one [Context]. The context's stack
// grows on raise, is read (never popped) by inspection, and is cleared by
// [Context.Reset] or [Context.Retire]. Only the owning goroutine may raise;
// foreign goroutines read diagnostics through [Context.Snapshot], which
// retries through a seqlock with adaptive backoff from
// [code.hybscloud.com/iox].
//
// # Example
//
//	xc := base.NewContext()
//	comp := base.CatchEff(
//		base.Throw[string]("boom"),
//		func(exc base.Exception) kont.Eff[string] {
//			return kont.Pure("recovered: " + exc.Value.(string))
//		},
//	)
//	result := base.Try(xc, comp) // Right("recovered: boom")
package base

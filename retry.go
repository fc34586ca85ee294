// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import (
	"time"

	"code.hybscloud.com/kont"
)

// Check decides whether a caught record warrants another attempt. It
// receives the advanced delay-sequence state and may return an adjusted
// state to steer the remaining attempts. Returning false stops retrying
// and the original record propagates unchanged.
type Check func(s BackoffState, exc Exception) (BackoffState, bool)

// CheckOnly adapts a plain predicate into a [Check] that leaves the
// sequence state untouched.
func CheckOnly(pred func(exc Exception) bool) Check {
	return func(s BackoffState, exc Exception) (BackoffState, bool) {
		return s, pred(exc)
	}
}

// Retry wraps f with retry-on-raise semantics over delays. Each attempt
// constructs a fresh computation via f and runs it as a handler scope on
// xc.
//
// On success the wrapper returns Right immediately; no delay is
// observed. On a caught raise the check, when present, sees the advanced
// sequence state and the record and decides whether to keep going;
// refusal returns the original Left with the stack intact, after zero
// delays and zero further attempts. Otherwise the wrapper sleeps the
// current delay and tries again. Once the sequence is exhausted the
// wrapper makes one final call whose result passes through untouched:
// exhaustion stops the shielding, it does not fail silently.
//
// With a nil check every caught raise retries until exhaustion. Within
// one call to the wrapper the order is strictly catch, decide, delay,
// retry.
func Retry[R any](xc *Context, f func() kont.Eff[R], delays Backoff, check Check) func() kont.Either[Exception, R] {
	return func() kont.Either[Exception, R] {
		s := delays.Start()
		for {
			d, ns, ok := delays.Next(s)
			if !ok {
				break
			}
			res := Try(xc, f())
			if res.IsRight() {
				return res
			}
			s = ns
			if check != nil {
				exc, _ := res.GetLeft()
				var again bool
				s, again = check(s, exc)
				if !again {
					return res
				}
			}
			time.Sleep(d)
		}
		// Delay sequence exhausted: one final call, undamped.
		return Try(xc, f())
	}
}

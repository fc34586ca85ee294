// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package base_test

import "testing"

// skipRace skips tests that exercise lfq SPSC transport or the seqlock
// snapshot path. The race detector tracks per-variable happens-before
// and cannot see their cross-variable memory ordering (store-release on
// data, load-acquire on index/version), producing false positives.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: SPSC and seqlock use cross-variable memory ordering")
}

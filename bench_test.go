// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base_test

import (
	"testing"

	"code.hybscloud.com/base"
	"code.hybscloud.com/kont"
)

// BenchmarkWithInline measures a functional update on an inline tuple.
func BenchmarkWithInline(b *testing.B) {
	tu := base.Of(1, 2, 3, 4)
	b.ReportAllocs()
	for b.Loop() {
		tu, _ = tu.With(2, 99)
	}
}

// BenchmarkWithSpill measures a functional update on a spilled tuple.
func BenchmarkWithSpill(b *testing.B) {
	tu := base.Of(1, 2, 3, 4, 5, 6, 7, 8)
	b.ReportAllocs()
	for b.Loop() {
		tu, _ = tu.With(5, 99)
	}
}

// BenchmarkMap measures elementwise mapping.
func BenchmarkMap(b *testing.B) {
	tu := base.Of(1, 2, 3, 4)
	double := func(v any) any { return v.(int) * 2 }
	b.ReportAllocs()
	for b.Loop() {
		base.Map(double, tu)
	}
}

// BenchmarkHash measures hashing a mixed-type tuple.
func BenchmarkHash(b *testing.B) {
	tu := base.Of(1, "two", 3.0, base.Of(4, 5))
	b.ReportAllocs()
	for b.Loop() {
		base.Hash(tu, 0)
	}
}

// BenchmarkTrySuccess measures the handler scope on the happy path.
func BenchmarkTrySuccess(b *testing.B) {
	xc := base.NewContextNoTrace()
	b.ReportAllocs()
	for b.Loop() {
		base.Try(xc, kont.Pure(1))
	}
}

// BenchmarkTryThrow measures raise plus short-circuit without capture.
func BenchmarkTryThrow(b *testing.B) {
	xc := base.NewContextNoTrace()
	b.ReportAllocs()
	for b.Loop() {
		base.Try(xc, base.Throw[int]("e"))
		xc.Reset()
	}
}

// BenchmarkTryThrowTraced measures raise with backtrace capture.
func BenchmarkTryThrowTraced(b *testing.B) {
	xc := base.NewContext()
	b.ReportAllocs()
	for b.Loop() {
		base.Try(xc, base.Throw[int]("e"))
		xc.Reset()
	}
}

// BenchmarkSnapshot measures a foreign seqlock read of a quiescent stack.
func BenchmarkSnapshot(b *testing.B) {
	xc := base.NewContextNoTrace()
	for i := 0; i < 8; i++ {
		base.Try(xc, base.Throw[int](i))
	}
	b.ReportAllocs()
	for b.Loop() {
		xc.Snapshot(false)
	}
}

// BenchmarkDecode measures decoding a mixed raw trace.
func BenchmarkDecode(b *testing.B) {
	var raw base.RawTrace
	for i := uintptr(1); i <= 8; i++ {
		raw.AppendNative(i << 12)
	}
	raw.AppendInterpreted("code", "mod", 3)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := base.Decode(raw); err != nil {
			b.Fatal(err)
		}
	}
}

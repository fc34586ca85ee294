// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base_test

import (
	"testing"

	"code.hybscloud.com/base"
	"code.hybscloud.com/kont"
)

func TestStepCompletesPureComputation(t *testing.T) {
	res, susp := base.Step(kont.ExprReturn(7))
	if susp != nil {
		t.Fatal("pure computation suspended")
	}
	v, ok := res.GetRight()
	if !ok || v != 7 {
		t.Fatalf("Step got (%v, %v), want (7, true)", v, ok)
	}
}

func TestStepAdvanceInspection(t *testing.T) {
	xc := base.NewContext()
	base.Try(xc, base.Throw[int]("pre"))

	res, susp := base.Step(kont.ExprPerform(base.Current{IncludeTrace: false}))
	if susp == nil {
		t.Fatalf("expected suspension, got result %v", res)
	}
	res, susp = base.Advance(xc, susp)
	for susp != nil {
		res, susp = base.Advance(xc, susp)
	}
	recs, ok := res.GetRight()
	if !ok {
		t.Fatal("expected Right, got Left")
	}
	if len(recs) != 1 || recs[0].Value != "pre" {
		t.Fatalf("stepped inspection got %v", recs)
	}
}

func TestStepAdvanceRaise(t *testing.T) {
	xc := base.NewContext()
	res, susp := base.Step(kont.ExprPerform(base.Raise{Value: "step-boom"}))
	if susp == nil {
		t.Fatalf("expected suspension, got result %v", res)
	}
	res, susp = base.Advance(xc, susp)
	if susp != nil {
		t.Fatal("raise did not discard the suspension")
	}
	exc, ok := res.GetLeft()
	if !ok || exc.Value != "step-boom" {
		t.Fatalf("Advance got (%v, %v), want Left(step-boom)", exc.Value, ok)
	}
	if xc.Depth() != 1 {
		t.Fatalf("stack depth got %d, want 1", xc.Depth())
	}
}

func TestAdvanceUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[int] }

	_, susp := base.Step(kont.ExprPerform(bogus{}))
	if susp == nil {
		t.Fatal("expected suspension")
	}
	xc := base.NewContext()
	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || msg != "base: unhandled effect in Advance" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	base.Advance(xc, susp)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import (
	"code.hybscloud.com/lfq"
)

// feedCapacity is the bounded capacity of the trace feed queue.
// 4 keeps the ring within a single cache line while amortizing the
// producer-side cached-index refresh cost.
const feedCapacity = 4

// TraceFeed hands raw traces from a native-unwinder producer to the
// decoding consumer over a bounded lock-free SPSC queue. Exactly one
// goroutine may Offer and exactly one may Poll.
type TraceFeed struct {
	q    lfq.SPSC[RawTrace]
	slot RawTrace
}

// NewTraceFeed creates an empty feed.
func NewTraceFeed() *TraceFeed {
	f := &TraceFeed{}
	f.q.Init(feedCapacity)
	return f
}

// Offer enqueues a raw trace. Non-blocking: returns iox.ErrWouldBlock
// when the consumer has not kept up.
func (f *TraceFeed) Offer(raw RawTrace) error {
	f.slot = raw
	return f.q.Enqueue(&f.slot)
}

// Poll dequeues the next raw trace. Non-blocking: returns
// iox.ErrWouldBlock when no trace is pending.
func (f *TraceFeed) Poll() (RawTrace, error) {
	return f.q.Dequeue()
}

// DecodeNext polls and decodes in one step. Backpressure surfaces as
// iox.ErrWouldBlock; malformed traces surface as [Decode] errors.
func (f *TraceFeed) DecodeNext() ([]Frame, error) {
	raw, err := f.q.Dequeue()
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

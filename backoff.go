// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import (
	"errors"
	"iter"
	"math/rand/v2"
	"time"
)

// Backoff is a bounded, lazily produced delay sequence: n delays starting
// at min(first, max), each subsequent delay the previous one scaled by
// factor with ±jitter fractional randomization, clamped to max.
// Immutable after construction.
type Backoff struct {
	n      int
	first  time.Duration
	max    time.Duration
	factor float64
	jitter float64
}

// NewBackoff validates and constructs a delay sequence. Every parameter
// must be non-negative.
func NewBackoff(n int, first, max time.Duration, factor, jitter float64) (Backoff, error) {
	switch {
	case n < 0:
		return Backoff{}, errors.New("base: negative backoff count")
	case first < 0:
		return Backoff{}, errors.New("base: negative backoff first delay")
	case max < 0:
		return Backoff{}, errors.New("base: negative backoff max delay")
	case factor < 0:
		return Backoff{}, errors.New("base: negative backoff factor")
	case jitter < 0:
		return Backoff{}, errors.New("base: negative backoff jitter")
	}
	return Backoff{n: n, first: first, max: max, factor: factor, jitter: jitter}, nil
}

// DefaultBackoff is a single 50ms delay growing 5x with 10% jitter,
// capped at 10s.
func DefaultBackoff() Backoff {
	b, _ := NewBackoff(1, 50*time.Millisecond, 10*time.Second, 5, 0.1)
	return b
}

// Len returns the number of delays the sequence produces.
func (b Backoff) Len() int {
	return b.n
}

// BackoffState is explicit iteration state over a [Backoff]. Retry check
// predicates receive it and may return an adjusted copy to steer the
// remaining attempts.
type BackoffState struct {
	// Remaining is how many delays the sequence will still produce.
	Remaining int
	// Delay is the next delay to be produced.
	Delay time.Duration
}

// Start returns the initial iteration state.
func (b Backoff) Start() BackoffState {
	return BackoffState{Remaining: b.n, Delay: min(b.first, b.max)}
}

// Next produces the current delay and the advanced state. ok is false
// once the sequence is exhausted.
func (b Backoff) Next(s BackoffState) (delay time.Duration, next BackoffState, ok bool) {
	if s.Remaining <= 0 {
		return 0, s, false
	}
	delay = s.Delay
	grown := float64(delay) * b.factor
	if b.jitter > 0 {
		grown *= 1 + b.jitter*(2*rand.Float64()-1)
	}
	nd := time.Duration(grown)
	if nd > b.max {
		nd = b.max
	}
	return delay, BackoffState{Remaining: s.Remaining - 1, Delay: nd}, true
}

// Delays returns the sequence as a lazy finite iterator. Each range
// starts from a fresh state.
func (b Backoff) Delays() iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		s := b.Start()
		for {
			d, ns, ok := b.Next(s)
			if !ok || !yield(d) {
				return
			}
			s = ns
		}
	}
}

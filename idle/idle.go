// Package idle provides the Platform Adapter's Wait/Notify family.
//
// Wait blocks until a subsequent Notify (spurious wakeups are allowed);
// Notify wakes at most one waiter, or records a pending wake if nothing is
// currently blocked in Wait. This package offers several interchangeable
// implementations of that contract, trading idle CPU against wake latency.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package idle

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Strategy is the Wait/Notify half of the Platform Adapter contract
// (lock/unlock are provided separately; see nanolog.Adapter).
type Strategy interface {
	// Wait blocks until a subsequent Notify. Spurious wakeups are allowed.
	Wait()
	// Notify wakes at most one waiter, or records a pending wake if none
	// is currently blocked in Wait.
	Notify()
	// String names the strategy, for diagnostics.
	String() string
}

// Yield is the simplest strategy: Wait is a scheduler yield, Notify is a
// no-op. The consumer busy-polls at the cost of CPU; correctness is
// unaffected since a redundant drain pass is always safe.
type Yield struct{}

// NewYield creates a Yield strategy.
func NewYield() *Yield { return &Yield{} }

func (*Yield) Wait()          { runtime.Gosched() }
func (*Yield) Notify()        {}
func (*Yield) String() string { return "yield" }

// Spin never yields; it is meant for benchmark harnesses measuring the
// producer path in isolation from scheduler noise, not production use.
type Spin struct{}

// NewSpin creates a Spin strategy.
func NewSpin() *Spin { return &Spin{} }

func (*Spin) Wait()          {}
func (*Spin) Notify()        {}
func (*Spin) String() string { return "spin" }

// Sleep blocks the consumer for a fixed duration per Wait call, trading
// wake-up latency for near-zero idle CPU usage.
type Sleep struct {
	d time.Duration
}

// NewSleep creates a Sleep strategy waiting d between polls.
func NewSleep(d time.Duration) *Sleep {
	if d <= 0 {
		d = time.Millisecond
	}
	return &Sleep{d: d}
}

func (s *Sleep) Wait()          { time.Sleep(s.d) }
func (*Sleep) Notify()          {}
func (*Sleep) String() string { return "sleep" }

// Channel implements real blocking wait/notify using a buffered channel of
// capacity one, so a Notify that arrives before the matching Wait is not
// lost. This is the strategy production Log Servers should use:
// near-zero idle CPU and microsecond-scale wake latency.
type Channel struct {
	wake chan struct{}
}

// NewChannel creates a Channel strategy.
func NewChannel() *Channel {
	return &Channel{wake: make(chan struct{}, 1)}
}

func (c *Channel) Wait() {
	<-c.wake
}

func (c *Channel) Notify() {
	select {
	case c.wake <- struct{}{}:
	default:
		// a wake is already pending; at-most-one-waiter semantics satisfied
	}
}

func (*Channel) String() string { return "channel" }

// Progressive starts hot-spinning for minimum latency, backs off to
// occasional scheduler yields, then to capped exponential sleeps as idle
// time grows, tracking pending wakes with a single flag rather than a
// batch-processed counter.
type Progressive struct {
	spins   atomic.Int64
	pending atomic.Bool

	hotSpinThreshold  int64
	warmSpinThreshold int64
	baseSleep         time.Duration
	maxSleep          time.Duration
}

// NewProgressive creates a Progressive strategy with reasonable default
// thresholds (1000 hot spins, 10000 warm spins, 1µs base sleep, 1ms cap).
func NewProgressive() *Progressive {
	return &Progressive{
		hotSpinThreshold:  1000,
		warmSpinThreshold: 10000,
		baseSleep:         time.Microsecond,
		maxSleep:          time.Millisecond,
	}
}

func (p *Progressive) Wait() {
	if p.pending.CompareAndSwap(true, false) {
		p.spins.Store(0)
		return
	}

	spins := p.spins.Add(1)
	switch {
	case spins < p.hotSpinThreshold:
		return
	case spins < p.warmSpinThreshold:
		if spins&7 == 0 {
			runtime.Gosched()
		}
	default:
		shift := (spins - p.warmSpinThreshold) / 2
		if shift > 10 {
			shift = 10
		}
		d := p.baseSleep * time.Duration(int64(1)<<uint(shift))
		if d > p.maxSleep {
			d = p.maxSleep
		}
		time.Sleep(d)
	}
}

func (p *Progressive) Notify() {
	p.pending.Store(true)
}

func (*Progressive) String() string { return "progressive" }

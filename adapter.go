// adapter.go: the Platform Adapter capability set
//
// The consumer's blocking primitives are four host-supplied operations:
// wait, notify, lock, unlock. Rather than subtype dispatch, the Log Server
// is parametrized over a plain Go interface exposing exactly those four
// operations, so a host can swap in its own wait/wake mechanism without
// touching the Server itself.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package nanolog

import (
	"sync"

	"github.com/agilira/nanolog/idle"
)

// Adapter is the host-supplied platform capability set: wait/notify gate
// the consumer's sleep, lock/unlock guard the Log Server's registry only
// (never the producer fast path).
type Adapter interface {
	Wait()
	Notify()
	Lock()
	Unlock()
}

// defaultAdapter pairs an idle.Strategy with a plain sync.Mutex, which is
// sufficient for every strategy in the idle package: none of them need
// anything from the registry lock.
type defaultAdapter struct {
	strategy idle.Strategy
	mu       sync.Mutex
}

// NewAdapter builds an Adapter from an idle.Strategy. Passing nil selects
// idle.NewChannel(), a real blocking wait with no busy-polling.
func NewAdapter(strategy idle.Strategy) Adapter {
	if strategy == nil {
		strategy = idle.NewChannel()
	}
	return &defaultAdapter{strategy: strategy}
}

func (a *defaultAdapter) Wait()   { a.strategy.Wait() }
func (a *defaultAdapter) Notify() { a.strategy.Notify() }
func (a *defaultAdapter) Lock()   { a.mu.Lock() }
func (a *defaultAdapter) Unlock() { a.mu.Unlock() }

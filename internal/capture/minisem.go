// minisem.go: the mini-semaphore SPSC count primitive
//
// Two independent byte counters track how many arenas are filled but not
// yet drained: no CAS, no blocking, correctness resting entirely on each
// counter having exactly one writer.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package capture

// MiniSemaphore is a two-counter, single-producer/single-consumer count.
//
// puts is incremented only by the producer, gets only by the consumer.
// peek() == puts - gets (mod 256) is the number of filled-but-undrained
// slots. There is no blocking operation here; it is purely a counter.
//
// Correctness requires N < 256 so that the mod-256 wraparound of a byte
// counter can never be confused with a real difference of 256 or more
// outstanding slots.
type MiniSemaphore struct {
	puts PaddedCounter
	gets PaddedCounter
}

// Put increments puts. Producer-only.
func (m *MiniSemaphore) Put() {
	m.puts.Add(1)
}

// Take increments gets. Consumer-only. Returns false without mutating
// state when nothing is outstanding — the caller (Logger.drainOne) is
// expected to have already checked Peek() > 0, so a false here signals a
// bug in that precondition, not a transient state.
func (m *MiniSemaphore) Take() bool {
	if m.Peek() == 0 {
		return false
	}
	m.gets.Add(1)
	return true
}

// Peek returns puts - gets, wrapped modulo 256. Safe to call from either
// thread: each read observes a coherent value independently written by its
// owner, and the subtraction is well-defined under byte wraparound.
func (m *MiniSemaphore) Peek() uint8 {
	return m.puts.Load() - m.gets.Load()
}

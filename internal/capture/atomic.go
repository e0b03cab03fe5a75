// atomic.go: cache-line padded atomic counters for the capture ring
//
// Simplified, single-purpose version of the padded-atomic pattern used
// throughout the AGILira stack: essential Load/Add only, sized to what the
// mini-semaphore actually needs.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package capture

import "sync/atomic"

// PaddedCounter is a cache-line padded atomic byte counter.
//
// It backs the mini-semaphore's puts/gets pair: single-byte atomic
// load/add only, no CAS, no OS primitive. Padding on both sides keeps the
// producer's counter and the consumer's counter on separate cache lines
// so cross-core traffic stays O(1) per advance/drain instead of bouncing a
// shared line back and forth.
type PaddedCounter struct {
	_   [64]byte
	val atomic.Uint32 // only the low byte is meaningful; see mod-256 contract
	_   [64]byte
}

// Load reads the counter. Safe from either the owning writer or any reader.
func (c *PaddedCounter) Load() uint8 {
	return uint8(c.val.Load())
}

// Add adds delta to the counter and returns the new value, wrapping modulo
// 256. Must be called only by the counter's owner.
func (c *PaddedCounter) Add(delta uint8) uint8 {
	return uint8(c.val.Add(uint32(delta)))
}

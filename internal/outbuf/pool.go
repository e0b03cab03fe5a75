// Package outbuf provides a pooled byte buffer for the bundled sinks
// (Text1/Text2, JSON1/JSON2) to format a drained record into before writing.
//
// A sync.Pool of *bytes.Buffer, reset on Get, capped and discarded on Put
// if it grew unreasonably large. This lives on the consumer side only —
// the producer fast path never touches it.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package outbuf

import (
	"bytes"
	"sync"
)

// MaxBufferSize bounds how large a pooled buffer is allowed to grow
// before it is discarded instead of recycled.
const MaxBufferSize = 1 << 20 // 1 MiB

// DefaultCapacity is the initial capacity hint for new buffers, sized for
// a typical formatted log line.
const DefaultCapacity = 256

var pool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, DefaultCapacity))
	},
}

// Get returns a clean *bytes.Buffer from the pool.
func Get() *bytes.Buffer {
	b := pool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

// Put returns b to the pool, discarding its backing array first if it grew
// past MaxBufferSize so one oversized record doesn't bloat the pool
// permanently.
func Put(b *bytes.Buffer) {
	if b == nil {
		return
	}
	if b.Cap() > MaxBufferSize {
		*b = *bytes.NewBuffer(make([]byte, 0, DefaultCapacity))
	}
	b.Reset()
	pool.Put(b)
}

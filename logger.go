// logger.go: the Local Logger — per-producer capture ring
//
// A strictly single-producer ring of N arenas, a mini-semaphore tracking
// how many are filled but undrained, and an explicit advance/flush pair
// instead of a sequence-number claim.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package nanolog

import (
	"fmt"

	"github.com/agilira/nanolog/internal/capture"
)

// Logger is a Local Logger: one producer's capture ring. A Logger must
// not be shared between producer goroutines: writeIndex and the arenas'
// push-side bookkeeping assume exactly one caller ever advances them.
type Logger struct {
	arenas     []*capture.Arena
	writeIndex int // producer-owned only; never read by the consumer
	readIndex  int // consumer-owned only; never read by the producer

	full   capture.MiniSemaphore
	server *Server
	hook   ErrorHook
	cfg    LoggerConfig
}

// NewLogger builds a Local Logger with N arenas of B bytes each.
func NewLogger(opts ...LoggerOption) (*Logger, error) {
	cfg, err := newLoggerConfig(opts)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		arenas: make([]*capture.Arena, cfg.Arenas),
		hook:   cfg.ErrorHook,
		cfg:    cfg,
	}
	for i := range l.arenas {
		l.arenas[i] = capture.NewArena(cfg.ArenaBytes, cfg.MaxRecordsPerArena)
	}
	return l, nil
}

// push is the producer-facing fast path underlying Record1..Record4. It
// performs no formatting and no allocation beyond what the caller's
// generic instantiation already inlines.
func (l *Logger) push(size int, write, reprint func([]byte)) {
	if int(l.full.Peek()) == len(l.arenas) {
		l.hook(newDiagnostic(ErrCodeLoggerFull, "local logger has no writable arena: all N arenas are full"))
		return
	}

	current := l.arenas[l.writeIndex]
	if current.TryPush(size, write, reprint) {
		return
	}

	l.advance()

	// advance() may have just saturated the ring (Peek() == N): that
	// happens when this was the last writable slot, and it leaves
	// writeIndex pointing at readIndex, an arena the consumer owns until
	// its handoff completes. Retrying TryPush on it would race the
	// consumer and reorder this record ahead of whatever the consumer
	// has not yet drained, so the full-ring case must be caught here
	// rather than falling through to the retry below.
	if int(l.full.Peek()) == len(l.arenas) {
		l.hook(newDiagnostic(ErrCodeLoggerFull, "local logger has no writable arena: all N arenas are full"))
		return
	}

	current = l.arenas[l.writeIndex]
	if current.TryPush(size, write, reprint) {
		return
	}

	l.hook(newDiagnostic(ErrCodeEntryTooLarge, fmt.Sprintf(
		"log entry of %d bytes does not fit in an empty arena of %d bytes",
		size, current.Capacity(),
	)))
}

// Flush hands the current arena to the consumer if it holds any records.
// A flush on an empty arena is a documented no-op: it does not advance and
// does not wake the consumer, so idle producers never churn the server.
func (l *Logger) Flush() {
	if l.arenas[l.writeIndex].Empty() {
		return
	}
	l.advance()
}

// advance hands the current write arena to the consumer and moves to the
// next slot. Producer-only; precondition full.Peek() < N, which advance
// checks itself, raising LoggerFull when it does not hold.
func (l *Logger) advance() {
	if int(l.full.Peek()) >= len(l.arenas) {
		l.hook(newDiagnostic(ErrCodeLoggerFull, "advance called with no writable arena remaining"))
		return
	}
	if l.server == nil {
		l.hook(newDiagnostic(ErrCodeUnregisteredLogger, "advance reached before the logger was registered with a server"))
		return
	}

	l.writeIndex = (l.writeIndex + 1) % len(l.arenas)
	l.full.Put()
	l.server.notifyDumpAvailable()
}

// drainOne is the consumer-only half of the handshake: if any arena is
// full, drain it, advance the read cursor, and release the slot back to
// the producer. Returns whether any work was done.
func (l *Logger) drainOne() bool {
	if l.full.Peek() == 0 {
		return false
	}

	// Acquire-side fence: nothing below may be reordered before this load
	// observed puts > gets, i.e. before the producer's release-store in
	// advance() became visible.
	arena := l.arenas[l.readIndex]
	arena.Drain()
	l.readIndex = (l.readIndex + 1) % len(l.arenas)

	// Release-side fence: the reset above must be visible to the producer
	// before it ever sees this slot's count decrease, so it never reuses a
	// slot it could mistake for still holding unread data.
	if !l.full.Take() {
		l.hook(newDiagnostic(ErrCodeSemaphoreUnderflow, "mini-semaphore take with nothing outstanding"))
		return false
	}
	return true
}

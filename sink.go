// sink.go: ready-made host print callables
//
// The core stays sink-agnostic: a print callable only needs to accept the
// concrete argument types passed at its Record call site. These are
// convenience constructors a host can hand to Record1/Record2 instead of
// writing its own.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package nanolog

import (
	"fmt"
	"io"
	"sync"

	"github.com/agilira/nanolog/internal/outbuf"
)

// Text1 builds a single-argument print callable that writes
// "label: value\n" to w, using a pooled buffer so the formatting itself
// stays allocation-light on the consumer side.
func Text1[A any](w io.Writer, label string, mu *sync.Mutex) func(A) {
	return func(a A) {
		buf := outbuf.Get()
		fmt.Fprintf(buf, "%s: %v\n", label, a)
		writeLocked(w, mu, buf)
		outbuf.Put(buf)
	}
}

// Text2 builds a two-argument print callable writing
// "label: value1 value2\n" to w.
func Text2[A, B any](w io.Writer, label string, mu *sync.Mutex) func(A, B) {
	return func(a A, b B) {
		buf := outbuf.Get()
		fmt.Fprintf(buf, "%s: %v %v\n", label, a, b)
		writeLocked(w, mu, buf)
		outbuf.Put(buf)
	}
}

// JSON1 builds a single-argument print callable writing a minimal JSON
// object {"label":"...","value":"..."} to w; the value is always written
// as a quoted string of its fmt.Sprint form.
func JSON1[A any](w io.Writer, label string, mu *sync.Mutex) func(A) {
	return func(a A) {
		buf := outbuf.Get()
		fmt.Fprintf(buf, "{\"label\":%q,\"value\":%q}\n", label, fmt.Sprint(a))
		writeLocked(w, mu, buf)
		outbuf.Put(buf)
	}
}

// JSON2 builds a two-argument print callable writing
// {"label":"...","a":"...","b":"..."} to w, each value quoted as in JSON1.
func JSON2[A, B any](w io.Writer, label string, mu *sync.Mutex) func(A, B) {
	return func(a A, b B) {
		buf := outbuf.Get()
		fmt.Fprintf(buf, "{\"label\":%q,\"a\":%q,\"b\":%q}\n", label, fmt.Sprint(a), fmt.Sprint(b))
		writeLocked(w, mu, buf)
		outbuf.Put(buf)
	}
}

// writeLocked serializes writes to w when mu is non-nil. Since every print
// callable runs on the single consumer goroutine, mu is normally
// unnecessary; it exists only so a host can safely share w with something
// outside nanolog's own consumer loop.
func writeLocked(w io.Writer, mu *sync.Mutex, buf interface{ Bytes() []byte }) {
	if mu != nil {
		mu.Lock()
		defer mu.Unlock()
	}
	_, _ = w.Write(buf.Bytes())
}

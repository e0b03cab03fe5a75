// record.go: Format Dispatch Glue — compile-time argument-pack capture
//
// Go has no variadic generics, so argument-pack-parametrized capture is
// realized here as a bounded family of generic constructors
// (Record1..Record4), one per arity. Each instantiation is monomorphized
// by the compiler per distinct type tuple: no interface boxing, no
// reflection. The captured values are copied into the arena without
// allocating; each call does heap-allocate one small reprint closure,
// which the arena's header table holds until drain. A host needing more
// than four captured values packs them into a struct and uses Record1
// with that struct.
//
// Captured types must be trivially copyable scalars (or fixed-size arrays
// of them) with no embedded pointers, strings, slices, maps, or interface
// values. The arena's backing storage is a raw []byte that the garbage
// collector does not scan for pointers; a captured string or slice header
// copied into it would have its length and pointer fields preserved, but
// nothing would keep the data those fields point to alive. Record1..Record4
// do not enforce this at compile time — Go has no "pointer-free" type
// constraint — so it is a caller obligation: captured values should be
// scalar integers, floats, or fixed-size byte arrays. String *literals* are a
// narrow, incidental exception: the compiler places them in the binary's
// read-only data section, never on the garbage-collected heap, so a string
// header copied from a literal stays valid for the life of the process
// regardless of whether the arena holding the copy is scanned. Dynamically
// built strings, slices, and any other heap-allocated reference type remain
// unsafe to capture this way.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package nanolog

import "unsafe"

// payloadWrite returns a func that copies value v into dst (which must be
// exactly unsafe.Sizeof(v) bytes) without invoking any formatting.
func payloadWrite[A any](v A) func(dst []byte) {
	return func(dst []byte) {
		if len(dst) == 0 {
			return
		}
		*(*A)(unsafe.Pointer(unsafe.SliceData(dst))) = v
	}
}

func payloadRead[A any](src []byte) A {
	var zero A
	if len(src) == 0 {
		return zero
	}
	return *(*A)(unsafe.Pointer(unsafe.SliceData(src)))
}

// Record1 captures a single value and arranges for print to be invoked
// with it, unmodified, at drain time. It is the producer-facing fast path:
// no formatting happens here, only a raw memory copy into the logger's
// current arena plus the allocation of the reprint closure.
func Record1[A any](l *Logger, print func(A), a A) {
	l.push(int(unsafe.Sizeof(a)), payloadWrite(a), func(payload []byte) {
		print(payloadRead[A](payload))
	})
}

// Record2 captures two values. See Record1.
func Record2[A, B any](l *Logger, print func(A, B), a A, b B) {
	type tuple struct {
		a A
		b B
	}
	t := tuple{a, b}
	l.push(int(unsafe.Sizeof(t)), payloadWrite(t), func(payload []byte) {
		v := payloadRead[tuple](payload)
		print(v.a, v.b)
	})
}

// Record3 captures three values. See Record1.
func Record3[A, B, C any](l *Logger, print func(A, B, C), a A, b B, c C) {
	type tuple struct {
		a A
		b B
		c C
	}
	t := tuple{a, b, c}
	l.push(int(unsafe.Sizeof(t)), payloadWrite(t), func(payload []byte) {
		v := payloadRead[tuple](payload)
		print(v.a, v.b, v.c)
	})
}

// Record4 captures four values. See Record1.
func Record4[A, B, C, D any](l *Logger, print func(A, B, C, D), a A, b B, c C, d D) {
	type tuple struct {
		a A
		b B
		c C
		d D
	}
	t := tuple{a, b, c, d}
	l.push(int(unsafe.Sizeof(t)), payloadWrite(t), func(payload []byte) {
		v := payloadRead[tuple](payload)
		print(v.a, v.b, v.c, v.d)
	})
}

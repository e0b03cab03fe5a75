// arena_test.go: Tests for the capture arena
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package capture

import "testing"

func TestArena_TryPush_FitsAndDrains(t *testing.T) {
	a := NewArena(64, 8)

	var got []int
	write := func(dst []byte) { dst[0] = 7 }
	reprint := func(payload []byte) { got = append(got, int(payload[0])) }

	if !a.TryPush(1, write, reprint) {
		t.Fatalf("expected push to succeed")
	}
	if a.Empty() {
		t.Fatalf("arena should not be empty after a push")
	}

	a.Drain()

	if len(got) != 1 || got[0] != 7 {
		t.Fatalf("expected one reprint with value 7, got %v", got)
	}
	if !a.Empty() {
		t.Fatalf("arena should be empty after drain")
	}
}

func TestArena_TryPush_ExactBoundary(t *testing.T) {
	// B=64, record aligned size 32: two fit exactly, a third must fail.
	a := NewArena(64, 8)
	write := func(dst []byte) {}
	reprint := func(payload []byte) {}

	if !a.TryPush(32, write, reprint) {
		t.Fatalf("first 32-byte record should fit")
	}
	if !a.TryPush(32, write, reprint) {
		t.Fatalf("second 32-byte record should exactly fill the arena")
	}
	if a.TryPush(1, write, reprint) {
		t.Fatalf("arena is full; a third push must fail")
	}
}

func TestArena_TryPush_OversizeNeverFits(t *testing.T) {
	a := NewArena(64, 8)
	write := func(dst []byte) {}
	reprint := func(payload []byte) {}

	if a.TryPush(128, write, reprint) {
		t.Fatalf("a 128-byte record cannot fit in a 64-byte arena")
	}
	if !a.Empty() {
		t.Fatalf("a failed push must not mutate arena state")
	}
}

func TestArena_Drain_PreservesOrder(t *testing.T) {
	a := NewArena(256, 32)
	var order []int

	for i := 0; i < 10; i++ {
		i := i
		write := func(dst []byte) { dst[0] = byte(i) }
		reprint := func(payload []byte) { order = append(order, int(payload[0])) }
		if !a.TryPush(1, write, reprint) {
			t.Fatalf("push %d should have succeeded", i)
		}
	}

	a.Drain()

	for i, v := range order {
		if v != i {
			t.Fatalf("expected order[%d] == %d, got %d", i, i, v)
		}
	}
}

func TestArena_TryPush_HeaderTableFull(t *testing.T) {
	a := NewArena(4096, 2)
	write := func(dst []byte) {}
	reprint := func(payload []byte) {}

	if !a.TryPush(1, write, reprint) {
		t.Fatalf("push 1 should succeed")
	}
	if !a.TryPush(1, write, reprint) {
		t.Fatalf("push 2 should succeed")
	}
	if a.TryPush(1, write, reprint) {
		t.Fatalf("push 3 should fail: header table capacity is 2")
	}
}

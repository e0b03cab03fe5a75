// record_test.go: single-producer ordered delivery
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package nanolog

import (
	"context"
	"sync"
	"testing"
)

func TestSingleProducerOrderedDelivery(t *testing.T) {
	srv, err := NewServer(WithMaxLoggers(4))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	lg, err := NewLogger(WithArenas(8), WithArenaBytes(16384))
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	srv.Register(lg)

	done := make(chan struct{})
	go func() {
		srv.Run(context.Background())
		close(done)
	}()

	var mu sync.Mutex
	var got []int

	for i := 0; i < 1024; i++ {
		Record1(lg, func(v int) {
			mu.Lock()
			got = append(got, v)
			mu.Unlock()
		}, i)
	}
	lg.Flush()
	srv.Shutdown()
	<-done

	if len(got) != 1024 {
		t.Fatalf("expected 1024 invocations, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("expected got[%d] == %d, got %d", i, i, v)
		}
	}
}

func TestRecord2_PreservesArgumentOrder(t *testing.T) {
	srv, _ := NewServer()
	lg, _ := NewLogger()
	srv.Register(lg)

	done := make(chan struct{})
	go func() {
		srv.Run(context.Background())
		close(done)
	}()

	var mu sync.Mutex
	var gotA []string
	var gotB []int

	for i := 0; i < 100; i++ {
		Record2(lg, func(a string, b int) {
			mu.Lock()
			gotA = append(gotA, a)
			gotB = append(gotB, b)
			mu.Unlock()
		}, "tag", i)
	}
	lg.Flush()
	srv.Shutdown()
	<-done

	if len(gotB) != 100 {
		t.Fatalf("expected 100 invocations, got %d", len(gotB))
	}
	for i, v := range gotB {
		if v != i || gotA[i] != "tag" {
			t.Fatalf("index %d: expected (tag, %d), got (%s, %d)", i, i, gotA[i], v)
		}
	}
}

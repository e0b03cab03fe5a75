// idle_test.go: Wait/Notify contract conformance across strategies
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package idle

import (
	"sync"
	"testing"
	"time"
)

func strategies() []Strategy {
	return []Strategy{
		NewYield(),
		NewSleep(time.Millisecond),
		NewChannel(),
		NewProgressive(),
	}
}

func TestStrategies_NotifyThenWaitDoesNotBlockForever(t *testing.T) {
	for _, s := range strategies() {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			s.Notify()

			done := make(chan struct{})
			go func() {
				s.Wait()
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatalf("%s: Wait did not return after a prior Notify", s.String())
			}
		})
	}
}

func TestChannel_NotifyWakesExactlyOneWaiter(t *testing.T) {
	c := NewChannel()
	var wg sync.WaitGroup
	woke := make(chan struct{}, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Wait()
			woke <- struct{}{}
		}()
	}

	time.Sleep(10 * time.Millisecond) // let both goroutines block in Wait
	c.Notify()

	time.Sleep(50 * time.Millisecond)
	select {
	case <-woke:
	default:
		t.Fatalf("expected at least one waiter to wake")
	}
	select {
	case <-woke:
		t.Fatalf("expected at most one waiter to wake from a single notify")
	default:
	}

	c.Notify() // release the second waiter so the goroutine can exit
	wg.Wait()
}

// config_test.go: Tests for LoggerConfig/ServerConfig validation
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package nanolog

import "testing"

func TestNewLogger_RejectsArenasOutOfRange(t *testing.T) {
	if _, err := NewLogger(WithArenas(0)); err == nil {
		t.Fatalf("expected an error for N=0")
	}
	if _, err := NewLogger(WithArenas(256)); err == nil {
		t.Fatalf("expected an error for N=256 (must stay below 256 for the byte mini-semaphore)")
	}
	if _, err := NewLogger(WithArenas(255)); err != nil {
		t.Fatalf("N=255 should be accepted, got %v", err)
	}
}

func TestNewLogger_RejectsNonPositiveArenaBytes(t *testing.T) {
	if _, err := NewLogger(WithArenaBytes(0)); err == nil {
		t.Fatalf("expected an error for B=0")
	}
}

func TestNewServer_RejectsNonPositiveMaxLoggers(t *testing.T) {
	if _, err := NewServer(WithMaxLoggers(0)); err == nil {
		t.Fatalf("expected an error for maxLoggers=0")
	}
}

func TestNewLogger_DefaultsAreUsable(t *testing.T) {
	lg, err := NewLogger()
	if err != nil {
		t.Fatalf("NewLogger with defaults: %v", err)
	}
	if len(lg.arenas) != 8 {
		t.Fatalf("expected default N=8, got %d", len(lg.arenas))
	}
}

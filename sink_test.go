// sink_test.go: Tests for the bundled Text/JSON print callables
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package nanolog

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestTextSink_DoesNotReorderArguments(t *testing.T) {
	srv, _ := NewServer()
	lg, _ := NewLogger()
	srv.Register(lg)

	var buf bytes.Buffer
	print := Text2[string, int](&buf, "req", nil)

	done := make(chan struct{})
	go func() {
		srv.Run(context.Background())
		close(done)
	}()

	Record2(lg, print, "alice", 1)
	Record2(lg, print, "bob", 2)
	lg.Flush()
	srv.Shutdown()
	<-done

	out := buf.String()
	if !strings.Contains(out, "alice") || !strings.Contains(out, "bob") {
		t.Fatalf("expected both names in output, got %q", out)
	}
	if strings.Index(out, "alice") > strings.Index(out, "bob") {
		t.Fatalf("expected alice before bob in drain order, got %q", out)
	}
	if !strings.Contains(out, "req: alice 1\n") || !strings.Contains(out, "req: bob 2\n") {
		t.Fatalf("expected each record's arguments in call order, got %q", out)
	}
}

func TestJSONSink_EmitsLabelAndValue(t *testing.T) {
	var buf bytes.Buffer
	print := JSON1[int](&buf, "count", nil)
	print(42)

	out := buf.String()
	if !strings.Contains(out, `"label":"count"`) {
		t.Fatalf("expected label field, got %q", out)
	}
	if !strings.Contains(out, `"value":"42"`) {
		t.Fatalf("expected value field, got %q", out)
	}
}

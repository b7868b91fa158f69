package net_test

import (
	"context"
	"testing"

	pnet "lunacycle/internal/platform/net"
)

func TestWithRequestID_And_RequestID(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequestID(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}

	same := pnet.WithRequestID(base, "")
	if same != base {
		t.Fatalf("expected ctx to be unchanged for empty id")
	}
	if got := pnet.RequestID(same); got != "" {
		t.Fatalf("RequestID got %q want empty", got)
	}
}

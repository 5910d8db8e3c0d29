package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestFromContextFallsBack(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext should fall back to the default logger")
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Format: "json", Output: &buf})

	ctx := WithLogger(context.Background(), l)
	FromContext(ctx).Info("from context")

	if buf.Len() == 0 {
		t.Error("context logger not used")
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext = %q, want req-123", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext on empty ctx = %q, want empty", got)
	}
}

func TestLEnrichesRequestID(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Format: "json", Output: &buf})

	ctx := WithLogger(context.Background(), l)
	ctx = WithRequestID(ctx, "req-xyz")

	L(ctx).Info("enriched")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["request_id"] != "req-xyz" {
		t.Errorf("request_id = %v, want req-xyz", entry["request_id"])
	}
}

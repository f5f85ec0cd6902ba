package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerStampsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Component: ComponentWorker,
		Handler:   slog.NewTextHandler(&buf, nil),
	})

	logger.Info("processing", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "component=worker") {
		t.Fatalf("expected component field in output: %s", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Fatalf("expected caller args in output: %s", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Component: ComponentApp,
		Handler:   slog.NewTextHandler(&buf, nil),
	})

	scoped := logger.WithComponent(ComponentExport)
	if scoped.Component() != ComponentExport {
		t.Fatalf("expected component %q, got %q", ComponentExport, scoped.Component())
	}

	scoped.Error("export failed")
	if !strings.Contains(buf.String(), "component=export") {
		t.Fatalf("expected scoped component in output: %s", buf.String())
	}
}

func TestLogFieldsBuilder(t *testing.T) {
	f := NewFields().
		WithRequestID("req_1").
		WithHTTPRequest("GET", "/api/summary", "type=expense", "curl").
		WithHTTPResponse(200, 12, true)

	pairs := f.ToSlice()
	if len(pairs) != len(f)*2 {
		t.Fatalf("expected %d slice entries, got %d", len(f)*2, len(pairs))
	}

	got := make(map[string]any, len(f))
	for i := 0; i < len(pairs); i += 2 {
		got[pairs[i].(string)] = pairs[i+1]
	}
	if got[FieldRequestID] != "req_1" || got[FieldPath] != "/api/summary" {
		t.Fatalf("unexpected request fields: %v", got)
	}
	if got[FieldStatusCode] != 200 || got[FieldSuccess] != true {
		t.Fatalf("unexpected response fields: %v", got)
	}
}

func TestWithErrorSkipsNil(t *testing.T) {
	f := NewFields().WithError(nil)
	if _, ok := f[FieldError]; ok {
		t.Fatal("nil error should not add a field")
	}
}

package transport

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// brokenTransport fails or panics on every write.
type brokenTransport struct {
	memoryTransport
	panic bool
}

func (b *brokenTransport) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if b.panic {
		panic("broken transport")
	}
	return 0, errors.New("disk full")
}

func (b *brokenTransport) Name() string { return "file#broken" }
func (b *brokenTransport) Kind() string { return "File" }

func captureDiag(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetDiagnosticSink(zerolog.New(&buf))
	t.Cleanup(func() {
		SetDiagnosticSink(zerolog.New(nil))
	})
	return &buf
}

func TestObserveSwallowsWriteErrors(t *testing.T) {
	buf := captureDiag(t)

	tr := Observe(&brokenTransport{}, "Server")
	n, err := tr.WriteLevel(zerolog.ErrorLevel, []byte(`{"message":"x"}`))
	if err != nil {
		t.Fatalf("write error escaped the observer: %v", err)
	}
	if n != len(`{"message":"x"}`) {
		t.Errorf("observer must report a full write, got %d", n)
	}

	out := buf.String()
	for _, want := range []string{"disk full", "file#broken", "Server", "instance_id"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostic output missing %q: %s", want, out)
		}
	}
}

func TestObserveRecoversPanics(t *testing.T) {
	buf := captureDiag(t)

	tr := Observe(&brokenTransport{panic: true}, "Server")
	n, err := tr.WriteLevel(zerolog.ErrorLevel, []byte(`{}`))
	if err != nil || n != 2 {
		t.Fatalf("panic escaped the observer: n=%d err=%v", n, err)
	}
	if !strings.Contains(buf.String(), "broken transport") {
		t.Errorf("diagnostic output missing panic value: %s", buf.String())
	}
}

func TestObserveWriteDelegates(t *testing.T) {
	mem := &memoryTransport{}
	tr := Observe(mem, "Server")
	if _, err := tr.Write([]byte(`{}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if len(mem.events) != 1 {
		t.Errorf("expected one delegated event, got %d", len(mem.events))
	}
}

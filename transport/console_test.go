package transport

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/mwittig/logger-winston/config"
)

func TestNewConsole(t *testing.T) {
	tr, err := NewConsole(config.TransportConfig{
		"level": "debug",
		"label": "Server",
		"name":  "console",
	})
	if err != nil {
		t.Fatalf("NewConsole failed: %v", err)
	}
	if tr.Name() != "console" {
		t.Errorf("expected name console, got %q", tr.Name())
	}
	if tr.Kind() != "Console" {
		t.Errorf("expected kind Console, got %q", tr.Kind())
	}
	if tr.Label() != "Server" {
		t.Errorf("expected label Server, got %q", tr.Label())
	}
	if tr.Level() != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %v", tr.Level())
	}
}

func TestNewConsoleNoOptions(t *testing.T) {
	tr, err := NewConsole(config.TransportConfig{})
	if err != nil {
		t.Fatalf("NewConsole failed: %v", err)
	}
	if tr.Level() != zerolog.TraceLevel {
		t.Errorf("expected framework default level, got %v", tr.Level())
	}
}

func TestNewConsoleRejectsBadOutput(t *testing.T) {
	if _, err := NewConsole(config.TransportConfig{"output": "socket"}); err == nil {
		t.Error("expected an error for an unsupported output")
	}
}

func TestLabelTag(t *testing.T) {
	cases := map[string]string{
		"Server":  "SER",
		"db":      "",
		"":        "",
		"default": "",
	}
	for label, want := range cases {
		if got := labelTag(label); got != want {
			t.Errorf("labelTag(%q) = %q, want %q", label, got, want)
		}
	}
}

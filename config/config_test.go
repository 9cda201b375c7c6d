package config

import (
	"reflect"
	"testing"
)

func TestContainerInheritDefault(t *testing.T) {
	c := ContainerConfig{InheritDefaultKey: true, "console": map[string]any{}}
	if !c.InheritDefault() {
		t.Error("expected inheritDefault to be reported")
	}

	c = ContainerConfig{InheritDefaultKey: false, "console": map[string]any{}}
	if c.InheritDefault() {
		t.Error("inheritDefault: false must not be reported")
	}

	c = ContainerConfig{"console": map[string]any{}}
	if c.InheritDefault() {
		t.Error("absent flag must not be reported")
	}

	// A non-bool flag value is junk, not a request.
	c = ContainerConfig{InheritDefaultKey: "yes"}
	if c.InheritDefault() {
		t.Error("non-bool flag must not be reported")
	}
}

func TestContainerTransportKeys(t *testing.T) {
	c := ContainerConfig{
		"file#debug":      map[string]any{},
		InheritDefaultKey: true,
		"console":         map[string]any{},
	}
	got := c.TransportKeys()
	want := []string{"console", "file#debug"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected keys %v, got %v", want, got)
	}
}

func TestContainerTransportNonMapping(t *testing.T) {
	c := ContainerConfig{"console": "junk"}
	opts := c.Transport("console")
	if len(opts) != 0 {
		t.Errorf("expected empty options for non-mapping value, got %v", opts)
	}
}

func TestMergeContainersOverrideWins(t *testing.T) {
	base := ContainerConfig{
		"console": map[string]any{"level": "info", "no_color": true},
		"file":    map[string]any{"filename": "app.log"},
	}
	src := ContainerConfig{
		"console": map[string]any{"level": "debug"},
	}

	merged := MergeContainers(base, src)

	console := merged.Transport("console")
	if console["level"] != "debug" {
		t.Errorf("expected override level debug, got %v", console["level"])
	}
	if console["no_color"] != true {
		t.Errorf("expected base no_color to survive, got %v", console["no_color"])
	}
	if merged.Transport("file")["filename"] != "app.log" {
		t.Error("expected base-only transport to survive the merge")
	}

	// Inputs must stay untouched.
	if base.Transport("console")["level"] != "info" {
		t.Error("merge modified the base container")
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := ContainerConfig{"console": map[string]any{"level": "info"}}
	clone := c.Clone()
	clone.Transport("console")["level"] = "debug"
	if c.Transport("console")["level"] != "info" {
		t.Error("clone shares nested state with the original")
	}
}

func TestDefaultConfig(t *testing.T) {
	tree := DefaultConfig()
	c, ok := tree[DefaultTopic]
	if !ok {
		t.Fatal("expected a default container")
	}
	keys := c.TransportKeys()
	if len(keys) != 1 || keys[0] != "console" {
		t.Errorf("expected a single console transport, got %v", keys)
	}
	if len(c.Transport("console")) != 0 {
		t.Error("expected the fallback console transport to carry no options")
	}
}

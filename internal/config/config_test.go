package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("NOTEGATE_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[inbox]
path = "/notes/inbox"

[tools]
sed = "gsed"

[keys.spotlight]
title = ["kMDItemTitle"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NOTEGATE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Inbox.Path != "/notes/inbox" {
		t.Errorf("inbox = %q", cfg.Inbox.Path)
	}
	if cfg.Tools.Sed != "gsed" {
		t.Errorf("sed = %q", cfg.Tools.Sed)
	}
	// mdls was not set and keeps its default.
	if cfg.Tools.MDLS != "mdls" {
		t.Errorf("mdls = %q", cfg.Tools.MDLS)
	}
	// A present key table replaces the default table wholesale.
	want := map[string][]string{"title": {"kMDItemTitle"}}
	if diff := cmp.Diff(want, cfg.Keys.Spotlight); diff != "" {
		t.Errorf("spotlight keys mismatch (-want +got):\n%s", diff)
	}
	// The file table was absent and keeps its default.
	if diff := cmp.Diff(Default().Keys.File, cfg.Keys.File); diff != "" {
		t.Errorf("file keys mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[inbox\npath="), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NOTEGATE_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Error("expected a parse error")
	}
}

func TestPathOverrideOrder(t *testing.T) {
	t.Setenv("NOTEGATE_CONFIG", "/from/env.toml")

	if got := Path(); got != "/from/env.toml" {
		t.Errorf("Path = %q, want the env value", got)
	}

	Override = "/from/flag.toml"
	defer func() { Override = "" }()
	if got := Path(); got != "/from/flag.toml" {
		t.Errorf("Path = %q, want the flag value", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/Notes/inbox"); got != filepath.Join(home, "Notes", "inbox") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/absolute/path"); got != "/absolute/path" {
		t.Errorf("ExpandHome must leave absolute paths alone, got %q", got)
	}
	if got := ExpandHome("~"); !strings.HasPrefix(got, string(filepath.Separator)) && got != home {
		t.Errorf("ExpandHome(~) = %q", got)
	}
}

package main

import (
	"strings"
	"testing"
)

func TestBuildOptionsPositional(t *testing.T) {
	cmd := newRootCmd()
	opts, err := buildOptions(cmd, []string{"data.bin", "4", "3"}, flags{})
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	if opts.File != "data.bin" {
		t.Errorf("File = %q, want data.bin", opts.File)
	}
	if got := opts.Config.Overrides["viewer.bytesPerGroup"]; got != uint16(4) {
		t.Errorf("bytesPerGroup override = %v (%T), want uint16 4", got, got)
	}
	if got := opts.Config.Overrides["viewer.groupsPerRow"]; got != uint16(3) {
		t.Errorf("groupsPerRow override = %v (%T), want uint16 3", got, got)
	}
	if !opts.Watch {
		t.Error("watching should be on by default")
	}
}

func TestBuildOptionsFileOnly(t *testing.T) {
	opts, err := buildOptions(newRootCmd(), []string{"data.bin"}, flags{})
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	if len(opts.Config.Overrides) != 0 {
		t.Errorf("expected no overrides, got %v", opts.Config.Overrides)
	}
}

func TestBuildOptionsBadNumber(t *testing.T) {
	tests := [][]string{
		{"data.bin", "eight"},
		{"data.bin", "8", "-1"},
		{"data.bin", "70000"},
	}
	for _, args := range tests {
		if _, err := buildOptions(newRootCmd(), args, flags{}); err == nil {
			t.Errorf("buildOptions(%v) should fail", args)
		}
	}
}

func TestBuildOptionsChangedFlagsOnly(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"-r", "30", "--switch-mode", "right-edge", "-c", "/tmp/h.toml", "--no-watch"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	f := flags{
		rows:       30,
		switchMode: "right-edge",
		configPath: "/tmp/h.toml",
		noWatch:    true,
		backend:    "tcell",
		logLevel:   "info",
	}

	opts, err := buildOptions(cmd, []string{"data.bin"}, f)
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	if got := opts.Config.Overrides["viewer.rows"]; got != uint16(30) {
		t.Errorf("rows override = %v, want 30", got)
	}
	if got := opts.Config.Overrides["viewer.switchMode"]; got != "right-edge" {
		t.Errorf("switchMode override = %v", got)
	}
	if _, ok := opts.Config.Overrides["ui.backend"]; ok {
		t.Error("unchanged --backend must not override the config")
	}
	if _, ok := opts.Config.Overrides["logging.level"]; ok {
		t.Error("unchanged --log-level must not override the config")
	}
	if opts.Config.Path != "/tmp/h.toml" {
		t.Errorf("config path = %q", opts.Config.Path)
	}
	if opts.Watch {
		t.Error("--no-watch should disable watching")
	}
}

func TestRunArgCount(t *testing.T) {
	if code := run([]string{}); code != 1 {
		t.Errorf("run with no file = %d, want 1", code)
	}
	if code := run([]string{"a", "1", "2", "3"}); code != 1 {
		t.Errorf("run with too many args = %d, want 1", code)
	}
}

func TestRunMissingFile(t *testing.T) {
	code := run([]string{t.TempDir() + "/missing.bin"})
	if code != 1 {
		t.Errorf("run with missing file = %d, want 1", code)
	}
}

func TestUsageMentionsArguments(t *testing.T) {
	if !strings.Contains(newRootCmd().Use, "[bytes_per_group] [groups_per_row]") {
		t.Error("usage should name the optional layout arguments")
	}
}

package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jn.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "defaults",
			args: nil,
			expected: &Config{
				MaxDepth: DefaultMaxDepth,
				Color:    ColorAuto,
				Indent:   DefaultIndent,
			},
		},
		{
			name: "flags and queries",
			args: []string{"-strict", "-max-depth", "10", "-name", "-color", "never", "-in", "doc.json", "a.b", "[0]"},
			expected: &Config{
				Input:      "doc.json",
				Strict:     true,
				MaxDepth:   10,
				PrintNames: true,
				Color:      ColorNever,
				Indent:     DefaultIndent,
				Queries:    []string{"a.b", "[0]"},
			},
		},
		{
			name: "dump tree",
			args: []string{"-dump", "tree", "-indent", "4"},
			expected: &Config{
				MaxDepth: DefaultMaxDepth,
				Dump:     DumpTree,
				Color:    ColorAuto,
				Indent:   4,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfigFile(t *testing.T) {
	path := writeFile(t, `
strict: true
max_depth: 64
names: true
color: always
queries:
  - Paul.Age
  - "[1]"
`)
	cfg, err := Parse([]string{"-config", path, "-color", "never", "Anna"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	expected := &Config{
		Strict:     true,
		MaxDepth:   64,
		PrintNames: true,
		Color:      ColorNever,
		Indent:     DefaultIndent,
		Queries:    []string{"Paul.Age", "[1]", "Anna"},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigFileFlagWins(t *testing.T) {
	path := writeFile(t, "strict: true\nmax_depth: 64\n")
	cfg, err := Parse([]string{"-strict=false", "-max-depth", "0", "-config", path}, io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Strict {
		t.Error("expected -strict=false to override the config file")
	}
	if cfg.MaxDepth != 0 {
		t.Errorf("expected max depth 0, got %d", cfg.MaxDepth)
	}
}

func TestParseConfigFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Parse([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, io.Discard)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "colour: never\n")
		_, err := Parse([]string{"-config", path}, io.Discard)
		if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
			t.Errorf("expected a parse error, got %v", err)
		}
	})
	t.Run("invalid value", func(t *testing.T) {
		path := writeFile(t, "dump: everything\n")
		_, err := Parse([]string{"-config", path}, io.Discard)
		if !errors.Is(err, ErrInvalidDump) {
			t.Errorf("expected ErrInvalidDump, got %v", err)
		}
	})
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		args []string
		err  error
	}{
		{[]string{"-color", "sometimes"}, ErrInvalidColor},
		{[]string{"-dump", "all"}, ErrInvalidDump},
		{[]string{"-max-depth", "-1"}, ErrInvalidMaxDepth},
		{[]string{"-indent", "-2"}, ErrInvalidIndent},
		{[]string{"-dump", "tokens", "a.b"}, ErrDumpWithQueries},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := Parse(tt.args, io.Discard)
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-h"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(out.String(), "USAGE:") || !strings.Contains(out.String(), "-max-depth") {
		t.Errorf("usage output incomplete:\n%s", out.String())
	}
}

func TestUseColor(t *testing.T) {
	tests := []struct {
		color    string
		terminal bool
		expected bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	}
	for _, tt := range tests {
		cfg := &Config{Color: tt.color}
		if got := cfg.UseColor(tt.terminal); got != tt.expected {
			t.Errorf("UseColor(%v) with %q = %v, want %v", tt.terminal, tt.color, got, tt.expected)
		}
	}
}

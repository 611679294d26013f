package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/puzzles/internal/config"
	"github.com/eugenenazirov/puzzles/internal/ranges"
	"github.com/eugenenazirov/puzzles/internal/storage"
	"github.com/eugenenazirov/puzzles/internal/strutil"
)

func runCLI(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()

	c := newCLI()
	command, err := c.app.Parse(args)
	if err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	var out bytes.Buffer
	err = c.run(command, cfg, zaptest.NewLogger(t), &out)
	return out.String(), err
}

func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Day01.txt"), []byte("1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return config.Config{InputDir: dir, LogLevel: "debug", VerifySamples: true}
}

func TestSolveCommand(t *testing.T) {
	out, err := runCLI(t, testConfig(t), "solve", "1")
	if err != nil {
		t.Fatalf("solve returned error: %v", err)
	}
	if out != "24000\n45000\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSolveCommandWithInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.txt")
	if err := os.WriteFile(path, []byte("A Y\nB X\nC Z\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := runCLI(t, testConfig(t), "solve", "2", "--input", path, "--skip-check")
	if err != nil {
		t.Fatalf("solve returned error: %v", err)
	}
	if out != "15\n12\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSolveCommandMissingInput(t *testing.T) {
	if _, err := runCLI(t, testConfig(t), "solve", "2"); !errors.Is(err, storage.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	for _, args := range [][]string{{"check"}, {"check", "2"}} {
		out, err := runCLI(t, testConfig(t), args...)
		if err != nil {
			t.Fatalf("%v returned error: %v", args, err)
		}
		if out != "ok\n" {
			t.Fatalf("unexpected output %q", out)
		}
	}
}

func TestListCommand(t *testing.T) {
	out, err := runCLI(t, testConfig(t), "list")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if out != " 1  Calorie Counting\n 2  Rock Paper Scissors\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestHashCommand(t *testing.T) {
	out, err := runCLI(t, testConfig(t), "hash", "abc")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if out != "900150983cd24fb0d6963f7d28e17f72\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestOverlapCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "Nested", args: []string{"overlap", "2-8", "3-7"}, want: "contains all: true\ncontains any: true\n"},
		{name: "Partial", args: []string{"overlap", "5-7", "7-9"}, want: "contains all: false\ncontains any: true\n"},
		{name: "Disjoint", args: []string{"overlap", "2-4", "6-8"}, want: "contains all: false\ncontains any: false\n"},
		{name: "OuterInsideInner", args: []string{"overlap", "3-7", "2-8"}, want: "contains all: false\ncontains any: false\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runCLI(t, testConfig(t), tc.args...)
			if err != nil {
				t.Fatalf("overlap returned error: %v", err)
			}
			if out != tc.want {
				t.Fatalf("unexpected output %q", out)
			}
		})
	}

	if _, err := runCLI(t, testConfig(t), "overlap", "2-8", "seven"); !errors.Is(err, ranges.ErrParse) {
		t.Fatalf("expected ranges.ErrParse, got %v", err)
	}
}

func TestCommonCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "Halves", args: []string{"common", "vJrwpWtwJgWrhcsFMMfFFhFp"}, want: "p\n"},
		{name: "Group", args: []string{"common", "vJrwpWtwJgWrhcsFMMfFFhFp", "jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL", "PmmdzqPrVvPwwTWBwg"}, want: "r\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runCLI(t, testConfig(t), tc.args...)
			if err != nil {
				t.Fatalf("common returned error: %v", err)
			}
			if out != tc.want {
				t.Fatalf("unexpected output %q", out)
			}
		})
	}

	if _, err := runCLI(t, testConfig(t), "common", "abcxyz"); !errors.Is(err, strutil.ErrNotFound) {
		t.Fatalf("expected strutil.ErrNotFound, got %v", err)
	}
}

func TestOverridesIgnoreUnsetNumericFlags(t *testing.T) {
	c := newCLI()
	if _, err := c.app.Parse([]string{"--port", "9000", "list"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	overrides := c.overrides()
	if overrides.RateLimitRPS != nil || overrides.RateLimitBurst != nil {
		t.Fatalf("expected unset rate limit flags to be ignored")
	}
	if overrides.Port == nil || *overrides.Port != "9000" {
		t.Fatalf("expected port override, got %v", overrides.Port)
	}
}

package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lightsout/internal/lightsout"
)

// newFlagCommand builds a command carrying the same flags as the real ones.
func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagConfig = ""

	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "")
	cmd.Flags().StringVar(&flagLogPath, "log", "", "")
	addBoardFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cmd := newFlagCommand(t)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}
	if cfg.Board.Size != 5 || cfg.Board.Strength != 5 || cfg.Runtime.TickRate != 60 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	cmd := newFlagCommand(t, "--size", "7", "--fps", "30", "--log", "/tmp/lo.log")

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 9\n  strength: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}
	if cfg.Board.Size != 7 {
		t.Errorf("size = %d, expected flag value 7", cfg.Board.Size)
	}
	if cfg.Board.Strength != 8 {
		t.Errorf("strength = %d, expected file value 8", cfg.Board.Strength)
	}
	if cfg.Runtime.TickRate != 30 || cfg.Log.Path != "/tmp/lo.log" {
		t.Errorf("runtime/log not overridden: %+v", cfg)
	}
}

func TestResolveConfigDifficulty(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"preset", []string{"--difficulty", "hard"}, 10},
		{"strength wins over preset", []string{"--difficulty", "easy", "--strength", "7"}, 7},
		{"fixed keeps strength", []string{"--difficulty", "fixed"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := resolveConfig(newFlagCommand(t, tt.args...))
			if err != nil {
				t.Fatalf("resolveConfig() error: %v", err)
			}
			if cfg.Board.Strength != tt.want {
				t.Errorf("strength = %d, expected %d", cfg.Board.Strength, tt.want)
			}
		})
	}
}

func TestResolveConfigRejectsBadFlags(t *testing.T) {
	tests := [][]string{
		{"--size", "0"},
		{"--strength", "-2"},
		{"--fps", "0"},
		{"--difficulty", "insane"},
	}
	for _, args := range tests {
		if _, err := resolveConfig(newFlagCommand(t, args...)); err == nil {
			t.Errorf("resolveConfig(%v) should fail", args)
		}
	}
}

func TestSeedValue(t *testing.T) {
	tests := []struct {
		in      int64
		want    uint32
		wantErr bool
	}{
		{0, 0, false},
		{2504604244, 2504604244, false},
		{math.MaxUint32, math.MaxUint32, false},
		{math.MaxUint32 + 1, 0, true},
		{-1, 0, true},
	}
	for _, tt := range tests {
		got, err := seedValue(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("seedValue(%d) = %d, %v", tt.in, got, err)
		}
	}
}

func TestWriteShow(t *testing.T) {
	s := lightsout.NewSession(5, 3, nil)
	s.ResetWithSeed(42)

	var buf bytes.Buffer
	writeShow(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"Seed:     42",
		"Board:    5x5",
		"Strength: 3",
		s.Board().String(),
		"Generation presses:",
		"one of 2^2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPressGrid(t *testing.T) {
	presses := []bool{true, false, false, false, true, false, false, false, true}
	if got, want := pressGrid(presses, 3), "x..\n.x.\n..x"; got != want {
		t.Errorf("pressGrid() = %q, expected %q", got, want)
	}
}

package main

import (
	"testing"

	"github.com/vovakirdan/tui-maze/internal/storage"
)

func TestReplayCommand(t *testing.T) {
	tests := []struct {
		preset   string
		expected string
	}{
		{"hard", "maze generate --seed 42 --preset hard"},
		{"custom", "maze generate --seed 42"},
		{"", "maze generate --seed 42"},
	}

	for _, tc := range tests {
		if got := replayCommand(storage.Run{Seed: 42, Preset: tc.preset}); got != tc.expected {
			t.Errorf("replayCommand(%q) = %q, expected %q", tc.preset, got, tc.expected)
		}
	}
}

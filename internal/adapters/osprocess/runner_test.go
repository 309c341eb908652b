package osprocess

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewOSProcessRunner(t *testing.T) {
	if runner := NewOSProcessRunner(); runner == nil {
		t.Fatal("NewOSProcessRunner() returned nil")
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare tilde",
			input: "~",
			want:  home,
		},
		{
			name:  "tilde with path",
			input: "~/bin/tool",
			want:  filepath.Join(home, "bin", "tool"),
		},
		{
			name:  "plain command name",
			input: "git",
			want:  "git",
		},
		{
			name:  "absolute path",
			input: "/usr/bin/env",
			want:  "/usr/bin/env",
		},
		{
			name:  "named user form passes through",
			input: "~root/bin/tool",
			want:  "~root/bin/tool",
		},
		{
			name:  "tilde in the middle passes through",
			input: "a~b",
			want:  "a~b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandTilde(tt.input); got != tt.want {
				t.Errorf("expandTilde(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

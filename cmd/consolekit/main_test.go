package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/layout"
	"github.com/vovakirdan/consolekit/internal/ui"
)

const fileLayout = `
name: form
parent:
  width: 10
  height: 4
windows:
  - x: 1
    y: 1
    width: 8
    height: 2
    mode: edit
    flags: [can_receive_focus]
    edit: {read: all, limit: 16}
`

func TestBuildTarget(t *testing.T) {
	file := filepath.Join(t.TempDir(), "form.yaml")
	if err := os.WriteFile(file, []byte(fileLayout), 0o644); err != nil {
		t.Fatal(err)
	}
	env := layout.Env{Backdrop: ui.BorrowedBackdrop(core.NewSurface(80, 40))}

	tests := []struct {
		name   string
		target string
		picker bool
		ok     bool
	}{
		{"program", "demo", false, true},
		{"picker", "charset", true, true},
		{"layout file", file, false, true},
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), false, false},
		{"unknown", "tetris", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pw, picker, err := buildTarget(tc.target, env)
			if (err == nil) != tc.ok {
				t.Fatalf("buildTarget(%q) error = %v", tc.target, err)
			}
			if err != nil {
				return
			}
			defer pw.Close()
			if picker != tc.picker {
				t.Errorf("picker = %v, expected %v", picker, tc.picker)
			}
		})
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"garbage":        "garbage",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, expected %q", addr, got, want)
		}
	}
}

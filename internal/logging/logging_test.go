package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"", false, true},
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(&buf, tt.level)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			l.Debug("dbg-line")
			l.Info("info-line")
			out := buf.String()
			if got := strings.Contains(out, "dbg-line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, expected %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info-line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, expected %v", got, tt.wantInfo)
			}
			if tt.wantInfo && !strings.Contains(out, Prefix) {
				t.Errorf("output %q missing prefix %q", out, Prefix)
			}
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "martians.log")
	l, closeFn, err := Open(path, "info")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	l.Info("hello", "k", 1)
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected it to contain hello", data)
	}
}

func TestOpenDiscard(t *testing.T) {
	l, closeFn, err := Open("", "debug")
	if err != nil || l == nil {
		t.Fatalf("Open(\"\") = %v, %v", l, err)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close = %v, expected nil", err)
	}
}

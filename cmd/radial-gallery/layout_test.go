package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/radial-gallery/config"
)

func TestHeadlessRejectsEmptyViewport(t *testing.T) {
	if _, _, err := headless(config.Default(), config.DemoItems(), 0, 720, 8, 16, 0); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestHeadlessSettlesAtProgress(t *testing.T) {
	tests := []struct {
		progress float64
		want     int
	}{
		{0, 0},
		{1, 7},
		{-1, 0},
	}
	for _, tt := range tests {
		g, _, err := headless(config.Default(), config.DemoItems(), 1280, 720, 8, 16, tt.progress)
		if err != nil {
			t.Fatalf("headless: %v", err)
		}
		if got := g.SnapIndex(); got != tt.want {
			t.Errorf("progress %v: snap = %d, want %d", tt.progress, got, tt.want)
		}
		g.Dispose()
	}
}

func TestPrintLayout(t *testing.T) {
	g, _, err := headless(config.Default(), config.DemoItems(), 1280, 720, 8, 16, 0)
	if err != nil {
		t.Fatalf("headless: %v", err)
	}
	defer g.Dispose()

	var out bytes.Buffer
	if err := printLayout(&out, g.Frame()); err != nil {
		t.Fatalf("printLayout: %v", err)
	}
	s := out.String()
	for _, want := range []string{"Title", "Opacity", "NIKE", "ELEGANCE", "progress"} {
		if !strings.Contains(s, want) {
			t.Errorf("layout output missing %q", want)
		}
	}
	if !strings.Contains(s, "active") {
		t.Error("no row marked active")
	}
}

func TestLayoutCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"layout", "--width", "1024", "--height", "640", "-p", "0.5"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.Contains(out.String(), "CLOTHING") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestSnapshotCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"snapshot", "--width", "320", "--height", "240", "--supersample", "1", "--out", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestSnapshotCommandRejectsFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"snapshot", "--out", filepath.Join(t.TempDir(), "frame.bmp")})
	if err := cmd.Execute(); err == nil {
		t.Error("expected unsupported format error")
	}
}

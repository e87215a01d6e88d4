package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-cpu-pathtracer/pkg/log"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
)

func TestRenderCommandWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "frame.png")
	app := newApp()

	err := app.Run([]string{"pathtracer", "render",
		"--scene", "checker", "--width", "6", "--height", "3", "--spp", "1", "--workers", "2", "--out", out})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Errorf("Expected 6x3 image, got %v", b)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown scene", []string{"--scene", "cornell"}, "unknown scene"},
		{"zero samples", []string{"--spp", "0"}, "samples per pixel"},
		{"zero width", []string{"--width", "0"}, "width and height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"pathtracer", "render", "--fixed", "--out", filepath.Join(t.TempDir(), "x.png")}, tt.args...)
			err := newApp().Run(args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	if err := app.Run([]string{"pathtracer", "scenes"}); err != nil {
		t.Fatalf("scenes failed: %v", err)
	}
	for _, info := range scene.ListScenes() {
		if !strings.Contains(out.String(), info.ID) {
			t.Errorf("Expected scene %q in listing:\n%s", info.ID, out.String())
		}
	}
}

func TestCreateOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		sceneName string
		expected  string
	}{
		{"default", filepath.Join("output", "default", "render_20240309_140507.png")},
		{"glass", filepath.Join("output", "glass", "render_20240309_140507.png")},
	}

	for _, tt := range tests {
		t.Run(tt.sceneName, func(t *testing.T) {
			if got := createOutputPath(tt.sceneName, now); got != tt.expected {
				t.Errorf("createOutputPath(%q) = %q, want %q", tt.sceneName, got, tt.expected)
			}
		})
	}
}

func TestHostCPUDescription(t *testing.T) {
	if hostCPUDescription() == "" {
		t.Errorf("Expected a CPU description or \"unknown\"")
	}
}

func TestLogLevelFlag(t *testing.T) {
	t.Cleanup(func() { log.SetLevel(log.Notice) })

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	if err := app.Run([]string{"pathtracer", "--log-level", "warning", "scenes"}); err != nil {
		t.Fatalf("scenes with --log-level failed: %v", err)
	}

	app = newApp()
	app.Writer = &out
	err := app.Run([]string{"pathtracer", "--log-level", "chatty", "scenes"})
	if err == nil || !strings.Contains(err.Error(), "unknown level") {
		t.Errorf("Expected unknown level error, got %v", err)
	}
}

type failingShutdown struct {
	err    error
	called bool
}

func (f *failingShutdown) Shutdown(ctx context.Context) error {
	f.called = true
	return f.err
}

func TestShutdownAfterFailure(t *testing.T) {
	startErr := errors.New("listen: address in use")

	clean := &failingShutdown{}
	if err := shutdownAfterFailure(clean, startErr); err != startErr {
		t.Errorf("Expected the start error alone, got %v", err)
	}
	if !clean.called {
		t.Error("Expected Shutdown to be called")
	}

	shutdownErr := errors.New("close: already closed")
	failing := &failingShutdown{err: shutdownErr}
	err := shutdownAfterFailure(failing, startErr)
	if !errors.Is(err, startErr) || !errors.Is(err, shutdownErr) {
		t.Errorf("Expected both errors to be reported, got %v", err)
	}
}

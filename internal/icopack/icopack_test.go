package icopack

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/Mavwarf/printicon/internal/icon"
)

func renderFrames(t *testing.T, sizes []int) []image.Image {
	t.Helper()
	frames := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		img, err := icon.Draw(s, icon.Default())
		if err != nil {
			t.Fatalf("Draw(%d) error: %v", s, err)
		}
		frames = append(frames, img)
	}
	return frames
}

func TestWriteRoundTrip(t *testing.T) {
	sizes := []int{16, 32, 48, 256}
	p := filepath.Join(t.TempDir(), "assets", "icon.ico")

	if err := Write(p, renderFrames(t, sizes)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	f, err := os.Open(p)
	if err != nil {
		t.Fatalf("opening artifact: %v", err)
	}
	defer f.Close()

	decoded, err := ico.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}
	if len(decoded) != len(sizes) {
		t.Fatalf("decoded %d frames, want %d", len(decoded), len(sizes))
	}
	for i, want := range sizes {
		b := decoded[i].Bounds()
		if b.Dx() != want || b.Dy() != want {
			t.Errorf("frame %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), want, want)
		}
	}
}

func TestWriteIdempotent(t *testing.T) {
	sizes := []int{16, 32, 48, 256}
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.ico")
	p2 := filepath.Join(dir, "b.ico")

	if err := Write(p1, renderFrames(t, sizes)); err != nil {
		t.Fatalf("first Write() error: %v", err)
	}
	if err := Write(p2, renderFrames(t, sizes)); err != nil {
		t.Fatalf("second Write() error: %v", err)
	}

	a, _ := os.ReadFile(p1)
	b, _ := os.ReadFile(p2)
	if len(a) == 0 || string(a) != string(b) {
		t.Error("two identical runs produced different bytes")
	}
}

func TestWriteRejectsEmptyFrameSet(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.ico")
	err := Write(p, nil)
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("Write() error = %v, want ErrNoFrames", err)
	}
	if _, statErr := os.Stat(p); !os.IsNotExist(statErr) {
		t.Error("Write() with no frames created a file")
	}
}

func TestWriteFailurePreservesPreviousArtifact(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "icon.ico")
	if err := Write(p, renderFrames(t, []int{16})); err != nil {
		t.Fatalf("seeding artifact: %v", err)
	}
	before, _ := os.ReadFile(p)

	// A second run that fails before encoding must leave the old bytes.
	if err := Write(p, nil); err == nil {
		t.Fatal("expected error from empty frame set")
	}
	after, _ := os.ReadFile(p)
	if string(before) != string(after) {
		t.Error("failed run modified the previous artifact")
	}
}

func TestWriteFailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "assets")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(blocker, "icon.ico")
	if err := Write(p, renderFrames(t, []int{16})); err == nil {
		t.Error("Write() succeeded with an unwritable parent, want error")
	}
}

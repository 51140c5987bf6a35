// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestTargetSize(t *testing.T) {
	cases := []struct {
		w, h, max int
		expected  image.Point
	}{
		{800, 600, 1024, image.Pt(800, 600)},
		{1024, 1024, 1024, image.Pt(1024, 1024)},
		{2048, 1024, 1024, image.Pt(1024, 512)},
		{1000, 3000, 1024, image.Pt(341, 1024)},
		{3000, 2000, 1024, image.Pt(1024, 682)},
		{5000, 2, 100, image.Pt(100, 1)},
		{1025, 10, 1024, image.Pt(1024, 9)},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%dx%d_%d", c.w, c.h, c.max), func(t *testing.T) {
			s := TargetSize(c.w, c.h, c.max)
			if s != c.expected {
				t.Fatalf("Expected %v, got %v", c.expected, s)
			}
		})
	}
}

func TestResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for _, f := range []Filter{Lanczos, CatmullRom} {
		t.Run(f.String(), func(t *testing.T) {
			img := Resize(src, image.Pt(10, 5), f)
			if img.Bounds().Size() != image.Pt(10, 5) {
				t.Fatalf("Expected size 10x5, got %v", img.Bounds().Size())
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	for _, f := range []Filter{Lanczos, CatmullRom} {
		parsed, err := ParseFilter(f.String())
		if err != nil {
			t.Fatalf("Error parsing %s: %v", f, err)
		}
		if parsed != f {
			t.Fatalf("Expected %s, got %s", f, parsed)
		}
	}
	_, err := ParseFilter("nearest")
	if err == nil {
		t.Fatalf("Expected an error for an unknown filter, got none")
	}
}

func TestSaveImageNoUpscale(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		w, h int
	}{
		{"small.png", 30, 20},
		{"small.jpg", 30, 20},
		{"small.jpeg", 17, 41},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := filepath.Join(dir, "src.png")
			writePNG(t, src, c.w, c.h)
			img, err := LoadImage(src)
			if err != nil {
				t.Fatalf("Error loading image: %v", err)
			}
			size := TargetSize(c.w, c.h, DefaultMaxSize)
			if size != img.Bounds().Size() {
				t.Fatalf("Expected an image within limits to keep its size, got %v", size)
			}

			dst := filepath.Join(dir, c.name)
			err = SaveImage(dst, img)
			if err != nil {
				t.Fatalf("Error saving image: %v", err)
			}
			saved, err := LoadImage(dst)
			if err != nil {
				t.Fatalf("Error loading saved image: %v", err)
			}
			if saved.Bounds().Size() != image.Pt(c.w, c.h) {
				t.Fatalf("Expected %dx%d, got %v", c.w, c.h, saved.Bounds().Size())
			}
		})
	}
}

func TestSaveImageUnsupported(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.xyz")
	err := SaveImage(dst, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if err == nil {
		t.Fatalf("Expected an error saving to an unknown format, got none")
	}
	_, err = os.Stat(dst)
	if !os.IsNotExist(err) {
		t.Fatalf("Expected no file to be left at %s", dst)
	}
}

func TestLoadImageCorrupt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.png")
	err := os.WriteFile(fn, []byte("not a png"), 0644)
	if err != nil {
		t.Fatalf("Could not create file: %v", err)
	}
	_, err = LoadImage(fn)
	if err == nil {
		t.Fatalf("Expected an error loading a corrupt image, got none")
	}
}

// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG saves an opaque test image of size w x h to path, creating
// any directories needed.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		t.Fatalf("Could not create directory for %s: %v", path, err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Could not create %s: %v", path, err)
	}
	defer f.Close()
	err = png.Encode(f, img)
	if err != nil {
		t.Fatalf("Could not encode %s: %v", path, err)
	}
}

// touch creates empty files in dir, creating dir if needed.
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		t.Fatalf("Could not create directory %s: %v", dir, err)
	}
	for _, n := range names {
		err = os.WriteFile(filepath.Join(dir, n), []byte{}, 0644)
		if err != nil {
			t.Fatalf("Could not create file %s: %v", n, err)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testGallery() Gallery {
	return Gallery{
		Columns: 3,
		Rows: []Row{
			{
				Input:   "a.png",
				Caption: "A <b>bold</b> cat & dog",
				Cells: []Cell{
					{"input/a.png", InputLabel},
					{"method_results/methodA/a_result.png", "methodA"},
					{"method_results/methodB/a_result.png", "methodB"},
				},
			},
			{
				Input:   "b.png",
				Caption: NoCaption,
				Cells: []Cell{
					{"input/b.png", InputLabel},
					{},
					{"method_results/methodB/b_result.png", "methodB"},
				},
			},
		},
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, testGallery())
	if err != nil {
		t.Fatalf("Error writing html: %v", err)
	}
	out := buf.String()

	expected := []string{
		"grid-template-columns: repeat(3, 1fr);",
		"<img src='input/a.png' alt='Input Image'/>",
		"<img src='method_results/methodB/b_result.png' alt='methodB'/>",
		"<div>methodA</div>",
		"<p>A &lt;b&gt;bold&lt;/b&gt; cat &amp; dog</p>",
		"<p>" + NoCaption + "</p>",
	}
	for _, e := range expected {
		if !strings.Contains(out, e) {
			t.Errorf("Expected html to contain %q\n%s", e, out)
		}
	}

	if n := strings.Count(out, "<div class='image-group'>"); n != 2 {
		t.Errorf("Expected 2 image groups, got %d", n)
	}
	if n := strings.Count(out, "<div class='gallery-item'></div>"); n != 1 {
		t.Errorf("Expected 1 empty cell, got %d", n)
	}
	if strings.Index(out, "input/a.png") > strings.Index(out, "input/b.png") {
		t.Errorf("Expected rows in input order")
	}
}

func TestSaveHTMLIdempotent(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "gallery.html")

	var runs [][]byte
	for i := 0; i < 2; i++ {
		err := SaveHTML(fn, testGallery())
		if err != nil {
			t.Fatalf("Error saving html: %v", err)
		}
		b, err := os.ReadFile(fn)
		if err != nil {
			t.Fatalf("Error reading html: %v", err)
		}
		runs = append(runs, b)
	}
	if !bytes.Equal(runs[0], runs[1]) {
		t.Fatalf("Saving the same gallery twice gave different output")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Error reading directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected only the gallery in %s, found %d files", dir, len(entries))
	}
}

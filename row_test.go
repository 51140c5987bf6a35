// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPaddedLen(t *testing.T) {
	cases := []struct {
		n, columns, expected int
	}{
		{3, 3, 3},
		{1, 4, 4},
		{5, 4, 8},
		{8, 4, 8},
		{3, 1, 3},
		{7, 10, 10},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d_%d", c.n, c.columns), func(t *testing.T) {
			l := PaddedLen(c.n, c.columns)
			if l != c.expected {
				t.Fatalf("Expected %d, got %d", c.expected, l)
			}
			if l%c.columns != 0 || l < c.n || l-c.n >= c.columns {
				t.Fatalf("%d is not the smallest multiple of %d at least %d", l, c.columns, c.n)
			}
		})
	}
}

func TestBuildRow(t *testing.T) {
	root := t.TempDir()
	inputs := filepath.Join(root, "input")
	results := filepath.Join(root, "method_results")
	touch(t, inputs, "a.png", "b.png")
	touch(t, filepath.Join(results, "methodA"), "a_result.png")
	touch(t, filepath.Join(results, "methodB"), "a_result.png", "b_result.png")
	methods := []string{filepath.Join(results, "methodA"), filepath.Join(results, "methodB")}

	in := filepath.ToSlash(inputs)
	res := filepath.ToSlash(results)
	cases := []struct {
		input    string
		columns  int
		expected []Cell
	}{
		{"a.png", 3, []Cell{
			{in + "/a.png", InputLabel},
			{res + "/methodA/a_result.png", "methodA"},
			{res + "/methodB/a_result.png", "methodB"},
		}},
		{"b.png", 3, []Cell{
			{in + "/b.png", InputLabel},
			{},
			{res + "/methodB/b_result.png", "methodB"},
		}},
		{"b.png", 2, []Cell{
			{in + "/b.png", InputLabel},
			{},
			{res + "/methodB/b_result.png", "methodB"},
			{},
		}},
		{"b.png", 5, []Cell{
			{in + "/b.png", InputLabel},
			{},
			{res + "/methodB/b_result.png", "methodB"},
			{},
			{},
		}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s_%d", c.input, c.columns), func(t *testing.T) {
			opts := RowOptions{InputDir: inputs, CaptionDir: filepath.Join(root, "replies"), Columns: c.columns}
			row, err := BuildRow(c.input, methods, opts)
			if err != nil {
				t.Fatalf("Error building row: %v", err)
			}
			if row.Input != c.input {
				t.Fatalf("Expected input %s, got %s", c.input, row.Input)
			}
			if row.Caption != NoCaption {
				t.Fatalf("Expected caption '%s', got '%s'", NoCaption, row.Caption)
			}
			if len(row.Cells) != len(c.expected) {
				t.Fatalf("Expected %d cells, got %d: %v", len(c.expected), len(row.Cells), row.Cells)
			}
			for i := range c.expected {
				if row.Cells[i] != c.expected[i] {
					t.Fatalf("Cell %d: expected %v, got %v", i, c.expected[i], row.Cells[i])
				}
			}
		})
	}
}

func TestBuildRowColumns(t *testing.T) {
	_, err := BuildRow("a.png", nil, RowOptions{Columns: 0})
	if err != ErrColumns {
		t.Fatalf("Expected '%v', got '%v'", ErrColumns, err)
	}
}

func Test_srcPath(t *testing.T) {
	cases := []struct {
		path     string
		expected string
	}{
		{"scan:2.png", "./scan:2.png"},
		{"input/a.png", "./input/a.png"},
		{"./input/a.png", "./input/a.png"},
		{"../input/a.png", "../input/a.png"},
		{"/data/input/a.png", "/data/input/a.png"},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			s := srcPath(filepath.FromSlash(c.path))
			if s != c.expected {
				t.Fatalf("Expected %s, got %s", c.expected, s)
			}
		})
	}
}

func TestBuildRowRelative(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Could not get working directory: %v", err)
	}
	err = os.Chdir(t.TempDir())
	if err != nil {
		t.Fatalf("Could not change directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	touch(t, ".", "scan:2.png")
	method := filepath.Join("method_results", "m")
	touch(t, method, "scan:2_result.png")

	row, err := BuildRow("scan:2.png", []string{method}, RowOptions{InputDir: ".", CaptionDir: "replies", Columns: 2})
	if err != nil {
		t.Fatalf("Error building row: %v", err)
	}
	expected := []string{"./scan:2.png", "./method_results/m/scan:2_result.png"}
	for i, e := range expected {
		if row.Cells[i].Src != e {
			t.Fatalf("Cell %d: expected %s, got %s", i, e, row.Cells[i].Src)
		}
	}

	var buf bytes.Buffer
	err = WriteHTML(&buf, Gallery{Columns: 2, Rows: []Row{row}})
	if err != nil {
		t.Fatalf("Error writing html: %v", err)
	}
	html := buf.String()
	if strings.Contains(html, "ZgotmplZ") {
		t.Fatalf("A path was rejected as unsafe:\n%s", html)
	}
	for _, e := range expected {
		if !strings.Contains(html, "src='"+e+"'") {
			t.Fatalf("Expected src '%s' in html:\n%s", e, html)
		}
	}
}

// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"errors"
	"path"
	"path/filepath"
	"strings"
)

// InputLabel is the label given to the input image in each row.
const InputLabel = "Input Image"

// Cell is one grid position in a gallery row. A cell with an empty Src
// is a placeholder, either for a method with no result or for padding.
type Cell struct {
	Src   string // slash separated path to the image
	Label string
}

// Empty reports whether the cell is a placeholder.
func (c Cell) Empty() bool {
	return c.Src == ""
}

// Row is one input image with its method results and caption.
type Row struct {
	Input   string
	Caption string
	Cells   []Cell
}

// Gallery is the full set of rows, in input order, and the number of
// columns they are laid out in.
type Gallery struct {
	Columns int
	Rows    []Row
}

// RowOptions holds the settings needed to build a gallery row.
type RowOptions struct {
	InputDir      string
	CaptionDir    string
	CaptionSuffix string
	Columns       int
	Mode          MatchMode
}

var ErrColumns = errors.New("Number of columns must be at least 1")

// PaddedLen returns the smallest multiple of columns that is at
// least n.
func PaddedLen(n, columns int) int {
	if n%columns == 0 {
		return n
	}
	return (n/columns + 1) * columns
}

// srcPath converts a file path to the slash separated form used in
// Cell.Src. Relative paths always start with ./ or ../, so that a colon
// in the first segment can't be mistaken for a url scheme.
func srcPath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.ToSlash(p)
	}
	s := path.Clean(filepath.ToSlash(p))
	if s == ".." || strings.HasPrefix(s, "../") {
		return s
	}
	return "./" + s
}

// BuildRow builds the gallery row for the input image called input:
// the input itself, then for each method folder its matching result or
// an empty cell, then empty cells until the length of the row is a
// multiple of the number of columns.
func BuildRow(input string, methods []string, opts RowOptions) (Row, error) {
	if opts.Columns < 1 {
		return Row{}, ErrColumns
	}
	suffix := opts.CaptionSuffix
	if suffix == "" {
		suffix = DefaultCaptionSuffix
	}

	caption, err := LoadCaption(opts.CaptionDir, input, suffix)
	if err != nil {
		return Row{}, err
	}

	n := PaddedLen(1+len(methods), opts.Columns)
	cells := make([]Cell, 0, n)
	cells = append(cells, Cell{
		Src:   srcPath(filepath.Join(opts.InputDir, input)),
		Label: InputLabel,
	})

	for _, m := range methods {
		name, ok, err := FindResult(m, input, opts.Mode)
		if err != nil {
			return Row{}, err
		}
		if !ok {
			cells = append(cells, Cell{})
			continue
		}
		cells = append(cells, Cell{
			Src:   srcPath(filepath.Join(m, name)),
			Label: filepath.Base(m),
		})
	}

	for len(cells) < n {
		cells = append(cells, Cell{})
	}

	return Row{Input: input, Caption: caption, Cells: cells}, nil
}

// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"fmt"
	"io"

	"github.com/nickjwhite/gofpdf"
)

const (
	pdfMargin     = 36 // page margin in pt
	pdfGap        = 8  // gap between grid cells in pt
	pdfLineHeight = 12
)

// Fpdf builds a PDF version of a gallery, with one page per row.
type Fpdf struct {
	fpdf    *gofpdf.Fpdf
	columns int
	tr      func(string) string
}

// Setup creates a new PDF with appropriate settings and fonts, for a
// gallery laid out in the given number of columns.
func (p *Fpdf) Setup(columns int) error {
	if columns < 1 {
		return ErrColumns
	}
	p.columns = columns
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetFont("Helvetica", "", 10)
	p.fpdf.SetAutoPageBreak(false, float64(0))
	// the core fonts are cp1252, so captions need translating
	p.tr = p.fpdf.UnicodeTranslatorFromDescriptor("")
	return p.fpdf.Error()
}

// AddRow adds a page to the pdf with the images of a gallery row in a
// grid and the caption beneath them. Rows that don't fit on one page
// continue onto the next.
func (p *Fpdf) AddRow(row Row) error {
	p.fpdf.AddPage()
	pw, ph := p.fpdf.GetPageSize()
	contentw := pw - 2*pdfMargin
	cellw := (contentw - float64(p.columns-1)*pdfGap) / float64(p.columns)

	y := float64(pdfMargin)
	for start := 0; start < len(row.Cells); start += p.columns {
		end := start + p.columns
		if end > len(row.Cells) {
			end = len(row.Cells)
		}

		// find the height of this line of the grid first, so the
		// page can be broken before it rather than through it
		heights := make([]float64, end-start)
		lineh := float64(0)
		for i, c := range row.Cells[start:end] {
			if c.Empty() {
				continue
			}
			info := p.fpdf.RegisterImageOptions(c.Src, gofpdf.ImageOptions{})
			if info == nil || p.fpdf.Err() {
				return fmt.Errorf("Error adding image %s to pdf: %v", c.Src, p.fpdf.Error())
			}
			heights[i] = cellw * info.Height() / info.Width()
			if heights[i] > lineh {
				lineh = heights[i]
			}
		}
		lineh += pdfLineHeight
		if y+lineh > ph-pdfMargin && y > pdfMargin {
			p.fpdf.AddPage()
			y = pdfMargin
		}

		for i, c := range row.Cells[start:end] {
			if c.Empty() {
				continue
			}
			x := pdfMargin + float64(i)*(cellw+pdfGap)
			p.fpdf.ImageOptions(c.Src, x, y, cellw, heights[i], false, gofpdf.ImageOptions{}, 0, "")
			p.fpdf.SetXY(x, y+heights[i])
			p.fpdf.CellFormat(cellw, pdfLineHeight, p.tr(c.Label), "", 0, "C", false, 0, "")
		}
		y += lineh + pdfGap
	}

	p.fpdf.SetXY(pdfMargin, y)
	p.fpdf.MultiCell(contentw, pdfLineHeight, p.tr(row.Caption), "", "L", false)

	return p.fpdf.Error()
}

// Save saves the PDF to the file at path. Nothing is left at path if
// an error occurs.
func (p *Fpdf) Save(path string) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		return p.fpdf.Output(w)
	})
}

// SavePDF saves a whole gallery as a PDF at path.
func SavePDF(path string, g Gallery) error {
	var p Fpdf
	err := p.Setup(g.Columns)
	if err != nil {
		return err
	}
	for _, r := range g.Rows {
		err = p.AddRow(r)
		if err != nil {
			return err
		}
	}
	return p.Save(path)
}

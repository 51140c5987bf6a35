// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"
	"log"

	"rescribe.xyz/methodgallery"
)

// GalleryOptions holds the settings for building a gallery.
type GalleryOptions struct {
	InputDir      string
	CaptionDir    string
	CaptionSuffix string
	ResultsDir    string
	Columns       int
	Mode          methodgallery.MatchMode
}

// BuildGallery builds a gallery row for each input image in
// opts.InputDir, in sorted order, matching it against each method
// folder in opts.ResultsDir. It fails if there are no input images or
// no method folders, as the gallery would be pointless.
func BuildGallery(ctx context.Context, opts GalleryOptions, logger *log.Logger) (methodgallery.Gallery, error) {
	if opts.Columns < 1 {
		return methodgallery.Gallery{}, methodgallery.ErrColumns
	}

	inputs, err := methodgallery.InputImages(opts.InputDir)
	if err != nil {
		return methodgallery.Gallery{}, err
	}
	if len(inputs) == 0 {
		return methodgallery.Gallery{}, fmt.Errorf("%w in %s", ErrNoInputs, opts.InputDir)
	}

	methods, err := methodgallery.MethodFolders(opts.ResultsDir)
	if err != nil {
		return methodgallery.Gallery{}, err
	}
	if len(methods) == 0 {
		return methodgallery.Gallery{}, fmt.Errorf("%w in %s", ErrNoMethods, opts.ResultsDir)
	}

	rowopts := methodgallery.RowOptions{
		InputDir:      opts.InputDir,
		CaptionDir:    opts.CaptionDir,
		CaptionSuffix: opts.CaptionSuffix,
		Columns:       opts.Columns,
		Mode:          opts.Mode,
	}

	g := methodgallery.Gallery{Columns: opts.Columns}
	for _, input := range inputs {
		select {
		case <-ctx.Done():
			return methodgallery.Gallery{}, ctx.Err()
		default:
		}

		row, err := methodgallery.BuildRow(input, methods, rowopts)
		if err != nil {
			return methodgallery.Gallery{}, err
		}
		found := 0
		for _, c := range row.Cells[1 : 1+len(methods)] {
			if !c.Empty() {
				found++
			}
		}
		logger.Printf("Added %s with %d of %d method results\n", input, found, len(methods))
		g.Rows = append(g.Rows, row)
	}

	return g, nil
}

// WriteGallery builds a gallery and saves it as HTML to htmlPath, and
// also as a PDF to pdfPath if that is set. Nothing is written unless
// the whole gallery could be built.
func WriteGallery(ctx context.Context, opts GalleryOptions, htmlPath string, pdfPath string, logger *log.Logger) error {
	g, err := BuildGallery(ctx, opts, logger)
	if err != nil {
		return err
	}

	err = methodgallery.SaveHTML(htmlPath, g)
	if err != nil {
		return err
	}
	logger.Println("HTML file generated:", htmlPath)

	if pdfPath != "" {
		err = methodgallery.SavePDF(pdfPath, g)
		if err != nil {
			return err
		}
		logger.Println("PDF file generated:", pdfPath)
	}

	return nil
}

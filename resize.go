// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// DefaultMaxSize is the default maximum for either dimension of a
// preprocessed input image, in pixels.
const DefaultMaxSize = 1024

// Filter is the resampling filter used when resizing images.
type Filter int

const (
	Lanczos Filter = iota
	CatmullRom
)

func (f Filter) String() string {
	switch f {
	case Lanczos:
		return "lanczos"
	case CatmullRom:
		return "catmullrom"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter converts the name of a resampling filter, as used on the
// command line, into a Filter.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "lanczos":
		return Lanczos, nil
	case "catmullrom":
		return CatmullRom, nil
	}
	return Lanczos, fmt.Errorf("Unknown filter '%s', should be 'lanczos' or 'catmullrom'", s)
}

// TargetSize returns the size an image of width w and height h should
// be resized to so that neither dimension is larger than maxSize, keeping
// the aspect ratio. Images which already fit are left as they are, so
// images are never scaled up.
func TargetSize(w, h, maxSize int) image.Point {
	if w <= maxSize && h <= maxSize {
		return image.Pt(w, h)
	}
	// integer arithmetic keeps the larger side exactly at maxSize
	var nw, nh int
	if w >= h {
		nw, nh = maxSize, h*maxSize/w
	} else {
		nw, nh = w*maxSize/h, maxSize
	}
	// very thin images could otherwise vanish entirely
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return image.Pt(nw, nh)
}

// Resize resizes img to size using the filter.
func Resize(img image.Image, size image.Point, filter Filter) image.Image {
	switch filter {
	case CatmullRom:
		dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst
	default:
		return imaging.Resize(img, size.X, size.Y, imaging.Lanczos)
	}
}

// LoadImage opens and decodes the image at path.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error loading image %s: %w", path, err)
	}
	return img, nil
}

// SaveImage encodes img in the format implied by the extension of path
// and saves it there. Nothing is left at path if an error occurs.
func SaveImage(path string, img image.Image) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("Error saving image %s: %w", path, err)
	}
	return WriteFileAtomic(path, func(w io.Writer) error {
		return imaging.Encode(w, img, format)
	})
}

// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCaptionSuffix is added to the basename of an input image to
// get the name (without .txt) of its caption file.
const DefaultCaptionSuffix = "_caption"

// NoCaption is used in place of a caption when no caption file exists.
const NoCaption = "No caption available"

// CaptionPath returns the path of the caption file for an input image.
func CaptionPath(dir, input, suffix string) string {
	base, _ := SplitName(input)
	return filepath.Join(dir, base+suffix+".txt")
}

// LoadCaption reads the caption for an input image from dir, trimming
// surrounding whitespace. If there is no caption file NoCaption is
// returned; any other problem reading it is returned as an error.
func LoadCaption(dir, input, suffix string) (string, error) {
	fn := CaptionPath(dir, input, suffix)
	b, err := os.ReadFile(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return NoCaption, nil
	}
	if err != nil {
		return "", fmt.Errorf("Error reading caption file %s: %w", fn, err)
	}
	return strings.TrimSpace(string(b)), nil
}

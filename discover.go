// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ResultMarker is the marker that every method result file name
// contains, separating the match key from the rest of the name.
const ResultMarker = "_result"

// IsImage reports whether a file name has one of the extensions
// that are treated as images (.png, .jpg or .jpeg, in any case).
func IsImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// InputImages returns the sorted names of all images directly inside
// dir. Subdirectories and non-image files are ignored. If dir does not
// exist the returned error satisfies errors.Is(err, fs.ErrNotExist).
func InputImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("Error reading input folder %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// MethodFolders returns the sorted paths of all immediate
// subdirectories of dir, each of which holds the results of one
// method. An empty list is not an error.
func MethodFolders(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("Error reading method results folder %s: %w", dir, err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, e.Name()))
	}
	sort.Strings(dirs)

	return dirs, nil
}

// SplitName splits a file name into its basename and extension,
// so "photo.png" becomes "photo" and ".png".
func SplitName(name string) (string, string) {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"fmt"
	"os"
	"strings"
)

// MatchMode selects the policy used to pair result files with an
// input image.
type MatchMode int

const (
	// Strict only accepts results with the same extension as the input,
	// named <basename>_result<ext> or <basename>_<suffix>_result<ext>.
	Strict MatchMode = iota
	// Permissive accepts any file which starts with the basename and
	// contains "_result.", regardless of extension.
	Permissive
)

func (m MatchMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	}
	return fmt.Sprintf("MatchMode(%d)", int(m))
}

// ParseMatchMode converts the name of a matching mode, as used on the
// command line, into a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "strict":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	}
	return Strict, fmt.Errorf("Unknown matching mode '%s', should be 'strict' or 'permissive'", s)
}

// MatchKey returns the part of a result file name before the first
// "_result" marker, and whether the marker was found at all.
func MatchKey(name string) (string, bool) {
	i := strings.Index(name, ResultMarker)
	if i == -1 {
		return "", false
	}
	return name[:i], true
}

// accept returns the match key of a file name if the mode accepts it
// as a result for an input with the given basename and extension.
func (m MatchMode) accept(name, base, ext string) (string, bool) {
	switch m {
	case Permissive:
		if !strings.HasPrefix(name, base) || !strings.Contains(name, ResultMarker+".") {
			return "", false
		}
		return MatchKey(name)
	default:
		suffix := ResultMarker + ext
		if !strings.HasSuffix(name, suffix) {
			return "", false
		}
		key := strings.TrimSuffix(name, suffix)
		// the key may carry a suffix of its own, like photo_scale_0.30
		if key != base && !strings.HasPrefix(key, base+"_") {
			return "", false
		}
		return key, true
	}
}

// SelectResult picks the result for the input image called input from
// a list of file names, which should be in listing order. An exact
// match of the key to the basename is preferred, otherwise the first
// accepted candidate is used. It returns false if nothing matches.
func SelectResult(names []string, input string, mode MatchMode) (string, bool) {
	base, ext := SplitName(input)

	var first string
	found := false
	for _, n := range names {
		key, ok := mode.accept(n, base, ext)
		if !ok {
			continue
		}
		if key == base {
			return n, true
		}
		if !found {
			first = n
			found = true
		}
	}

	return first, found
}

// FindResult finds the result file in folder which belongs to the
// input image called input, returning its file name. Files are
// considered in the order os.ReadDir lists them, which is sorted by
// name, so the choice doesn't depend on the filesystem.
func FindResult(folder string, input string, mode MatchMode) (string, bool, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", false, fmt.Errorf("Error reading method folder %s: %w", folder, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}

	name, ok := SelectResult(names, input, mode)
	return name, ok, nil
}

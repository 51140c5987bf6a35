// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic creates the file at path with the contents written
// by write. The contents go to a temporary file in the same directory
// which is only renamed to path once everything has been written
// successfully, so a failure never leaves a partial file behind.
func WriteFileAtomic(path string, write func(w io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("Error creating temporary file for %s: %w", path, err)
	}
	tmp := f.Name()
	done := false
	defer func() {
		if done {
			return
		}
		f.Close()
		_ = os.Remove(tmp)
	}()

	bw := bufio.NewWriter(f)
	err = write(bw)
	if err != nil {
		return fmt.Errorf("Error writing %s: %w", path, err)
	}
	err = bw.Flush()
	if err != nil {
		return fmt.Errorf("Error writing %s: %w", path, err)
	}
	// CreateTemp uses 0600, which is too strict for gallery files
	err = f.Chmod(0644)
	if err != nil {
		return fmt.Errorf("Error setting permissions of %s: %w", path, err)
	}
	err = f.Close()
	if err != nil {
		return fmt.Errorf("Error closing %s: %w", path, err)
	}
	err = os.Rename(tmp, path)
	if err != nil {
		return fmt.Errorf("Error renaming %s to %s: %w", tmp, path, err)
	}
	done = true

	return nil
}

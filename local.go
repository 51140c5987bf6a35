// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LocalConn is a simple implementation of the storage interface used
// for publishing galleries, which stores everything in a directory on
// the local machine rather than in the cloud. Each bucket is a
// subdirectory of Dir. This is particularly useful for testing, and for
// publishing to a directory served by a web server.
type LocalConn struct {
	// these should be set before running Init(), or left to defaults
	Dir    string
	Logger *log.Logger
}

// MinimalInit does the bare minimum initialisation
func (a *LocalConn) MinimalInit() error {
	if a.Dir == "" {
		a.Dir = filepath.Join(os.TempDir(), "methodgallery")
	}
	err := os.MkdirAll(a.Dir, 0755)
	if err != nil {
		return fmt.Errorf("Error creating storage directory: %v", err)
	}

	if a.Logger == nil {
		a.Logger = log.New(os.Stdout, "", 0)
	}

	return nil
}

// Init just does the same as MinimalInit
func (a *LocalConn) Init() error {
	return a.MinimalInit()
}

// CreateBucket creates the directory for a bucket
func (a *LocalConn) CreateBucket(name string) error {
	err := os.MkdirAll(filepath.Join(a.Dir, name), 0755)
	if err != nil {
		return fmt.Errorf("Error creating bucket %s: %v", name, err)
	}
	return nil
}

func (a *LocalConn) keypath(bucket, key string) string {
	return filepath.Join(a.Dir, bucket, filepath.FromSlash(key))
}

// ListObjects lists the keys of all objects in a bucket which start
// with prefix, in sorted order.
func (a *LocalConn) ListObjects(bucket string, prefix string) ([]string, error) {
	var names []string
	root := filepath.Join(a.Dir, bucket)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// a bucket with nothing in it yet
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		n := filepath.ToSlash(rel)
		if strings.HasPrefix(n, prefix) {
			names = append(names, n)
		}
		return nil
	})
	sort.Strings(names)
	return names, err
}

// DeleteObjects deletes a list of objects
func (a *LocalConn) DeleteObjects(bucket string, keys []string) error {
	for _, k := range keys {
		err := os.Remove(a.keypath(bucket, k))
		if err != nil {
			return err
		}
	}
	return nil
}

// Upload just copies the file from path to Dir/bucket/key
func (a *LocalConn) Upload(bucket string, key string, path string) error {
	dest := a.keypath(bucket, key)
	err := os.MkdirAll(filepath.Dir(dest), 0755)
	if err != nil {
		return fmt.Errorf("Error creating directory for %s: %v", key, err)
	}

	fin, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fin.Close()

	return WriteFileAtomic(dest, func(w io.Writer) error {
		_, err := io.Copy(w, fin)
		return err
	})
}

// Log records an item in the with the Logger. Arguments are handled
// as with fmt.Println.
func (a *LocalConn) Log(v ...interface{}) {
	a.Logger.Println(v...)
}

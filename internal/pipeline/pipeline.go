// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// pipeline is a package used by the methodgallery commands, which
// handles the core functionality of preprocessing datasets and
// building and publishing galleries. Note that it is considered an
// "internal" package, not intended for external use, and no guarantee
// is made of the stability of any interfaces provided.
package pipeline

import (
	"errors"
)

var (
	ErrNoInputs  = errors.New("No input images found")
	ErrNoMethods = errors.New("No method result directories found")
	ErrPublished = errors.New("A gallery is already published")
)

// Uploader is the storage a gallery is published to.
type Uploader interface {
	Log(v ...interface{})
	Upload(bucket string, key string, path string) error
}

// Destination is storage which can be cleared out ready for a gallery.
type Destination interface {
	CreateBucket(name string) error
	ListObjects(bucket string, prefix string) ([]string, error)
	DeleteObjects(bucket string, keys []string) error
	Log(v ...interface{})
}

type Publisher interface {
	Init() error
	CreateBucket(name string) error
	ListObjects(bucket string, prefix string) ([]string, error)
	DeleteObjects(bucket string, keys []string) error
	Log(v ...interface{})
	Upload(bucket string, key string, path string) error
}

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

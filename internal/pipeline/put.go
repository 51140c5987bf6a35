// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"strings"

	"rescribe.xyz/methodgallery"
)

// GalleryImages returns the path of every image used in a gallery,
// without duplicates, in the order they appear.
func GalleryImages(g methodgallery.Gallery) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, r := range g.Rows {
		for _, c := range r.Cells {
			if c.Empty() || seen[c.Src] {
				continue
			}
			seen[c.Src] = true
			paths = append(paths, c.Src)
		}
	}
	return paths
}

// publishKey returns the storage key for an image used in a gallery,
// so that it sits in the same position relative to the uploaded html
// as it does relative to the working directory. Paths which can't be
// reproduced under prefix are rejected.
func publishKey(prefix, src string) (string, error) {
	if path.IsAbs(src) || filepath.IsAbs(filepath.FromSlash(src)) {
		return "", fmt.Errorf("Can't publish %s as it is an absolute path", src)
	}
	clean := path.Clean(src)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("Can't publish %s as it is outside the working directory", src)
	}
	return path.Join(prefix, clean), nil
}

// CheckImages checks that all of the files are images that can be
// decoded, so that a broken gallery isn't published
func CheckImages(ctx context.Context, paths []string) error {
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		f, err := os.Open(filepath.FromSlash(p))
		if err != nil {
			return fmt.Errorf("Opening image %s failed: %v", p, err)
		}
		_, _, err = image.DecodeConfig(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("Decoding image %s failed: %v", p, err)
		}
	}
	return nil
}

// PrepareDestination makes sure bucket exists and that nothing is
// already published under prefix. If force is set anything found
// there is deleted, so that no stale images are left mixed in with a
// new gallery; otherwise it is an ErrPublished error.
func PrepareDestination(ctx context.Context, conn Destination, bucket string, prefix string, force bool) error {
	err := conn.CreateBucket(bucket)
	if err != nil {
		return err
	}

	list, err := conn.ListObjects(bucket, prefix+"/")
	if err != nil {
		return fmt.Errorf("Failed to list %s in %s: %v", prefix, bucket, err)
	}
	if len(list) == 0 {
		return nil
	}
	if !force {
		return fmt.Errorf("%w under %s in %s, use -f to replace it", ErrPublished, prefix, bucket)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	conn.Log("Deleting", len(list), "objects previously published under", prefix)
	err = conn.DeleteObjects(bucket, list)
	if err != nil {
		return fmt.Errorf("Failed to delete old objects under %s in %s: %v", prefix, bucket, err)
	}

	return nil
}

// PublishGallery uploads the gallery as html, named htmlName, to
// bucket under prefix, along with every image it uses. Images are
// uploaded with keys that keep their relative paths, so that the
// links in the html work from the published copy.
func PublishGallery(ctx context.Context, g methodgallery.Gallery, htmlName string, bucket string, prefix string, conn Uploader) error {
	images := GalleryImages(g)

	// work out all keys first so nothing is uploaded for a gallery
	// which can't be published
	keys := make([]string, len(images))
	for i, src := range images {
		k, err := publishKey(prefix, src)
		if err != nil {
			return err
		}
		keys[i] = k
	}

	tmp, err := os.CreateTemp("", "gallery*.html")
	if err != nil {
		return fmt.Errorf("Failed to create temporary html file: %v", err)
	}
	defer os.Remove(tmp.Name())
	err = methodgallery.WriteHTML(tmp, g)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("Failed to write html: %v", err)
	}
	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("Failed to write html: %v", err)
	}

	for i, src := range images {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		conn.Log("Uploading", src, "to", keys[i])
		err = conn.Upload(bucket, keys[i], filepath.FromSlash(src))
		if err != nil {
			return fmt.Errorf("Failed to upload %s: %v", src, err)
		}
	}

	// the html goes last, so it never refers to missing images
	htmlKey := path.Join(prefix, htmlName)
	conn.Log("Uploading gallery to", htmlKey)
	err = conn.Upload(bucket, htmlKey, tmp.Name())
	if err != nil {
		return fmt.Errorf("Failed to upload gallery: %v", err)
	}

	return nil
}

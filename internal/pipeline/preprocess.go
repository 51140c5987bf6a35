// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rescribe.xyz/methodgallery"
)

// Sizes maps the basename of each input image to the size it was
// resized to, so that results can be resized to match.
type Sizes map[string]image.Point

// PreprocessOptions holds the settings for a preprocessing run.
type PreprocessOptions struct {
	InputDir   string
	ResultsDir string
	OutputDir  string
	MaxSize    int
	Filter     methodgallery.Filter
	Graph      string // path to save a size graph to, if set
}

// InputOutputDir returns the directory resized inputs are saved to.
func (o PreprocessOptions) InputOutputDir() string {
	return filepath.Join(o.OutputDir, "input")
}

// ResultsOutputDir returns the directory flattened method results
// are saved to.
func (o PreprocessOptions) ResultsOutputDir() string {
	return filepath.Join(o.OutputDir, "method_results")
}

// Preprocess resizes the input images and flattens and resizes the
// method results, as described by opts. Both input directories are
// checked before anything is written, so that a misconfiguration
// doesn't leave half a dataset behind.
func Preprocess(ctx context.Context, opts PreprocessOptions, logger *log.Logger) error {
	if opts.MaxSize < 1 {
		return fmt.Errorf("Maximum size must be at least 1, not %d", opts.MaxSize)
	}

	inputs, err := methodgallery.InputImages(opts.InputDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w in %s", ErrNoInputs, opts.InputDir)
	}
	methods, err := methodgallery.MethodFolders(opts.ResultsDir)
	if err != nil {
		return err
	}
	if len(methods) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMethods, opts.ResultsDir)
	}

	sizes, records, err := PreprocessInputs(ctx, opts.InputDir, opts.InputOutputDir(), opts.MaxSize, opts.Filter, logger)
	if err != nil {
		return err
	}

	n, err := PreprocessResults(ctx, opts.ResultsDir, opts.ResultsOutputDir(), sizes, opts.Filter, logger)
	if err != nil {
		return err
	}
	logger.Printf("Processed %d inputs and %d method results\n", len(records), n)

	switch {
	case opts.Graph == "":
	case len(records) < 2:
		logger.Println("Warning: not saving size graph as there are fewer than 2 inputs")
	default:
		err = methodgallery.WriteFileAtomic(opts.Graph, func(w io.Writer) error {
			return methodgallery.GraphSizes(records, "Input image sizes", opts.MaxSize, w)
		})
		if err != nil {
			return fmt.Errorf("Error saving graph %s: %w", opts.Graph, err)
		}
		logger.Println("Saved size graph to", opts.Graph)
	}

	return nil
}

// PreprocessInputs resizes each input image in inDir so that neither
// dimension is larger than maxSize, saving the result with the same
// name in outDir. It returns the size each image was resized to, keyed
// by basename, and a record of each image's sizes in input order.
func PreprocessInputs(ctx context.Context, inDir string, outDir string, maxSize int, filter methodgallery.Filter, logger *log.Logger) (Sizes, []methodgallery.SizeRecord, error) {
	inputs, err := methodgallery.InputImages(inDir)
	if err != nil {
		return nil, nil, err
	}
	if len(inputs) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoInputs, inDir)
	}

	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return nil, nil, fmt.Errorf("Error creating output folder %s: %w", outDir, err)
	}

	sizes := make(Sizes)
	var records []methodgallery.SizeRecord
	for _, name := range inputs {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		img, err := methodgallery.LoadImage(filepath.Join(inDir, name))
		if err != nil {
			return nil, nil, err
		}
		orig := img.Bounds().Size()
		target := methodgallery.TargetSize(orig.X, orig.Y, maxSize)
		if target != orig {
			img = methodgallery.Resize(img, target, filter)
			logger.Printf("Resized input %s: %dx%d -> %dx%d\n", name, orig.X, orig.Y, target.X, target.Y)
		} else {
			logger.Printf("Input %s within limits, size %dx%d\n", name, orig.X, orig.Y)
		}

		err = methodgallery.SaveImage(filepath.Join(outDir, name), img)
		if err != nil {
			return nil, nil, err
		}

		base, _ := methodgallery.SplitName(name)
		if prev, ok := sizes[base]; ok && prev != target {
			logger.Printf("Warning: more than one input is called %s, results will be resized to match %s\n", base, name)
		}
		sizes[base] = target
		records = append(records, methodgallery.SizeRecord{Name: name, Orig: orig, Target: target})
	}

	return sizes, records, nil
}

// MethodName returns the flattened name of the method whose results
// are in dir, which is the path of dir relative to root with each
// path segment joined by underscores.
func MethodName(root, dir string) (string, error) {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Split(rel, string(filepath.Separator)), "_"), nil
}

// PreprocessResults walks the nested method results tree in inDir,
// saving each result image into a folder in outDir named for its
// flattened method name, as <matchkey>_result<ext>. Results are
// resized to the size recorded for their match key in sizes; any
// without a recorded size are copied at their original size with a
// warning. It returns the number of results saved.
func PreprocessResults(ctx context.Context, inDir string, outDir string, sizes Sizes, filter methodgallery.Filter, logger *log.Logger) (int, error) {
	written := make(map[string]string)
	err := filepath.WalkDir(inDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		name := d.Name()
		// skip anything starting with . to prevent automatically
		// generated files like .DS_Store getting in the way
		if path != inDir && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		key, ok := methodgallery.MatchKey(name)
		if !ok {
			return nil
		}
		if !methodgallery.IsImage(name) {
			logger.Printf("Skipping %s as it isn't an image\n", path)
			return nil
		}

		method, err := MethodName(inDir, filepath.Dir(path))
		if err != nil {
			return err
		}
		if method == "." {
			logger.Printf("Warning: skipping %s as it isn't in a method folder\n", path)
			return nil
		}

		dir := filepath.Join(outDir, method)
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return fmt.Errorf("Error creating output folder %s: %w", dir, err)
		}
		dest := filepath.Join(dir, key+methodgallery.ResultMarker+filepath.Ext(name))
		if prev, ok := written[dest]; ok {
			logger.Printf("Warning: %s overwrites %s, as both are saved to %s\n", path, prev, dest)
		}

		img, err := methodgallery.LoadImage(path)
		if err != nil {
			return err
		}
		if size, ok := sizes[key]; ok {
			img = methodgallery.Resize(img, size, filter)
			logger.Printf("Resized result %s: -> %dx%d\n", path, size.X, size.Y)
		} else {
			s := img.Bounds().Size()
			logger.Printf("Warning: no input size for %s, keeping original size %dx%d\n", key, s.X, s.Y)
		}

		err = methodgallery.SaveImage(dest, img)
		if err != nil {
			return err
		}
		written[dest] = path
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(written), nil
}

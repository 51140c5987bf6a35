// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// preprocess resizes a set of input images and flattens and resizes
// the nested method results made from them, ready for htmlgallery.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/methodgallery"
	"rescribe.xyz/methodgallery/internal/pipeline"
)

const usage = `Usage: preprocess [-input_folder dir] [-method_results dir] [-output_folder dir] [-max_size px] [-filter lanczos|catmullrom] [-graph file.png] [-q]

Resizes the images in input_folder so that neither dimension is larger
than max_size, saving them to output_folder/input.

Then walks the nested method_results folder, saving each file with
"_result" in its name to output_folder/method_results/<method>, where
<method> is the path of the folder it was found in with each part
joined by underscores. Each result is renamed to <basename>_result<ext>
and resized to match the resized input with the same basename.
`

func main() {
	inputs := flag.String("input_folder", "input", "Folder containing raw input images")
	results := flag.String("method_results", "method_results", "Nested method results parent folder")
	output := flag.String("output_folder", "processed", "Root output folder for processed data")
	maxsize := flag.Int("max_size", methodgallery.DefaultMaxSize, "Max dimension for resizing images")
	filtername := flag.String("filter", "lanczos", "Resampling filter ('lanczos' or 'catmullrom')")
	graph := flag.String("graph", "", "Save a graph of image sizes to this png file")
	quiet := flag.Bool("q", false, "Don't print progress for each image")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	var verboselog *log.Logger
	if *quiet {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", 0)
	} else {
		verboselog = log.New(os.Stdout, "", 0)
	}

	filter, err := methodgallery.ParseFilter(*filtername)
	if err != nil {
		log.Fatalln(err)
	}

	opts := pipeline.PreprocessOptions{
		InputDir:   *inputs,
		ResultsDir: *results,
		OutputDir:  *output,
		MaxSize:    *maxsize,
		Filter:     filter,
		Graph:      *graph,
	}
	err = pipeline.Preprocess(context.Background(), opts, verboselog)
	if err != nil {
		log.Fatalln("Error:", err)
	}

	fmt.Println("Preprocessed data saved to", *output)
}

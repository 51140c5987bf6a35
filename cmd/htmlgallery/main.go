// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// htmlgallery generates an html gallery showing each input image
// alongside the results of each method and a caption.
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

const usage = `Usage: htmlgallery [-input_folder dir] [-captions_folder dir] [-method_results dir] [-html_output file] [-images_per_row n] [-matching_mode strict|permissive] [-pdf_output file] [-q]

Generates an html gallery with a group for each image in input_folder,
containing the input image, the matching result from each folder in
method_results, and the caption from <basename>_caption.txt in
captions_folder.

In the default 'strict' matching mode a result matches an input called
<basename><ext> if it is named <basename>_result<ext> or
<basename>_<anything>_result<ext>. In 'permissive' mode any file which
starts with <basename> and contains "_result." matches. In either mode
an exact <basename>_result match is preferred.
`

func main() {
	inputs := flag.String("input_folder", "input", "Folder containing input images")
	captions := flag.String("captions_folder", "replies", "Folder containing caption files")
	results := flag.String("method_results", "method_results", "Folder containing method result subfolders")
	htmlout := flag.String("html_output", "gallery.html", "Output html filename")
	columns := flag.Int("images_per_row", 4, "Number of images per row in the gallery")
	modename := flag.String("matching_mode", "strict", "How to match result files to inputs ('strict' or 'permissive')")
	suffix := flag.String("caption_suffix", methodgallery.DefaultCaptionSuffix, "Suffix added to an input basename to get its caption file name")
	pdfout := flag.String("pdf_output", "", "Also save the gallery as a pdf to this file")
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

	mode, err := methodgallery.ParseMatchMode(*modename)
	if err != nil {
		log.Fatalln(err)
	}

	opts := pipeline.GalleryOptions{
		InputDir:      *inputs,
		CaptionDir:    *captions,
		CaptionSuffix: *suffix,
		ResultsDir:    *results,
		Columns:       *columns,
		Mode:          mode,
	}
	err = pipeline.WriteGallery(context.Background(), opts, *htmlout, *pdfout, verboselog)
	if err != nil {
		log.Fatalln("Error:", err, "- exiting")
	}

	fmt.Println("Gallery saved to", *htmlout)
}

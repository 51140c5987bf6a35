// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// publishgallery builds an html gallery in the same way as
// htmlgallery, and uploads it with all of its images to cloud storage.
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

const usage = `Usage: publishgallery [-c conn] [-bucket name] [-prefix prefix] [-f] [gallery flags...]

Builds a gallery in the same way as htmlgallery, checks that all of the
images it uses are valid, and uploads it to the given bucket under
prefix, together with the images. The images keep the same paths
relative to the gallery as they have relative to the current directory,
so the folders given must be relative paths inside it.

The bucket is created if it doesn't exist yet. If anything is already
published under prefix nothing is uploaded, unless -f is given, in which
case everything under prefix is deleted first.

With '-c local' the bucket is a directory inside the folder given by
-localdir, which is useful for publishing to a web server directory.
`

func main() {
	verbose := flag.Bool("v", false, "Verbose")
	conntype := flag.String("c", "aws", "connection type ('aws' or 'local')")
	localdir := flag.String("localdir", "", "Directory to publish to with '-c local'")
	bucket := flag.String("bucket", methodgallery.StorageGalleries, "Bucket to publish to")
	prefix := flag.String("prefix", "", "Prefix (folder) to publish the gallery under")
	force := flag.Bool("f", false, "Replace anything already published under the prefix")
	inputs := flag.String("input_folder", "input", "Folder containing input images")
	captions := flag.String("captions_folder", "replies", "Folder containing caption files")
	results := flag.String("method_results", "method_results", "Folder containing method result subfolders")
	htmlname := flag.String("html_name", "gallery.html", "Name of the published html file")
	columns := flag.Int("images_per_row", 4, "Number of images per row in the gallery")
	modename := flag.String("matching_mode", "strict", "How to match result files to inputs ('strict' or 'permissive')")
	suffix := flag.String("caption_suffix", methodgallery.DefaultCaptionSuffix, "Suffix added to an input basename to get its caption file name")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 || *prefix == "" {
		flag.Usage()
		os.Exit(1)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", log.LstdFlags)
	}

	mode, err := methodgallery.ParseMatchMode(*modename)
	if err != nil {
		log.Fatalln(err)
	}

	var conn pipeline.Publisher
	switch *conntype {
	case "aws":
		conn = &methodgallery.AwsConn{Logger: verboselog}
	case "local":
		conn = &methodgallery.LocalConn{Dir: *localdir, Logger: verboselog}
	default:
		log.Fatalln("Unknown connection type")
	}
	err = conn.Init()
	if err != nil {
		log.Fatalln("Failed to set up cloud connection:", err)
	}

	ctx := context.Background()
	opts := pipeline.GalleryOptions{
		InputDir:      *inputs,
		CaptionDir:    *captions,
		CaptionSuffix: *suffix,
		ResultsDir:    *results,
		Columns:       *columns,
		Mode:          mode,
	}
	g, err := pipeline.BuildGallery(ctx, opts, verboselog)
	if err != nil {
		log.Fatalln("Error:", err)
	}

	verboselog.Println("Checking that all images in the gallery are valid")
	err = pipeline.CheckImages(ctx, pipeline.GalleryImages(g))
	if err != nil {
		log.Fatalln(err)
	}

	verboselog.Println("Checking what has already been published under", *prefix)
	err = pipeline.PrepareDestination(ctx, conn, *bucket, *prefix, *force)
	if err != nil {
		log.Fatalln("Error:", err)
	}

	err = pipeline.PublishGallery(ctx, g, *htmlname, *bucket, *prefix, conn)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("Published gallery to %s/%s/%s\n", *bucket, *prefix, *htmlname)
}

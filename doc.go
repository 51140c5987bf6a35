// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The methodgallery package contains tools and functions for comparing the
output of several image processing methods side by side. It is built
around two commands, preprocess and htmlgallery, plus publishgallery for
putting a finished gallery somewhere it can be shared.

Preparing a dataset

A dataset consists of a folder of input images and a folder of method
results. The method results folder can be nested arbitrarily deep, for
example one folder per method with a subfolder per scale level. Each
result file must have "_result" in its name, and everything before that
marker must be the basename of the input image it was made from, so the
result of MethodA at scale 0.30 for photo.png might be found at:
  method_results/MethodA/scale_0.30/photo_result.png

The preprocess command resizes the input images so that neither dimension
is larger than a maximum (1024 pixels by default), and flattens the method
results into one folder per method, resizing each result to the size of the
(resized) input it belongs to:
  preprocess -input_folder input -method_results method_results -output_folder processed

After this the example above would be found at:
  processed/method_results/MethodA_scale_0.30/photo_result.png

If the -graph flag is given a chart of the original and resized dimensions
of each input is also saved, which is useful to check at a glance that
nothing has been shrunk more than expected.

Building a gallery

The htmlgallery command builds a single HTML page with one group per input
image, containing the input, the matching result from each method folder,
and a caption read from a text file named after the input:
  htmlgallery -input_folder processed/input -method_results processed/method_results -captions_folder replies

Result files are matched to inputs in one of two ways, selected with the
-matching_mode flag. The default, "strict", only considers results with the
same extension as the input, named either <basename>_result<ext> or
<basename>_<anything>_result<ext>. The "permissive" mode considers any file
that starts with the basename and contains "_result.", whatever its
extension. In both modes an exact <basename>_result match is preferred over
any other candidate.

The gallery can also be saved as a PDF with the -pdf_output flag, with one
page per input image.

Publishing a gallery

The publishgallery command builds the same gallery as htmlgallery and
uploads it, together with every image it refers to, to an S3 bucket (or a
local directory, with -c local), so that it can be viewed from anywhere:
  publishgallery -bucket mygalleries -prefix experiment1

To use the S3 functionality you'll need to set up your ~/.aws/credentials
appropriately, and check the settings in cloudsettings.go.
*/
package methodgallery

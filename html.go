// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"html/template"
	"io"
)

// galleryTmpl lays out each row as a css grid, so the number of
// columns only needs setting once in the style rules. Captions, labels
// and paths are all escaped by html/template.
var galleryTmpl = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset='UTF-8'>
<title>Image Gallery</title>
<style>
.image-group { border: 2px solid #333; margin-bottom: 20px; padding: 10px; }
.gallery-row { display: grid; grid-template-columns: repeat({{.Columns}}, 1fr); gap: 10px; margin-bottom: 10px; }
.gallery-item { text-align: center; border: 1px solid #ccc; padding: 5px; }
.gallery-item img { width: 100%; height: auto; }
</style>
</head>
<body>
{{range .Rows}}<div class='image-group'>
<div class='gallery-row'>
{{range .Cells}}{{if .Empty}}<div class='gallery-item'></div>
{{else}}<div class='gallery-item'>
<img src='{{.Src}}' alt='{{.Label}}'/>
<div>{{.Label}}</div>
</div>
{{end}}{{end}}</div>
<p>{{.Caption}}</p>
</div>
{{end}}</body>
</html>
`))

// WriteHTML writes the gallery as a self-contained HTML document.
func WriteHTML(w io.Writer, g Gallery) error {
	return galleryTmpl.Execute(w, g)
}

// SaveHTML saves the gallery as an HTML document at path. Nothing is
// left at path if an error occurs.
func SaveHTML(path string, g Gallery) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		return WriteHTML(w, g)
	})
}

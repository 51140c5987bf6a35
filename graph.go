// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package methodgallery

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const maxticks = 40

// SizeRecord is the original and resized size of one input image.
type SizeRecord struct {
	Name   string
	Orig   image.Point
	Target image.Point
}

// Resized reports whether the image had to be shrunk.
func (r SizeRecord) Resized() bool {
	return r.Orig != r.Target
}

func longest(p image.Point) float64 {
	if p.X > p.Y {
		return float64(p.X)
	}
	return float64(p.Y)
}

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// GraphSizes creates a graph of the longest side of each input image
// before and after preprocessing, with a line marking maxSize. Images
// which were shrunk are annotated with their name. The records should
// be in input order.
func GraphSizes(records []SizeRecord, title string, maxSize int, w io.Writer) error {
	if len(records) < 2 {
		return errors.New("Not enough images to graph")
	}

	var xvalues, origvalues, targetvalues []float64
	var ticks []chart.Tick
	var annotations []chart.Value2
	tickevery := len(records) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	for i, r := range records {
		x := float64(i + 1)
		xvalues = append(xvalues, x)
		origvalues = append(origvalues, longest(r.Orig))
		targetvalues = append(targetvalues, longest(r.Target))
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("%.0f", x)})
		}
		if r.Resized() {
			annotations = append(annotations, chart.Value2{Label: r.Name, XValue: x, YValue: longest(r.Orig)})
		}
	}

	origSeries := chart.ContinuousSeries{
		Name: "Original",
		Style: chart.Style{
			StrokeColor: chart.ColorRed,
		},
		XValues: xvalues,
		YValues: origvalues,
	}
	targetSeries := chart.ContinuousSeries{
		Name: "Resized",
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: targetvalues,
	}
	maxSeries := createLine(xvalues, float64(maxSize), chart.ColorAlternateGreen)
	maxSeries.Style.StrokeDashArray = []float64{5.0, 5.0}

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Input image",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Longest side (px)",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
		},
		Series: []chart.Series{
			origSeries,
			targetSeries,
			maxSeries,
		},
	}
	if len(annotations) > 0 {
		graph.Series = append(graph.Series, chart.AnnotationSeries{Annotations: annotations})
	}
	return graph.Render(chart.PNG, w)
}

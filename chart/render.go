// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chart

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Renderer draws a chart spec onto w
type Renderer interface {
	Render(w io.Writer, spec Spec) error
}

// Default canvas size in pixels
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

// innerScale sizes the inner pie of an overlay relative to the outer ring
const innerScale = 0.45

// SVGRenderer draws pie and doughnut charts as standalone SVG documents
type SVGRenderer struct {
	Width  int
	Height int
}

func NewSVGRenderer(width, height int) *SVGRenderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &SVGRenderer{Width: width, Height: height}
}

// Render writes an accessible SVG. A doughnut with two datasets draws the
// first as the outer ring and the second as a pie nested inside it. Empty
// rings are left out.
func (r *SVGRenderer) Render(w io.Writer, spec Spec) error {
	if spec.Empty() {
		return ErrEmptyDataset
	}

	var layers [][]byte
	switch spec.Kind {
	case Pie:
		body, err := r.pie(spec.Datasets[0], r.Width, r.Height)
		if err != nil {
			return err
		}
		layers = append(layers, nest(body, 0, 0, r.Width, r.Height))

	case Doughnut:
		// Skip empty rings so a population with no members keeps the inner pie
		outer := spec.Datasets[0]
		if len(outer.Segments) > 0 {
			body, err := r.donut(outer, r.Width, r.Height)
			if err != nil {
				return err
			}
			layers = append(layers, nest(body, 0, 0, r.Width, r.Height))
		}

		if len(spec.Datasets) > 1 && len(spec.Datasets[1].Segments) > 0 {
			iw := int(float64(r.Width) * innerScale)
			ih := int(float64(r.Height) * innerScale)
			inner, err := r.pie(spec.Datasets[1], iw, ih)
			if err != nil {
				return err
			}
			layers = append(layers, nest(inner, (r.Width-iw)/2, (r.Height-ih)/2, iw, ih))
		}

	default:
		return fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s">`,
		r.Width, r.Height, r.Width, r.Height, html.EscapeString(spec.Title))
	fmt.Fprintf(&buf, "<title>%s</title><desc>%s</desc>", html.EscapeString(spec.Title), html.EscapeString(spec.Description))
	for _, l := range layers {
		buf.Write(l)
	}
	buf.WriteString("</svg>")

	_, err := w.Write(buf.Bytes())
	return err
}

func (r *SVGRenderer) pie(ds Dataset, width, height int) ([]byte, error) {
	pc := gochart.PieChart{
		Width:  width,
		Height: height,
		Values: values(ds),
	}
	var buf bytes.Buffer
	if err := pc.Render(gochart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render pie %q: %w", ds.Name, err)
	}
	return buf.Bytes(), nil
}

func (r *SVGRenderer) donut(ds Dataset, width, height int) ([]byte, error) {
	dc := gochart.DonutChart{
		Width:  width,
		Height: height,
		Values: values(ds),
	}
	var buf bytes.Buffer
	if err := dc.Render(gochart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render doughnut %q: %w", ds.Name, err)
	}
	return buf.Bytes(), nil
}

func values(ds Dataset) []gochart.Value {
	vals := make([]gochart.Value, 0, len(ds.Segments))
	for _, s := range ds.Segments {
		vals = append(vals, gochart.Value{
			Label: s.Label,
			Value: float64(s.Value),
			Style: gochart.Style{
				FillColor:   drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#")),
				FontColor:   gochart.ColorWhite,
				StrokeColor: gochart.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}
	return vals
}

// nest places a rendered SVG document at (x, y) inside the parent drawing
func nest(doc []byte, x, y, width, height int) []byte {
	doc = bytes.TrimSpace(doc)
	if bytes.HasPrefix(doc, []byte("<?xml")) {
		if i := bytes.Index(doc, []byte("?>")); i >= 0 {
			doc = bytes.TrimSpace(doc[i+2:])
		}
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg x="%d" y="%d" width="%d" height="%d">`, x, y, width, height)
	buf.Write(doc)
	buf.WriteString("</svg>")
	return buf.Bytes()
}

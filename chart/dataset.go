// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chart

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/popvote/models"
	"github.com/danielhkuo/popvote/votes"
)

// Kind selects the chart shape
type Kind string

const (
	Pie      Kind = "pie"
	Doughnut Kind = "doughnut"
)

// Palette assigns a hex colour to each vote category
type Palette struct {
	Yes     string
	No      string
	Abstain string
}

// DefaultPalette is green/red/grey
var DefaultPalette = Palette{
	Yes:     "#38a169",
	No:      "#e53e3e",
	Abstain: "#a0aec0",
}

// Color returns the colour for a category label
func (p Palette) Color(label string) string {
	switch label {
	case votes.LabelYes:
		return p.Yes
	case votes.LabelNo:
		return p.No
	default:
		return p.Abstain
	}
}

// Segment is one slice of a ring
type Segment struct {
	Label string
	Value int64
	Color string
}

// Dataset is one ring of a chart; zero categories never become segments
type Dataset struct {
	Name     string
	Segments []Segment
}

// Spec describes one chart to draw
type Spec struct {
	Kind        Kind
	Title       string
	Description string
	Datasets    []Dataset
}

// NewDataset builds a ring from a breakdown in Yes, No, Abstain order
func NewDataset(name string, b votes.Breakdown, palette Palette) Dataset {
	ds := Dataset{Name: name}
	for _, c := range b.Categories() {
		ds.Segments = append(ds.Segments, Segment{
			Label: c.Label,
			Value: c.Value,
			Color: palette.Color(c.Label),
		})
	}
	return ds
}

// Labels lists segment labels in draw order
func (d Dataset) Labels() []string {
	labels := make([]string, 0, len(d.Segments))
	for _, s := range d.Segments {
		labels = append(labels, s.Label)
	}
	return labels
}

// Total sums the dataset
func (d Dataset) Total() int64 {
	var sum int64
	for _, s := range d.Segments {
		sum += s.Value
	}
	return sum
}

// Percent is the share of segment i in hundredths, e.g. 33.33
func (d Dataset) Percent(i int) float64 {
	total := d.Total()
	if total == 0 || i < 0 || i >= len(d.Segments) {
		return 0
	}
	return math.Round(10000*float64(d.Segments[i].Value)/float64(total)) / 100
}

// Tooltip formats segment i as "1,234 (56.78%)"
func (d Dataset) Tooltip(i int) string {
	if i < 0 || i >= len(d.Segments) {
		return ""
	}
	return humanize.Comma(d.Segments[i].Value) + " (" + strconv.FormatFloat(d.Percent(i), 'f', -1, 64) + "%)"
}

// Model converts the dataset into its JSON form
func (d Dataset) Model() models.ChartDataset {
	out := models.ChartDataset{
		Name:     d.Name,
		Labels:   d.Labels(),
		Segments: make([]models.ChartSegment, 0, len(d.Segments)),
	}
	for i, s := range d.Segments {
		out.Segments = append(out.Segments, models.ChartSegment{
			Label:   s.Label,
			Value:   s.Value,
			Tooltip: d.Tooltip(i),
		})
	}
	return out
}

// Empty reports whether every ring has nothing to draw
func (s Spec) Empty() bool {
	for _, ds := range s.Datasets {
		if len(ds.Segments) > 0 {
			return false
		}
	}
	return true
}

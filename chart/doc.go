// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package chart turns vote breakdowns into drawable pie and doughnut charts.

# Datasets

A Dataset is one ring. NewDataset keeps only non-zero categories, in
Yes, No, Abstain order, and colours them from a Palette:

	ds := chart.NewDataset("Senate Vote", votes.VoteBreakdown(totals), chart.DefaultPalette)
	ds.Tooltip(0) // "52 (52.53%)"

# Rendering

SVGRenderer draws through go-chart. A Doughnut spec with two datasets
puts the first on the outer ring and nests the second as a pie inside it.

# Canvases

A Canvas owns at most one Instance. Draw releases the previous instance
before drawing. When drawing fails the canvas is left empty, and callers
show the textual fallback instead.
*/
package chart

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chart

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/popvote/metrics"
)

var ErrEmptyDataset = errors.New("chart has an empty dataset")

// Instance is one drawn chart attached to a canvas
type Instance struct {
	Seq      int
	Spec     Spec
	SVG      []byte
	released bool
}

// Released reports whether the instance was detached from its canvas
func (i *Instance) Released() bool {
	return i.released
}

// Canvas holds at most one live chart instance
type Canvas struct {
	Name     string
	Label    string
	renderer Renderer
	current  *Instance
	seq      int
}

func NewCanvas(name, label string, r Renderer) *Canvas {
	return &Canvas{Name: name, Label: label, renderer: r}
}

// Draw replaces the current instance. The prior instance is released before
// the new one is drawn; if drawing fails the canvas stays empty.
func (c *Canvas) Draw(spec Spec) (*Instance, error) {
	c.Release()

	if spec.Empty() {
		metrics.ChartDraws.WithLabelValues(c.Name, metrics.ResultEmpty).Inc()
		return nil, fmt.Errorf("draw %s: %w", c.Name, ErrEmptyDataset)
	}

	var buf bytes.Buffer
	if err := c.renderer.Render(&buf, spec); err != nil {
		metrics.ChartDraws.WithLabelValues(c.Name, metrics.ResultError).Inc()
		slog.Warn("chart draw failed", "canvas", c.Name, "error", err)
		return nil, fmt.Errorf("draw %s: %w", c.Name, err)
	}

	c.seq++
	c.current = &Instance{Seq: c.seq, Spec: spec, SVG: buf.Bytes()}
	metrics.ChartDraws.WithLabelValues(c.Name, metrics.ResultOK).Inc()
	return c.current, nil
}

// Release detaches the current instance, if any
func (c *Canvas) Release() {
	if c.current == nil {
		return
	}
	c.current.released = true
	c.current = nil
	metrics.ChartReleases.Inc()
}

// Current returns the live instance or nil
func (c *Canvas) Current() *Instance {
	return c.current
}

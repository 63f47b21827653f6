// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package view renders figure views as HTML. TH wraps table header cells with
// standard padding and merges caller classes.
package view

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package figure presents a vote summary as charts, pills, and fallback prose.

# View State

A Presenter starts in Loading and renders only a loading indicator. Ready
supplies the visitor's overlay preference, moves to Ready, and draws:

	p := figure.NewPresenter(id, summary, renderer, figure.WithTable(true))
	p.Ready(overlay)
	view := p.View()

# Charts

With overlay on, one doughnut shows population on the outer ring and the
chamber vote on the inner ring. With overlay off, two pies are drawn side by
side. SetOverlay releases charts that are no longer visible and redraws the
visible ones.

Every canvas carries prose with exact counts and the pass percentage. A
canvas that could not be drawn still shows that prose.
*/
package figure

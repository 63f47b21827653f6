// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the popvote API.

# Handler Types

Each handler is a struct with its dependencies:

  - VoteHandler: vote and population ingestion and retrieval
  - FigureHandler: summaries, single charts and rendered figures
  - PreferenceHandler: the visitor's overlay preference

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(db, cfg)
	figureHandler := handlers.NewFigureHandler(db, store, chart.NewSVGRenderer(w, h), cfg)
	prefHandler := handlers.NewPreferenceHandler(store)

# Ingestion

	POST /votes              → CreateVote (returns vote_id)
	GET  /votes/{id}         → GetVote
	PUT  /populations/{name} → PutPopulation (replaces)
	GET  /populations/{name} → GetPopulation

Writes require the X-Admin-Key header for the votes or populations scope.
Records are validated before they are stored and again when summarized.

# Figures

	GET /votes/{id}/summary?population=       → GetSummary
	GET /votes/{id}/charts/{kind}?population= → GetChart (vote, population, overlay)
	GET /votes/{id}/figure?population=&table=1&partial=1 → GetFigure

The population query parameter defaults to Config.DefaultPopulation.
GetChart answers with SVG, or with the prose fallback as text/plain and
X-Chart-Fallback: true when the chart cannot be drawn. GetFigure reads the
visitor's overlay preference; if that read fails the figure is rendered in
its loading state.

# Preferences

	GET  /preferences/overlay                      → GetOverlay
	PUT  /preferences/overlay                      → SetOverlay
	POST /preferences/overlay/toggle?return=/path  → ToggleOverlay

Preference routes must be wrapped in middleware.WithVisitor. ToggleOverlay
redirects with 303 to return when it is a local path, and answers JSON
otherwise.
*/
package handlers

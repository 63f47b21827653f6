// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the popvote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, prefs.NewSQLStore(db), cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Ingestion (admin, requires X-Admin-Key):

	POST /votes              - Store a roll-call vote
	PUT  /populations/{name} - Store a population record

Records (public):

	GET /votes/{id}
	GET /populations/{name}

Figures (public):

	GET /votes/{id}/summary       - Derived totals and chart datasets
	GET /votes/{id}/charts/{kind} - SVG chart: vote, population or overlay
	GET /votes/{id}/figure        - HTML figure for the current visitor

Preferences (per visitor cookie):

	GET  /preferences/overlay
	PUT  /preferences/overlay
	POST /preferences/overlay/toggle

# Handler Initialization

The router creates handler instances with dependency injection:

	renderer := chart.NewSVGRenderer(cfg.ChartWidth, cfg.ChartHeight)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	figureHandler := handlers.NewFigureHandler(db, store, renderer, cfg)
	prefHandler := handlers.NewPreferenceHandler(store)
*/
package router

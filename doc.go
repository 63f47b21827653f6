// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the popvote server.

popvote renders legislative roll-call votes next to the population each
vote represents. Every vote gets a pie chart of the chamber tally, a pie
chart of the represented population, and an overlaid doughnut combining
both, with Pass/Fail and Popular/Unpopular badges.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory (or the file named by ENV_FILE) is
loaded first.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: file:popvote.db)
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC; writes are
    disabled without it
  - DEFAULT_POPULATION (-population): population record used by default
  - CHAMBER (-chamber): chamber label for votes that name none
  - CHART_WIDTH, CHART_HEIGHT: chart size in pixels
  - ALLOWED_ORIGINS (-origins): comma-separated origins allowed
    credentialed cross-origin requests

Print the admin key for a write scope and exit:

	go run . -print-admin-key votes
	go run . -print-admin-key populations

# Architecture

  - votes: totals, population weighting, pass threshold, outcome
  - chart: datasets, tooltips, SVG rendering, canvases
  - figure: the figure presenter (loading, overlay, fallback prose)
  - view: HTML templates and the table header cell
  - prefs: visitor preference store
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, visitor cookie, JSON helpers
  - models: Record and response types
  - auth: Admin keys, IDs, visitor ids
  - db: Connection and schema
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

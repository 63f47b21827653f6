// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/popvote/chart"
	"github.com/danielhkuo/popvote/cliparse"
	"github.com/danielhkuo/popvote/db"
	"github.com/danielhkuo/popvote/handlers"
	"github.com/danielhkuo/popvote/metrics"
	"github.com/danielhkuo/popvote/middleware"
	"github.com/danielhkuo/popvote/prefs"
)

func NewRouter(conn *db.DB, store prefs.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	renderer := chart.NewSVGRenderer(cfg.ChartWidth, cfg.ChartHeight)
	voteHandler := handlers.NewVoteHandler(conn, cfg)
	figureHandler := handlers.NewFigureHandler(conn, store, renderer, cfg)
	prefHandler := handlers.NewPreferenceHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", metrics.Handler())

	// Ingestion (admin operations)
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.CreateVote))
	mux.HandleFunc("GET /votes/{id}", middleware.WithLogging(voteHandler.GetVote))
	mux.HandleFunc("PUT /populations/{name}", middleware.WithLogging(voteHandler.PutPopulation))
	mux.HandleFunc("GET /populations/{name}", middleware.WithLogging(voteHandler.GetPopulation))

	// Figures (public)
	mux.HandleFunc("GET /votes/{id}/summary", middleware.WithLogging(figureHandler.GetSummary))
	mux.HandleFunc("GET /votes/{id}/charts/{kind}", middleware.WithLogging(figureHandler.GetChart))
	mux.HandleFunc("GET /votes/{id}/figure", middleware.WithLogging(middleware.WithVisitor(figureHandler.GetFigure)))

	// Visitor preferences
	mux.HandleFunc("GET /preferences/overlay", middleware.WithLogging(middleware.WithVisitor(prefHandler.GetOverlay)))
	mux.HandleFunc("PUT /preferences/overlay", middleware.WithLogging(middleware.WithVisitor(prefHandler.SetOverlay)))
	mux.HandleFunc("POST "+handlers.ToggleOverlayPath, middleware.WithLogging(middleware.WithVisitor(prefHandler.ToggleOverlay)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("popvote API v1"))
	})

	return mux
}

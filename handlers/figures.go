// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/danielhkuo/popvote/chart"
	"github.com/danielhkuo/popvote/cliparse"
	"github.com/danielhkuo/popvote/db"
	"github.com/danielhkuo/popvote/figure"
	"github.com/danielhkuo/popvote/middleware"
	"github.com/danielhkuo/popvote/models"
	"github.com/danielhkuo/popvote/prefs"
	"github.com/danielhkuo/popvote/view"
	"github.com/danielhkuo/popvote/votes"
)

// ToggleOverlayPath is the form target for the overlay switch
const ToggleOverlayPath = "/preferences/overlay/toggle"

type FigureHandler struct {
	db       *db.DB
	store    prefs.Store
	renderer chart.Renderer
	cfg      cliparse.Config
}

func NewFigureHandler(conn *db.DB, store prefs.Store, renderer chart.Renderer, cfg cliparse.Config) *FigureHandler {
	return &FigureHandler{db: conn, store: store, renderer: renderer, cfg: cfg}
}

// GetSummary handles GET /votes/{id}/summary?population=
// Returns the derived summary plus both chart datasets with labels and tooltips
func (h *FigureHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	voteID := r.PathValue("id")
	summary, ok := h.summarize(w, r, voteID)
	if !ok {
		return
	}

	p := h.presenter(voteID, summary)
	vote, population := p.Datasets()

	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{
		VoteID:   voteID,
		Summary:  summary,
		Datasets: []models.ChartDataset{vote.Model(), population.Model()},
	})
}

// GetChart handles GET /votes/{id}/charts/{kind}?population=
// Serves SVG, or the prose fallback as text/plain when the chart cannot be drawn
func (h *FigureHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	voteID := r.PathValue("id")
	kind := r.PathValue("kind")

	summary, ok := h.summarize(w, r, voteID)
	if !ok {
		return
	}

	p := h.presenter(voteID, summary)
	canvas := p.Canvas(kind)
	if canvas == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "chart kind must be one of: vote, population, overlay")
		return
	}

	inst, err := canvas.Draw(p.Spec(kind))
	if err != nil {
		slog.Info("serving chart fallback", "vote_id", voteID, "kind", kind, "error", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Chart-Fallback", "true")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(strings.Join(p.Fallback(kind), "\n") + "\n"))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(inst.SVG)
}

// GetFigure handles GET /votes/{id}/figure?population=&table=1&partial=1
// Renders the figure for the current visitor. If the overlay preference cannot
// be read the figure stays in its loading state.
func (h *FigureHandler) GetFigure(w http.ResponseWriter, r *http.Request) {
	voteID := r.PathValue("id")
	summary, ok := h.summarize(w, r, voteID)
	if !ok {
		return
	}

	q := r.URL.Query()
	showTable, _ := strconv.ParseBool(q.Get("table"))
	partial, _ := strconv.ParseBool(q.Get("partial"))

	p := h.presenter(voteID, summary,
		figure.WithTable(showTable),
		figure.WithToggleURL(ToggleOverlayPath+"?return="+url.QueryEscape(r.URL.RequestURI())),
	)

	visitor := middleware.VisitorID(r.Context())
	overlay, err := prefs.Overlay(r.Context(), h.store, visitor)
	if err != nil {
		slog.Error("failed to read overlay preference", "error", err, "vote_id", voteID)
	} else {
		p.Ready(overlay)
	}

	var buf bytes.Buffer
	render := view.RenderPage
	if partial {
		render = view.RenderFigure
	}
	if err := render(&buf, p.View()); err != nil {
		slog.Error("failed to render figure", "error", err, "vote_id", voteID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render figure")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// summarize loads the vote and its population record and derives the summary.
// Errors are written to w.
func (h *FigureHandler) summarize(w http.ResponseWriter, r *http.Request, voteID string) (models.VoteSummary, bool) {
	if voteID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote ID required")
		return models.VoteSummary{}, false
	}

	rec, err := loadVote(r.Context(), h.db, voteID)
	if err != nil {
		writeLoadError(w, err)
		return models.VoteSummary{}, false
	}

	name := r.URL.Query().Get("population")
	if name == "" {
		name = h.cfg.DefaultPopulation
	}
	pop, err := loadPopulation(r.Context(), h.db, name)
	if err != nil {
		writeLoadError(w, err)
		return models.VoteSummary{}, false
	}

	summary, err := votes.Summarize(rec, pop)
	if err != nil {
		writeLoadError(w, err)
		return models.VoteSummary{}, false
	}

	return summary, true
}

func (h *FigureHandler) presenter(voteID string, summary models.VoteSummary, opts ...figure.Option) *figure.Presenter {
	if summary.Chamber == "" {
		opts = append(opts, figure.WithChamber(h.cfg.Chamber))
	}
	return figure.NewPresenter("vote-"+voteID, summary, h.renderer, opts...)
}

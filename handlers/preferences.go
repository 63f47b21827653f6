// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/popvote/middleware"
	"github.com/danielhkuo/popvote/models"
	"github.com/danielhkuo/popvote/prefs"
)

type PreferenceHandler struct {
	store prefs.Store
}

func NewPreferenceHandler(store prefs.Store) *PreferenceHandler {
	return &PreferenceHandler{store: store}
}

// GetOverlay handles GET /preferences/overlay
func (h *PreferenceHandler) GetOverlay(w http.ResponseWriter, r *http.Request) {
	overlay, err := prefs.Overlay(r.Context(), h.store, middleware.VisitorID(r.Context()))
	if err != nil {
		slog.Error("failed to read overlay preference", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read preference")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PreferenceResponse{Overlay: overlay})
}

// SetOverlay handles PUT /preferences/overlay
func (h *PreferenceHandler) SetOverlay(w http.ResponseWriter, r *http.Request) {
	var req models.SetPreferenceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Overlay == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "overlay is required")
		return
	}

	if err := prefs.SetOverlay(r.Context(), h.store, middleware.VisitorID(r.Context()), *req.Overlay); err != nil {
		slog.Error("failed to write overlay preference", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save preference")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PreferenceResponse{Overlay: *req.Overlay})
}

// ToggleOverlay handles POST /preferences/overlay/toggle?return=/path
// Browsers posting the figure form are redirected back; API clients get JSON
func (h *PreferenceHandler) ToggleOverlay(w http.ResponseWriter, r *http.Request) {
	overlay, err := prefs.ToggleOverlay(r.Context(), h.store, middleware.VisitorID(r.Context()))
	if err != nil {
		slog.Error("failed to toggle overlay preference", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save preference")
		return
	}

	if target := r.URL.Query().Get("return"); isLocalPath(target) {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PreferenceResponse{Overlay: overlay})
}

// isLocalPath accepts same-origin absolute paths only
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

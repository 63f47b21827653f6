// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/popvote/auth"
	"github.com/danielhkuo/popvote/cliparse"
	"github.com/danielhkuo/popvote/db"
	"github.com/danielhkuo/popvote/middleware"
	"github.com/danielhkuo/popvote/models"
	"github.com/danielhkuo/popvote/votes"
)

var (
	errVoteNotFound       = errors.New("vote not found")
	errPopulationNotFound = errors.New("population not found")
)

type VoteHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewVoteHandler(conn *db.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: conn, cfg: cfg}
}

// CreateVote handles POST /votes
// Requires X-Admin-Key for the votes scope
func (h *VoteHandler) CreateVote(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.ScopeVotes) {
		return
	}

	var rec models.VoteRecord
	if err := middleware.ParseJSONBody(r, &rec); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := votes.Validate(rec); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	voteID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate vote ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate ID")
		return
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		slog.Error("failed to encode vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode vote")
		return
	}

	v := rec.Results.Votes.Vote
	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO vote (id, chamber, roll_call, result, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, voteID, v.Chamber, v.RollCall, v.Result, string(payload), time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store vote")
		return
	}

	slog.Info("vote stored", "vote_id", voteID, "chamber", v.Chamber, "roll_call", v.RollCall)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateVoteResponse{VoteID: voteID})
}

// GetVote handles GET /votes/{id}
func (h *VoteHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	voteID := r.PathValue("id")
	if voteID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote ID required")
		return
	}

	rec, err := loadVote(r.Context(), h.db, voteID)
	if err != nil {
		writeLoadError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
}

// PutPopulation handles PUT /populations/{name}
// Requires X-Admin-Key for the populations scope. Replaces any existing record.
func (h *VoteHandler) PutPopulation(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.ScopePopulations) {
		return
	}

	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "population name required")
		return
	}

	var pop models.PopulationRecord
	if err := middleware.ParseJSONBody(r, &pop); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if pop == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "population record required")
		return
	}

	if err := votes.ValidatePopulation(pop); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := json.Marshal(pop)
	if err != nil {
		slog.Error("failed to encode population", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode population")
		return
	}

	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO population (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, name, string(payload), time.Now().UTC())
	if err != nil {
		slog.Error("failed to upsert population", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store population")
		return
	}

	slog.Info("population stored", "name", name, "entries", len(pop))

	middleware.JSONResponse(w, http.StatusOK, models.PopulationResponse{Name: name, Population: pop})
}

// GetPopulation handles GET /populations/{name}
func (h *VoteHandler) GetPopulation(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "population name required")
		return
	}

	pop, err := loadPopulation(r.Context(), h.db, name)
	if err != nil {
		writeLoadError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PopulationResponse{Name: name, Population: pop})
}

// authorize checks X-Admin-Key for scope and writes 401 on failure
func (h *VoteHandler) authorize(w http.ResponseWriter, r *http.Request, scope string) bool {
	adminKey := r.Header.Get("X-Admin-Key")
	if adminKey == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header required")
		return false
	}
	if err := auth.ValidateAdminKey(scope, adminKey, h.cfg.AdminKeySalt); err != nil {
		slog.Warn("rejected admin key", "scope", scope, "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// loadVote reads and decodes a stored vote record
func loadVote(ctx context.Context, conn *db.DB, voteID string) (models.VoteRecord, error) {
	var payload string
	err := conn.QueryRowContext(ctx, `SELECT payload FROM vote WHERE id = ?`, voteID).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.VoteRecord{}, errVoteNotFound
	}
	if err != nil {
		return models.VoteRecord{}, fmt.Errorf("failed to query vote: %w", err)
	}

	var rec models.VoteRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return models.VoteRecord{}, fmt.Errorf("failed to decode vote %s: %w", voteID, err)
	}
	return rec, nil
}

// loadPopulation reads and decodes a stored population record
func loadPopulation(ctx context.Context, conn *db.DB, name string) (models.PopulationRecord, error) {
	var payload string
	err := conn.QueryRowContext(ctx, `SELECT payload FROM population WHERE name = ?`, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errPopulationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query population: %w", err)
	}

	var pop models.PopulationRecord
	if err := json.Unmarshal([]byte(payload), &pop); err != nil {
		return nil, fmt.Errorf("failed to decode population %s: %w", name, err)
	}
	return pop, nil
}

// writeLoadError maps storage and validation errors onto HTTP statuses
func writeLoadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errVoteNotFound), errors.Is(err, errPopulationNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, votes.ErrInvalidVote), errors.Is(err, votes.ErrInvalidPopulation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("failed to load record", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

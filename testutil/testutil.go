// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/popvote/auth"
	"github.com/danielhkuo/popvote/cliparse"
	"github.com/danielhkuo/popvote/db"
	"github.com/danielhkuo/popvote/models"
)

// TestPopulation is the population record name used by fixtures
const TestPopulation = "census"

// SetupTestDB opens a fresh SQLite database in a temp dir with the full schema
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, string(db.SQLite), filepath.Join(t.TempDir(), "popvote-test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3318,
		DatabaseType:      string(db.SQLite),
		DatabaseURL:       "file:test.db",
		AdminKeySalt:      "test-admin-salt",
		DefaultPopulation: TestPopulation,
		Chamber:           "Senate",
		ChartWidth:        400,
		ChartHeight:       400,
	}
}

// AdminHeaders returns the X-Admin-Key header for a write scope
func AdminHeaders(cfg cliparse.Config, scope string) map[string]string {
	return map[string]string{"X-Admin-Key": auth.GenerateAdminKey(scope, cfg.AdminKeySalt)}
}

func intPtr(n int) *int { return &n }

// SampleVote returns a passing Senate vote: 3 yes (CA, CA, TX), 1 no (WY),
// 1 not voting (NY)
func SampleVote() models.VoteRecord {
	return models.VoteRecord{Results: models.VoteResults{Votes: models.VoteEnvelope{Vote: models.Vote{
		Chamber:     "Senate",
		Congress:    118,
		Session:     1,
		RollCall:    42,
		Question:    "On Passage of the Bill",
		Description: "A bill to test things",
		VoteType:    "1/2",
		Result:      "Bill Passed",
		Bill:        &models.Bill{Number: "S. 1", Title: "Test Act"},
		Total: &models.Tally{
			Yes:       intPtr(3),
			No:        intPtr(1),
			Present:   intPtr(0),
			NotVoting: intPtr(1),
		},
		Positions: []models.Position{
			{MemberID: "A000001", State: "CA", VotePosition: models.PositionYes},
			{MemberID: "B000002", State: "CA", VotePosition: models.PositionYes},
			{MemberID: "C000003", State: "TX", VotePosition: models.PositionYes},
			{MemberID: "D000004", State: "WY", VotePosition: models.PositionNo},
			{MemberID: "E000005", State: "NY", VotePosition: models.PositionNotVoting},
		},
	}}}}
}

// SamplePopulation returns populations for every state in SampleVote
func SamplePopulation() models.PopulationRecord {
	return models.PopulationRecord{
		"CA": 39_000_000,
		"TX": 30_000_000,
		"WY": 580_000,
		"NY": 19_500_000,
	}
}

// CreateTestVote stores a vote record directly and returns its ID
func CreateTestVote(t *testing.T, conn *db.DB, rec models.VoteRecord) string {
	t.Helper()

	voteID, _ := auth.GenerateID(16)
	payload, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Failed to encode test vote: %v", err)
	}

	v := rec.Results.Votes.Vote
	_, err = conn.ExecContext(context.Background(), `
		INSERT INTO vote (id, chamber, roll_call, result, payload)
		VALUES (?, ?, ?, ?, ?)
	`, voteID, v.Chamber, v.RollCall, v.Result, string(payload))
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// CreateTestPopulation stores a population record under name
func CreateTestPopulation(t *testing.T, conn *db.DB, name string, pop models.PopulationRecord) {
	t.Helper()

	payload, err := json.Marshal(pop)
	if err != nil {
		t.Fatalf("Failed to encode test population: %v", err)
	}

	_, err = conn.ExecContext(context.Background(), `
		INSERT INTO population (name, payload) VALUES (?, ?)
	`, name, string(payload))
	if err != nil {
		t.Fatalf("Failed to create test population: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

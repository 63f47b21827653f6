// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateAdminKey(t *testing.T) {
	key := GenerateAdminKey(ScopeVotes, "secret-salt")
	if key == "" {
		t.Fatal("GenerateAdminKey() returned empty string")
	}
	if key != GenerateAdminKey(ScopeVotes, "secret-salt") {
		t.Error("GenerateAdminKey() is not deterministic")
	}
	if key == GenerateAdminKey(ScopePopulations, "secret-salt") {
		t.Error("GenerateAdminKey() produced the same key for different scopes")
	}
	if strings.ContainsAny(key, "+/=") {
		t.Errorf("GenerateAdminKey() should be URL-safe without padding, got %s", key)
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	valid := GenerateAdminKey(ScopeVotes, salt)

	tests := []struct {
		name    string
		scope   string
		key     string
		salt    string
		wantErr bool
	}{
		{"valid key", ScopeVotes, valid, salt, false},
		{"wrong key", ScopeVotes, "nope", salt, true},
		{"key for another scope", ScopePopulations, valid, salt, true},
		{"empty key", ScopeVotes, "", salt, true},
		{"no salt configured", ScopeVotes, GenerateAdminKey(ScopeVotes, ""), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.scope, tt.key, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAdminKey) {
				t.Errorf("Expected ErrInvalidAdminKey, got %v", err)
			}
		})
	}
}

func TestVisitorIDs(t *testing.T) {
	id := NewVisitorID()
	parsed, err := ParseVisitorID(id)
	if err != nil {
		t.Fatalf("ParseVisitorID(%q) error = %v", id, err)
	}
	if parsed != id {
		t.Errorf("Expected %s, got %s", id, parsed)
	}

	if id == NewVisitorID() {
		t.Error("NewVisitorID() produced duplicates")
	}

	upper, err := ParseVisitorID(" " + strings.ToUpper(id) + " ")
	if err != nil || upper != id {
		t.Errorf("Expected normalized %s, got %s (%v)", id, upper, err)
	}

	if _, err := ParseVisitorID("not-a-uuid"); !errors.Is(err, ErrInvalidVisitorID) {
		t.Errorf("Expected ErrInvalidVisitorID, got %v", err)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin keys, record IDs, and visitor identifiers.

# Admin Keys

Writes (vote and population ingestion) require an admin key. Keys use
HMAC-SHA256 over the write scope:

	adminKey := auth.GenerateAdminKey(auth.ScopeVotes, salt)
	err := auth.ValidateAdminKey(auth.ScopeVotes, adminKey, salt)

The key is URL-safe base64 encoded without padding. Because it is
deterministic, it can be validated without storing it. The server prints
keys with:

	popvote -print-admin-key votes

With no salt configured, every key is rejected.

# IDs

Vote IDs are random hex strings:

	id, err := auth.GenerateID(16)

# Visitors

Anonymous visitors are identified by a UUID kept in a cookie. Preferences
are scoped to it:

	id := auth.NewVisitorID()
	id, err := auth.ParseVisitorID(cookie.Value)
*/
package auth

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package prefs persists visitor preferences through an injected key/value Store.

Two stores are provided: SQLStore over the preference table and MemoryStore
for tests and single-process use.

The overlay toggle is a boolean under the "overlay" key, scoped per visitor,
defaulting to true:

	overlay, err := prefs.Overlay(ctx, store, visitorID)
	next, err := prefs.ToggleOverlay(ctx, store, visitorID)
*/
package prefs

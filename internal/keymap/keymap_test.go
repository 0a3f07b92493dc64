//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 5},
		{"playback context", "playback", true, 5},
		{"tracklist context", "tracklist", true, 5},
		{"guestbook context", "guestbook", true, 3},
		{"compose context", "compose", true, 2},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d",
					tt.context, len(result), tt.expectMinLength)
			}

			for _, kb := range result {
				if kb.Context != tt.context {
					t.Errorf("ByContext(%q) returned binding with context %q", tt.context, kb.Context)
				}
			}
		})
	}
}

func TestContexts_CoverAllBindings(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range Contexts() {
		known[c] = true
	}

	for _, kb := range Bindings {
		if !known[kb.Context] {
			t.Errorf("binding %q has context %q missing from Contexts()", kb.Action, kb.Context)
		}
	}
}

func TestBindings_Valid(t *testing.T) {
	for i, kb := range Bindings {
		if kb.Action == "" {
			t.Errorf("binding %d has empty action", i)
		}
		if len(kb.Keys) == 0 {
			t.Errorf("binding %d (%s) has no keys", i, kb.Action)
		}
		if kb.Description == "" {
			t.Errorf("binding %d (%s) has no description", i, kb.Action)
		}
	}
}

func TestBindings_KeyConflicts(t *testing.T) {
	// A key may appear in several contexts only when it means the same action.
	seen := make(map[string]Action)
	for _, kb := range Bindings {
		for _, key := range kb.Keys {
			if prev, ok := seen[key]; ok && prev != kb.Action {
				t.Errorf("key %q bound to both %q and %q", key, prev, kb.Action)
			}
			seen[key] = kb.Action
		}
	}
}

package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByContext(t *testing.T) {
	for _, ctx := range []string{ContextGlobal, ContextSearch, ContextOrder, ContextResults, ContextNotice} {
		t.Run(ctx, func(t *testing.T) {
			result := ByContext(ctx)
			assert.NotEmpty(t, result)
			for _, b := range result {
				assert.Equal(t, ctx, b.Context)
			}
		})
	}

	assert.Empty(t, ByContext("unknown"))
}

func TestAll_BindingsComplete(t *testing.T) {
	for _, b := range All {
		assert.NotEmpty(t, b.Action, "binding %v has no action", b.Keys)
		assert.NotEmpty(t, b.Keys, "action %s has no keys", b.Action)
		assert.NotEmpty(t, b.Description, "action %s has no description", b.Action)
	}
}

func TestGlobalBindingsNoConflicts(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range ByContext(ContextGlobal) {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestHelp(t *testing.T) {
	got := Help(ContextResults, ContextGlobal)

	assert.Contains(t, got, "enter open in browser")
	assert.Contains(t, got, "tab focus")
	assert.Contains(t, got, "j down")
	assert.Equal(t, 1, countOf(got, "quit"), "repeated descriptions are shown once")
}

func TestHelp_Empty(t *testing.T) {
	assert.Empty(t, Help())
	assert.Empty(t, Help("unknown"))
}

func TestDisplayKey(t *testing.T) {
	assert.Equal(t, "space", displayKey(" "))
	assert.Equal(t, "→", displayKey("right"))
	assert.Equal(t, "ctrl+s", displayKey("ctrl+s"))
}

func countOf(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}

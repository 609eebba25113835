package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := ForContext(ContextGlobal)

	tests := []struct {
		key      string
		expected Action
	}{
		{"ctrl+c", ActionQuit},
		{"tab", ActionFocusNext},
		{"shift+tab", ActionFocusPrev},
		{"ctrl+s", ActionSubmit},
		{"q", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.key))
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := ForContext(ContextResults)

	assert.Equal(t, []string{"enter", "o"}, r.KeysFor(ActionOpen))
	assert.Equal(t, []string{"q", "esc"}, r.KeysFor(ActionLeave))
	assert.Empty(t, r.KeysFor(ActionSubmit))
}

func TestResolver_DedupesKeys(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionLeave, []string{"q", "esc"}, "quit", ContextOrder},
		{ActionLeave, []string{"esc", "q"}, "quit", ContextResults},
	})

	assert.Equal(t, []string{"q", "esc"}, r.KeysFor(ActionLeave))
	assert.Equal(t, ActionLeave, r.Resolve("esc"))
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionSubmit, []string{"enter"}, "search", ContextSearch},
		{ActionOpen, []string{"enter"}, "open", ContextResults},
	})

	assert.Equal(t, ActionOpen, r.Resolve("enter"))
}

func TestResolver_Is(t *testing.T) {
	r := ForContext(ContextSearch)

	assert.True(t, r.Is("enter", ActionSubmit))
	assert.False(t, r.Is("enter", ActionOpen))
	assert.False(t, r.Is("x", ""))
}

func TestResolver_Empty(t *testing.T) {
	r := NewResolver(nil)

	assert.Empty(t, r.Resolve("enter"))
	assert.Empty(t, r.KeysFor(ActionQuit))
}

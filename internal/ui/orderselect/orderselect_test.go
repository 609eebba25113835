package orderselect

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hoopreel/internal/highlights"
	"github.com/llehouerou/hoopreel/internal/ui/action"
	"github.com/llehouerou/hoopreel/internal/ui/testutil"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func changedOrder(t *testing.T, cmd tea.Cmd) highlights.Order {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	assert.Equal(t, "orderselect", msg.Source)
	changed, ok := msg.Action.(Changed)
	require.True(t, ok)
	return changed.Order
}

func focused(order highlights.Order) Model {
	m := New(order)
	m.SetFocused(true)
	return m
}

func TestUpdate_CyclesForward(t *testing.T) {
	m := focused(highlights.OrderRelevance)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, highlights.OrderDate, m.Order())
	assert.Equal(t, highlights.OrderDate, changedOrder(t, cmd))

	m, _ = m.Update(runes("l"))
	assert.Equal(t, highlights.OrderViewCount, m.Order())
}

func TestUpdate_CyclesBackwardAndWraps(t *testing.T) {
	m := focused(highlights.OrderRelevance)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	assert.Equal(t, highlights.OrderTitle, m.Order())
	assert.Equal(t, highlights.OrderTitle, changedOrder(t, cmd))

	m, _ = m.Update(runes("h"))
	assert.Equal(t, highlights.OrderRating, m.Order())
}

func TestUpdate_FullCycle(t *testing.T) {
	m := focused(highlights.OrderRelevance)

	for range highlights.Orders {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}

	assert.Equal(t, highlights.OrderRelevance, m.Order())
}

func TestUpdate_IgnoredWhenUnfocused(t *testing.T) {
	m := New(highlights.OrderDate)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Nil(t, cmd)
	assert.Equal(t, highlights.OrderDate, m.Order())
}

func TestUpdate_OtherKeys(t *testing.T) {
	m := focused(highlights.OrderDate)

	m, cmd := m.Update(runes("x"))

	assert.Nil(t, cmd)
	assert.Equal(t, highlights.OrderDate, m.Order())
}

func TestClick(t *testing.T) {
	m := New(highlights.OrderRating)

	m, cmd := m.Click()

	assert.Equal(t, highlights.OrderTitle, m.Order())
	assert.Equal(t, highlights.OrderTitle, changedOrder(t, cmd))
}

func TestView(t *testing.T) {
	m := New(highlights.OrderViewCount)
	assert.Contains(t, testutil.StripANSI(m.View()), "Sort by: viewCount")

	m.SetFocused(true)
	assert.Contains(t, testutil.StripANSI(m.View()), "‹ viewCount ›")
}

package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hoopreel/internal/ui/popup"
)

// ModalHarness drives a popup.Modal in tests and records the commands it returns.
type ModalHarness struct {
	modal popup.Modal
	cmds  []tea.Cmd
}

// NewModalHarness wraps m.
func NewModalHarness(m popup.Modal) *ModalHarness {
	return &ModalHarness{modal: m}
}

// Modal returns the wrapped modal as last returned by Update.
func (h *ModalHarness) Modal() popup.Modal {
	return h.modal
}

// Send delivers msg and returns the resulting command.
func (h *ModalHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.modal, cmd = h.modal.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press sends the key named by Key.
func (h *ModalHarness) Press(name string) tea.Cmd {
	return h.Send(Key(name))
}

// Commands returns every non-nil command returned so far.
func (h *ModalHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent non-nil command.
func (h *ModalHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ViewContains reports whether the unstyled content view contains substr.
func (h *ModalHarness) ViewContains(substr string) bool {
	return strings.Contains(StripANSI(h.modal.View()), substr)
}

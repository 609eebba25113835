package ui

// Base holds the focus flag and dimensions shared by every component.
// Embed it in component models:
//
//	type Model struct {
//	    ui.Base
//	    list list.Model[highlights.Result]
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives key input.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component receives key input.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions, including any border.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// InnerWidth returns the width left inside a standard panel border.
func (b Base) InnerWidth() int {
	return max(b.width-BorderHeight, 0)
}

// ListHeight returns the rows available for list content after overhead.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}

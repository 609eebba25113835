// Package cursor tracks row selection and scrolling for list views.
package cursor

// Cursor is the selected row and scroll offset of a list. List length and
// viewport height are passed per call since both change between frames.
type Cursor struct {
	pos    int
	offset int // first visible row
	margin int // rows kept visible above and below pos
}

// New returns a cursor at the top of the list.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected row.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Reset returns to the first row.
func (c *Cursor) Reset() {
	c.pos, c.offset = 0, 0
}

// Move shifts the selection by delta rows.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump selects row pos, clamped to the list, and scrolls it into view.
// It does nothing on an empty list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = min(max(pos, 0), listLen-1)
	c.scroll(listLen, height)
}

func (c *Cursor) scroll(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = min(max(c.offset, 0), max(listLen-height, 0))
}

// VisibleRange returns the half-open range [start, end) of rows on screen.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Nav is a keyboard navigation step. Key bindings live in the keymap.
type Nav int

const (
	NavDown Nav = iota
	NavUp
	NavPageDown // half a viewport
	NavPageUp
	NavTop
	NavBottom
)

// Navigate applies a navigation step.
func (c *Cursor) Navigate(nav Nav, listLen, height int) {
	page := max(height/2, 1)
	switch nav {
	case NavDown:
		c.Move(1, listLen, height)
	case NavUp:
		c.Move(-1, listLen, height)
	case NavPageDown:
		c.Move(page, listLen, height)
	case NavPageUp:
		c.Move(-page, listLen, height)
	case NavTop:
		c.Jump(0, listLen, height)
	case NavBottom:
		c.Jump(listLen-1, listLen, height)
	}
}

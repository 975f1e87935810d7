package host

// Cursor is a pointer shape name.
type Cursor string

// Pointer shapes used by drag interactions.
const (
	CursorDefault   Cursor = ""
	CursorEWResize  Cursor = "ew-resize"
	CursorColResize Cursor = "col-resize"
	CursorRowResize Cursor = "row-resize"
	CursorGrabbing  Cursor = "grabbing"
)

// Document holds global presentation state that a drag overrides for its
// duration: the pointer shape and whether text selection is allowed.
type Document struct {
	cursor     Cursor
	noSelect   bool
	overridden int
}

// SetCursor changes the global pointer shape.
func (d *Document) SetCursor(c Cursor) {
	d.cursor = c
}

// Cursor returns the global pointer shape.
func (d *Document) Cursor() Cursor {
	return d.cursor
}

// SuppressSelection toggles text selection suppression.
func (d *Document) SuppressSelection(on bool) {
	d.noSelect = on
}

// SelectionSuppressed reports whether text selection is suppressed.
func (d *Document) SelectionSuppressed() bool {
	return d.noSelect
}

// BeginDrag applies the drag presentation: cursor c and no selection.
func (d *Document) BeginDrag(c Cursor) {
	d.overridden++
	d.SetCursor(c)
	d.SuppressSelection(true)
}

// EndDrag restores the default presentation.
func (d *Document) EndDrag() {
	if d.overridden > 0 {
		d.overridden--
	}
	d.Reset()
}

// Reset restores the default cursor and selection.
func (d *Document) Reset() {
	d.cursor = CursorDefault
	d.noSelect = false
}

// Dragging reports whether a drag presentation is active.
func (d *Document) Dragging() bool {
	return d.overridden > 0
}

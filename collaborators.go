package zscroll

// Container is the scrollable region a controller is bound to. Lengths are
// measured in cells.
type Container interface {
	// Overflow reports the native overflow behaviour, used when the
	// configured axes are auto-detected.
	Overflow(axis Axis) Overflow
	// ViewportLength is the visible size of the scroll box.
	ViewportLength(axis Axis) float64
	// ContentLength is the full scrollable size of the content.
	ContentLength(axis Axis) float64
	// BarLength is the natural length of the bar drawn along axis.
	BarLength(axis Axis) float64
	// BarThickness is the cross size of the bar drawn along axis.
	BarThickness(axis Axis) float64
	// ScrollPosition is the current native scroll position.
	ScrollPosition(axis Axis) float64
}

// Interaction is the visual interaction state handed to the renderer.
type Interaction struct {
	Hovering bool
	Dragging bool
	DragAxis Axis
	AutoHide bool
}

// BarsShown reports whether auto-hidden bars should currently be drawn.
func (i Interaction) BarsShown() bool {
	return !i.AutoHide || i.Hovering || i.Dragging
}

// Renderer receives pure rendering side effects. Return values are never
// consulted.
type Renderer interface {
	CreateBars(axes Axes)
	SetBarGeometry(axis Axis, trackLength, draggerLength float64)
	SetDraggerPosition(axis Axis, position float64)
	SetBarVisible(axis Axis, visible bool)
	SetContainerScrollExtent(axis Axis, extent float64)
	SetInteraction(state Interaction)
}

// Animator moves the underlying viewport.
type Animator interface {
	// Animate moves the viewport by delta over a short interval. It returns
	// immediately.
	Animate(axis Axis, delta float64)
	// Jump sets the viewport position without animation.
	Jump(axis Axis, position float64)
}

// Store persists scroll offsets between sessions.
type Store interface {
	Load(key string) (value float64, ok bool, err error)
	Save(key string, value float64) error
}

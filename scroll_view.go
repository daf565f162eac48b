package zscroll

import (
	"log"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/zscroll/keybind"
)

// ContentSizer is implemented by content that knows its full size in cells.
type ContentSizer interface {
	ContentSize() (width, height int)
}

// ScrollView shows a window onto a larger content primitive and scrolls it
// with custom bars. It is the tcell container, renderer and input adapter of
// a scroll controller; call Attach to bind it.
type ScrollView struct {
	*Box

	content Primitive

	overflow    [2]Overflow
	placement   Placement
	bars        [2]*ScrollBar
	extent      [2]float64
	position    [2]float64
	interaction Interaction

	ctrl   *Controller
	layout layoutKey
}

// layoutKey captures everything that requires a controller update when it
// changes.
type layoutKey struct {
	x, y, width, height int
	contentWidth        int
	contentHeight       int
}

// NewScrollView returns a scroll view around content. Both axes overflow
// automatically.
func NewScrollView(content Primitive) *ScrollView {
	return &ScrollView{
		Box:      NewBox(),
		content:  content,
		overflow: [2]Overflow{OverflowAuto, OverflowAuto},
	}
}

// SetOverflow sets the overflow behaviour of one axis. It only matters for
// axis auto-detection and must be set before Attach.
func (v *ScrollView) SetOverflow(axis Axis, overflow Overflow) *ScrollView {
	v.overflow[axis] = overflow
	return v
}

// Content returns the scrolled primitive.
func (v *ScrollView) Content() Primitive {
	return v.content
}

// Controller returns the bound controller, or nil before Attach.
func (v *ScrollView) Controller() *Controller {
	return v.ctrl
}

// Attach binds the view into r. The view is always its own container and
// renderer; a nil animator moves the view without animation.
func (v *ScrollView) Attach(r *Registry, b Binding, config Config) (*Controller, error) {
	b.Container = v
	b.Renderer = v
	if b.Animator == nil {
		b.Animator = JumpAnimator{Viewport: v}
	}
	v.placement = config.Placement
	c, err := r.Bind(b, config)
	v.ctrl = c
	v.layout = v.currentLayout()
	return c, err
}

// Overflow implements Container.
func (v *ScrollView) Overflow(axis Axis) Overflow {
	return v.overflow[axis]
}

// ViewportLength implements Container.
func (v *ScrollView) ViewportLength(axis Axis) float64 {
	_, _, width, height := v.viewportRect()
	if axis == AxisX {
		return float64(width)
	}
	return float64(height)
}

// ContentLength implements Container.
func (v *ScrollView) ContentLength(axis Axis) float64 {
	width, height := v.contentSize()
	if axis == AxisX {
		return float64(width)
	}
	return float64(height)
}

// BarLength implements Container. Bars run along the whole viewport.
func (v *ScrollView) BarLength(axis Axis) float64 {
	return v.ViewportLength(axis)
}

// BarThickness implements Container.
func (v *ScrollView) BarThickness(Axis) float64 {
	return 1
}

// ScrollPosition implements Container and Viewport.
func (v *ScrollView) ScrollPosition(axis Axis) float64 {
	return v.position[axis]
}

// SetScrollPosition implements Viewport.
func (v *ScrollView) SetScrollPosition(axis Axis, position float64) {
	if v.position[axis] != position {
		v.position[axis] = position
		v.MarkDirty()
	}
}

// CreateBars implements Renderer.
func (v *ScrollView) CreateBars(axes Axes) {
	for _, axis := range allAxes {
		if axes.Has(axis) && v.bars[axis] == nil {
			v.bars[axis] = NewScrollBar(axis)
		}
	}
	v.MarkDirty()
}

// SetBarGeometry implements Renderer.
func (v *ScrollView) SetBarGeometry(axis Axis, trackLength, draggerLength float64) {
	if bar := v.bars[axis]; bar != nil {
		bar.SetGeometry(trackLength, draggerLength)
		v.MarkDirty()
	}
}

// SetDraggerPosition implements Renderer.
func (v *ScrollView) SetDraggerPosition(axis Axis, position float64) {
	if bar := v.bars[axis]; bar != nil {
		bar.SetPosition(position)
		v.MarkDirty()
	}
}

// SetBarVisible implements Renderer.
func (v *ScrollView) SetBarVisible(axis Axis, visible bool) {
	if bar := v.bars[axis]; bar != nil {
		bar.SetVisible(visible)
		v.MarkDirty()
	}
}

// SetContainerScrollExtent implements Renderer.
func (v *ScrollView) SetContainerScrollExtent(axis Axis, extent float64) {
	v.extent[axis] = extent
}

// SetInteraction implements Renderer.
func (v *ScrollView) SetInteraction(state Interaction) {
	if v.interaction != state {
		v.interaction = state
		v.MarkDirty()
	}
}

// Bar returns the bar of an axis, if it was created.
func (v *ScrollView) Bar(axis Axis) (*ScrollBar, bool) {
	bar := v.bars[axis]
	return bar, bar != nil
}

func (v *ScrollView) contentSize() (int, int) {
	switch c := v.content.(type) {
	case nil:
		return 0, 0
	case ContentSizer:
		return c.ContentSize()
	default:
		_, _, width, height := c.GetRect()
		return width, height
	}
}

// viewportRect returns the visible content area. Outside placement reserves
// a one-cell gutter for every created bar.
func (v *ScrollView) viewportRect() (int, int, int, int) {
	x, y, width, height := v.GetInnerRect()
	if v.placement == PlacementOutside {
		if v.bars[AxisY] != nil {
			width--
		}
		if v.bars[AxisX] != nil {
			height--
		}
	}
	return x, y, max(width, 0), max(height, 0)
}

func (v *ScrollView) currentLayout() layoutKey {
	x, y, width, height := v.GetInnerRect()
	contentWidth, contentHeight := v.contentSize()
	return layoutKey{x: x, y: y, width: width, height: height, contentWidth: contentWidth, contentHeight: contentHeight}
}

// sync updates the controller when the view or its content changed size.
func (v *ScrollView) sync() {
	if v.ctrl == nil {
		return
	}
	key := v.currentLayout()
	if key == v.layout {
		return
	}
	v.layout = key

	var err error
	if v.ctrl.Active() {
		err = v.ctrl.Update()
	} else {
		err = v.ctrl.Initialize()
	}
	if err != nil {
		log.Printf("zscroll: scroll view update: %v", err)
	}
}

func (v *ScrollView) placeBars(x, y, width, height int) {
	if bar := v.bars[AxisY]; bar != nil {
		column := x + width - 1
		if v.placement == PlacementOutside {
			column = x + width
		}
		bar.SetRect(column, y, 1, height)
	}
	if bar := v.bars[AxisX]; bar != nil {
		row := y + height - 1
		if v.placement == PlacementOutside {
			row = y + height
		}
		bar.SetRect(x, row, width, 1)
	}
}

// Draw draws the visible part of the content and the bars.
func (v *ScrollView) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)
	v.sync()

	x, y, width, height := v.viewportRect()
	if v.bars[AxisX] != nil {
		width = min(width, int(v.extent[AxisX]))
	}
	if v.bars[AxisY] != nil {
		height = min(height, int(v.extent[AxisY]))
	}

	if v.content != nil && width > 0 && height > 0 {
		contentWidth, contentHeight := v.contentSize()
		left := x - int(math.Round(v.position[AxisX]))
		top := y - int(math.Round(v.position[AxisY]))
		v.content.SetRect(left, top, max(contentWidth, width), max(contentHeight, height))
		v.content.Draw(newClipScreen(screen, x, y, width, height))
	}

	v.placeBars(x, y, width, height)
	for _, bar := range v.bars {
		if bar != nil {
			bar.draw(screen, v.interaction)
		}
	}
	v.MarkClean()
}

// HasFocus reports whether the view or its content has focus.
func (v *ScrollView) HasFocus() bool {
	return v.Box.HasFocus() || (v.content != nil && v.content.HasFocus())
}

// target returns the tag of the element input is aimed at.
func (v *ScrollView) target() string {
	if t, ok := v.content.(Tagger); ok {
		return t.Tag()
	}
	return ""
}

// InputHandler scrolls on the scroll keys and passes everything else to the
// content.
func (v *ScrollView) InputHandler(event *tcell.EventKey) Command {
	if v.ctrl != nil && v.ctrl.Router().HandleKey(keybind.EventName(event), v.target()) {
		return BatchCommand{ConsumeEventCommand{}, RedrawCommand{}}
	}
	if v.content != nil {
		return v.content.InputHandler(event)
	}
	return nil
}

// MouseHandler drives hover, dragging, track clicks and the wheel. While a
// dragger is held the view captures the mouse, so the release is seen
// wherever it happens.
func (v *ScrollView) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if v.ctrl == nil {
		return v.Box.MouseHandler(action, event)
	}
	x, y := event.Position()
	inside := v.InRect(x, y)
	router := v.ctrl.Router()
	dragging, _ := v.ctrl.Dragging()
	before := v.interaction

	var cmd Command
	switch action {
	case MouseMove:
		if dragging {
			if router.DragTo(float64(x), float64(y)) {
				cmd = RedrawCommand{}
			}
			return v, AppendCommand(cmd, ConsumeEventCommand{})
		}
		if inside {
			v.ctrl.PointerEnter()
		} else {
			v.ctrl.PointerLeave()
		}
	case MouseLeftDown:
		if !inside {
			return nil, nil
		}
		for _, bar := range v.bars {
			if bar == nil || !bar.Visible() || !bar.InRect(x, y) {
				continue
			}
			focus := BatchCommand{SetFocusCommand{Target: v}, ConsumeEventCommand{}, RedrawCommand{}}
			if bar.OnDragger(x, y) {
				if router.BeginDrag(bar.Axis(), float64(x), float64(y)) {
					return v, focus
				}
				return nil, focus
			}
			router.TrackClick(bar.Axis(), bar.TrackPosition(x, y))
			return nil, focus
		}
		return nil, BatchCommand{SetFocusCommand{Target: v}, ConsumeEventCommand{}}
	case MouseLeftUp:
		if dragging {
			router.PointerUp(!inside)
			return nil, BatchCommand{ConsumeEventCommand{}, RedrawCommand{}}
		}
		if !inside {
			v.ctrl.PointerLeave()
		}
	case MouseScrollUp, MouseScrollDown, MouseScrollLeft, MouseScrollRight:
		if !inside {
			return nil, nil
		}
		in := WheelInput{Target: v.target()}
		switch action {
		case MouseScrollUp:
			in.DeltaY = -1
		case MouseScrollDown:
			in.DeltaY = 1
		case MouseScrollLeft:
			in.DeltaX = -1
		case MouseScrollRight:
			in.DeltaX = 1
		}
		mods := event.Modifiers()
		in.Shift = mods&tcell.ModShift != 0
		in.Ctrl = mods&tcell.ModCtrl != 0
		in.Alt = mods&tcell.ModAlt != 0
		if router.HandleWheel(in) {
			return nil, BatchCommand{ConsumeEventCommand{}, RedrawCommand{}}
		}
	}

	if v.interaction != before {
		cmd = AppendCommand(cmd, RedrawCommand{})
	}
	if inside && v.content != nil && cmd == nil {
		return v.content.MouseHandler(action, event)
	}
	return nil, cmd
}

var (
	_ Container = &ScrollView{}
	_ Renderer  = &ScrollView{}
	_ Viewport  = &ScrollView{}
	_ Primitive = &ScrollView{}
)

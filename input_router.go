package zscroll

import (
	"strings"

	"github.com/xqrs/zscroll/keybind"
)

// keyStep maps a key to a scroll along one axis, either a multiple of the
// scroll increment or a jump to one end of the vertical content range.
type keyStep struct {
	bind  keybind.Keybind
	axis  Axis
	steps float64
	// edge is -1 for the start and +1 for the end of the content.
	edge int
}

func defaultKeySteps() []keyStep {
	return []keyStep{
		{bind: keybind.NewKeybind(keybind.WithKeys("left"), keybind.WithHelp("←", "left")), axis: AxisX, steps: -1},
		{bind: keybind.NewKeybind(keybind.WithKeys("right"), keybind.WithHelp("→", "right")), axis: AxisX, steps: 1},
		{bind: keybind.NewKeybind(keybind.WithKeys("up"), keybind.WithHelp("↑", "up")), axis: AxisY, steps: -1},
		{bind: keybind.NewKeybind(keybind.WithKeys("down"), keybind.WithHelp("↓", "down")), axis: AxisY, steps: 1},
		{bind: keybind.NewKeybind(keybind.WithKeys("space"), keybind.WithHelp("space", "skip")), axis: AxisY, steps: 2},
		{bind: keybind.NewKeybind(keybind.WithKeys("pgup"), keybind.WithHelp("pgup", "page up")), axis: AxisY, steps: -3},
		{bind: keybind.NewKeybind(keybind.WithKeys("pgdn"), keybind.WithHelp("pgdn", "page down")), axis: AxisY, steps: 3},
		{bind: keybind.NewKeybind(keybind.WithKeys("home"), keybind.WithHelp("home", "top")), axis: AxisY, edge: -1},
		{bind: keybind.NewKeybind(keybind.WithKeys("end"), keybind.WithHelp("end", "bottom")), axis: AxisY, edge: 1},
	}
}

// WheelInput is one wheel tick. Only the sign of the deltas is used.
type WheelInput struct {
	DeltaX, DeltaY   float64
	Shift, Ctrl, Alt bool
	// Target is the tag of the element under the pointer.
	Target string
}

// InputRouter turns keyboard, wheel and drag input into controller scrolls.
// Every handler reports whether the input was consumed.
type InputRouter struct {
	ctrl        *Controller
	keys        []keyStep
	keyboardOff map[string]struct{}
	wheelOff    map[string]struct{}
}

func newInputRouter(c *Controller) *InputRouter {
	keys := defaultKeySteps()
	for i := range keys {
		keys[i].bind.SetEnabled(c.config.Keyboard.Enable)
	}
	return &InputRouter{
		ctrl:        c,
		keys:        keys,
		keyboardOff: tagSet(c.config.Keyboard.DisableOver),
		wheelOff:    tagSet(c.config.Wheel.DisableOver),
	}
}

// Keybinds returns the scroll key bindings, in table order.
func (r *InputRouter) Keybinds() []keybind.Keybind {
	binds := make([]keybind.Keybind, 0, len(r.keys))
	for _, k := range r.keys {
		binds = append(binds, k.bind)
	}
	return binds
}

// ShortHelp returns the bindings worth a one-line hint: those of the active
// axes, without the single steps.
func (r *InputRouter) ShortHelp() []keybind.Keybind {
	var binds []keybind.Keybind
	for _, k := range r.keys {
		if r.ctrl.axes.Has(k.axis) && (k.edge != 0 || k.steps > 1 || k.steps < -1) {
			binds = append(binds, k.bind)
		}
	}
	return binds
}

// FullHelp groups the bindings of the active axes by axis, with the jumps
// to either end in their own column.
func (r *InputRouter) FullHelp() [][]keybind.Keybind {
	var vertical, horizontal, edges []keybind.Keybind
	for _, k := range r.keys {
		switch {
		case !r.ctrl.axes.Has(k.axis):
		case k.edge != 0:
			edges = append(edges, k.bind)
		case k.axis == AxisY:
			vertical = append(vertical, k.bind)
		default:
			horizontal = append(horizontal, k.bind)
		}
	}
	return [][]keybind.Keybind{vertical, horizontal, edges}
}

func excluded(set map[string]struct{}, target string) bool {
	if target == "" {
		return false
	}
	_, ok := set[strings.ToLower(target)]
	return ok
}

// HandleKey scrolls for a named key (see package keybind) pressed while an
// element with the given tag had focus.
func (r *InputRouter) HandleKey(name, target string) bool {
	c := r.ctrl
	if !c.config.Keyboard.Enable || excluded(r.keyboardOff, target) {
		return false
	}
	for _, step := range r.keys {
		if !keybind.MatchesName(name, step.bind) {
			continue
		}
		delta := step.steps * c.config.ScrollIncrement
		if step.edge != 0 {
			// The range is read now; content may have changed since the
			// last update.
			extent := c.container.ContentLength(AxisY) - c.container.ViewportLength(AxisY)
			delta = float64(step.edge) * extent
		}
		return c.scroll(delta, step.axis)
	}
	return false
}

// HandleWheel scrolls one increment in the wheel's dominant direction.
// Wheel acceleration is discarded. Ticks with ctrl or alt held are left to
// the terminal.
func (r *InputRouter) HandleWheel(in WheelInput) bool {
	c := r.ctrl
	if !c.config.Wheel.Enable || excluded(r.wheelOff, in.Target) {
		return false
	}
	if in.Ctrl || in.Alt {
		return false
	}
	inc := c.config.ScrollIncrement
	switch {
	case in.DeltaY != 0:
		axis := c.config.Wheel.Axis
		if in.Shift {
			axis = AxisX
		}
		return c.scroll(sign(in.DeltaY)*inc, axis)
	case in.DeltaX != 0:
		return c.scroll(sign(in.DeltaX)*inc, AxisX)
	}
	return false
}

// BeginDrag starts dragging the dragger of axis from pointer (x, y). It
// fails when a drag is already active or the bar is hidden.
func (r *InputRouter) BeginDrag(axis Axis, x, y float64) bool {
	return r.ctrl.beginDrag(axis, x, y)
}

// DragTo moves an active drag to pointer (x, y). The pointer delta along the
// drag axis is converted into a content delta through the bar ratio and the
// viewport follows it without animation.
func (r *InputRouter) DragTo(x, y float64) bool {
	return r.ctrl.dragTo(x, y)
}

// PointerUp ends any active drag. outside reports whether the pointer was
// released outside the widget.
func (r *InputRouter) PointerUp(outside bool) {
	r.ctrl.pointerUp(outside)
}

// TrackClick jumps so that the dragger is centred on position, measured
// along the bar from its start.
func (r *InputRouter) TrackClick(axis Axis, position float64) bool {
	c := r.ctrl
	s := c.scrollers[axis]
	if s == nil || !s.geometry.Visible || s.geometry.Ratio <= 0 {
		return false
	}
	target := (position - s.geometry.DraggerLength/2) / s.geometry.Ratio
	delta := target - s.offset
	if delta == 0 {
		return false
	}
	return c.scroll(delta, axis)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

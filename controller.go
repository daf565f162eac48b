package zscroll

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotInitialized is returned by operations that need an active
	// controller.
	ErrNotInitialized = errors.New("zscroll: controller not initialized")
	// ErrNoController is returned when no controller is bound to a container.
	ErrNoController = errors.New("zscroll: no controller bound to container")
)

type lifecycle uint8

const (
	stateUninitialized lifecycle = iota
	stateActive
)

// Binding names the collaborators of one controller.
type Binding struct {
	// ID is a stable, caller-supplied identifier used for persistence keys.
	// An empty ID disables persistence.
	ID        string
	Container Container
	Renderer  Renderer
	Animator  Animator
	Store     Store
}

// interactionState is shared across both axes of an instance.
type interactionState struct {
	hovering bool
	dragging bool
	dragAxis Axis
	anchorX  float64
	anchorY  float64
}

// Controller converts scroll input into clamped offset updates and keeps the
// bars in sync with the container.
//
// A Controller is not safe for concurrent use; all calls must come from the
// goroutine that handles input events.
type Controller struct {
	id        string
	config    Config
	container Container
	renderer  Renderer
	animator  Animator
	store     Store

	state     lifecycle
	created   bool
	axes      Axes
	scrollers [2]*AxisScroller

	interaction interactionState
	router      *InputRouter
}

// NewController returns an uninitialized controller. Call Initialize to
// create the bars.
//
// The zero Config selects DefaultConfig. Any other config is taken as
// given, so its boolean switches should start from DefaultConfig.
func NewController(b Binding, config Config) *Controller {
	if reflect.ValueOf(config).IsZero() {
		config = DefaultConfig()
	}
	c := &Controller{
		id:        b.ID,
		config:    config.normalize(),
		container: b.Container,
		renderer:  b.Renderer,
		animator:  b.Animator,
		store:     b.Store,
	}
	if c.renderer == nil {
		c.renderer = nopRenderer{}
	}
	if c.animator == nil {
		c.animator = nopAnimator{}
	}
	c.router = newInputRouter(c)
	return c
}

// ID returns the persistence identifier.
func (c *Controller) ID() string {
	return c.id
}

// Config returns the normalized configuration.
func (c *Controller) Config() Config {
	return c.config
}

// Active reports whether the controller has been initialized.
func (c *Controller) Active() bool {
	return c.state == stateActive
}

// Axes returns the active axes. It is empty before initialization.
func (c *Controller) Axes() Axes {
	return c.axes
}

// Router returns the input router feeding this controller.
func (c *Controller) Router() *InputRouter {
	return c.router
}

// Scroller returns the scroller of an axis, if that axis is active.
func (c *Controller) Scroller(axis Axis) (*AxisScroller, bool) {
	s := c.scrollers[axis]
	return s, s != nil
}

// Offset returns the logical offset of an axis, or 0 if it is not active.
func (c *Controller) Offset(axis Axis) float64 {
	if s := c.scrollers[axis]; s != nil {
		return s.offset
	}
	return 0
}

// Initialize creates the bars and performs the first update. Calling it on
// an active controller is equivalent to calling Update. If no axis is
// configured or overflowing, it does nothing and the controller stays
// uninitialized.
func (c *Controller) Initialize() error {
	if c.state == stateActive {
		return c.Update()
	}

	axes := c.config.Axes
	if axes == AxesAuto {
		for _, axis := range allAxes {
			if c.container.Overflow(axis).scrollable() {
				axes |= axisBit(axis)
			}
		}
	}
	if axes == AxesAuto {
		return nil
	}

	c.axes = axes
	for _, axis := range allAxes {
		if axes.Has(axis) {
			c.scrollers[axis] = newAxisScroller(c, axis)
		}
	}
	c.renderer.CreateBars(axes)
	c.renderer.SetInteraction(c.visual())
	c.state = stateActive
	if !c.created {
		c.created = true
		if c.config.Callbacks.OnCreate != nil {
			c.config.Callbacks.OnCreate()
		}
	}
	return c.Update()
}

// Update recomputes bar geometry and the scroll range of every active axis
// and restores offsets, either from the store or from the container's
// native position. It is safe to call repeatedly.
func (c *Controller) Update() error {
	if c.state != stateActive {
		return ErrNotInitialized
	}

	var visible [2]bool
	for _, s := range c.activeScrollers() {
		viewport := c.container.ViewportLength(s.axis)
		content := c.container.ContentLength(s.axis)
		visible[s.axis] = viewport > 0 && content > viewport
		s.maxOffset = 0
		if visible[s.axis] {
			s.maxOffset = maxOffset(content, viewport)
		}
	}

	for _, s := range c.activeScrollers() {
		axis := s.axis
		viewport := c.container.ViewportLength(axis)
		var overlap float64
		if other := axis.other(); c.config.Placement == PlacementInside && c.scrollers[other] != nil && visible[other] {
			overlap = c.container.BarThickness(other)
		}
		s.geometry = ComputeGeometry(GeometryInput{
			BarLength:      c.container.BarLength(axis),
			Overlap:        overlap,
			ViewportLength: viewport,
			ContentLength:  c.container.ContentLength(axis),
			MinSize:        c.config.MinSize,
		})

		c.renderer.SetContainerScrollExtent(axis, viewport)
		c.renderer.SetBarGeometry(axis, s.geometry.TrackLength, s.geometry.DraggerLength)
		c.renderer.SetBarVisible(axis, s.geometry.Visible)
		c.restore(s)
	}

	if c.config.Callbacks.OnUpdate != nil {
		c.config.Callbacks.OnUpdate()
	}
	return nil
}

// targeter is implemented by animators that can report where a running
// animation ends.
type targeter interface {
	Target(axis Axis) (float64, bool)
}

// restore reloads an axis offset from the store, falling back to the
// container's native position. While an animation is in flight its target
// stands in for the native position.
func (c *Controller) restore(s *AxisScroller) {
	native := c.container.ScrollPosition(s.axis)
	if t, ok := c.animator.(targeter); ok {
		if target, moving := t.Target(s.axis); moving {
			native = target
		}
	}
	s.offset = clamp(native, 0, s.maxOffset)
	if s.offset != native {
		c.animator.Jump(s.axis, s.offset)
	}
	if v, ok := s.restored(); ok && v != s.offset {
		s.ApplyDelta(v-s.offset, true)
	}
	c.renderer.SetDraggerPosition(s.axis, s.DraggerPosition())
}

func (c *Controller) activeScrollers() []*AxisScroller {
	scrollers := make([]*AxisScroller, 0, len(c.scrollers))
	for _, s := range c.scrollers {
		if s != nil {
			scrollers = append(scrollers, s)
		}
	}
	return scrollers
}

// ScrollTarget holds optional absolute scroll positions.
type ScrollTarget struct {
	X, Y *float64
}

// To returns a target for both axes.
func To(x, y float64) ScrollTarget {
	return ScrollTarget{X: &x, Y: &y}
}

// ToX returns a horizontal-only target.
func ToX(x float64) ScrollTarget {
	return ScrollTarget{X: &x}
}

// ToY returns a vertical-only target.
func ToY(y float64) ScrollTarget {
	return ScrollTarget{Y: &y}
}

// ScrollTo scrolls each given axis to an absolute position through the
// regular delta path, animated when smooth scrolling is enabled.
func (c *Controller) ScrollTo(target ScrollTarget) error {
	if c.state != stateActive {
		return fmt.Errorf("scroll to: %w", ErrNotInitialized)
	}
	if target.X != nil {
		c.scroll(*target.X-c.Offset(AxisX), AxisX)
	}
	if target.Y != nil {
		c.scroll(*target.Y-c.Offset(AxisY), AxisY)
	}
	return nil
}

// scroll applies a non-drag delta to an axis and reports whether it was
// accepted.
func (c *Controller) scroll(delta float64, axis Axis) bool {
	s := c.scrollers[axis]
	if c.state != stateActive || s == nil {
		return false
	}
	accepted, _ := s.ApplyDelta(delta, false)
	return accepted
}

// Hovering reports whether the pointer is over the widget.
func (c *Controller) Hovering() bool {
	return c.interaction.hovering
}

// Dragging reports whether a dragger is being dragged, and along which axis.
func (c *Controller) Dragging() (bool, Axis) {
	return c.interaction.dragging, c.interaction.dragAxis
}

// PointerEnter marks the widget as hovered.
func (c *Controller) PointerEnter() {
	if c.interaction.hovering {
		return
	}
	c.interaction.hovering = true
	c.renderer.SetInteraction(c.visual())
}

// PointerLeave clears the hover state unless a drag is active, so bars do
// not flicker while the pointer crosses bar boundaries mid-drag.
func (c *Controller) PointerLeave() {
	if !c.interaction.hovering || c.interaction.dragging {
		return
	}
	c.interaction.hovering = false
	c.renderer.SetInteraction(c.visual())
}

func (c *Controller) beginDrag(axis Axis, x, y float64) bool {
	s := c.scrollers[axis]
	if c.state != stateActive || s == nil || !s.geometry.Visible || c.interaction.dragging {
		return false
	}
	c.interaction = interactionState{
		hovering: true,
		dragging: true,
		dragAxis: axis,
		anchorX:  x,
		anchorY:  y,
	}
	c.renderer.SetInteraction(c.visual())
	return true
}

func (c *Controller) dragTo(x, y float64) bool {
	if !c.interaction.dragging {
		return false
	}
	axis := c.interaction.dragAxis
	d := x - c.interaction.anchorX
	if axis == AxisY {
		d = y - c.interaction.anchorY
	}
	c.interaction.anchorX, c.interaction.anchorY = x, y

	s := c.scrollers[axis]
	if d == 0 || s == nil || s.geometry.Ratio <= 0 {
		return false
	}
	accepted, _ := s.ApplyDelta(d/s.geometry.Ratio, true)
	return accepted
}

// pointerUp ends any drag. A release outside the widget also clears hover.
func (c *Controller) pointerUp(outside bool) {
	before := c.interaction
	c.interaction.dragging = false
	c.interaction.anchorX, c.interaction.anchorY = 0, 0
	if outside {
		c.interaction.hovering = false
	}
	if before != c.interaction {
		c.renderer.SetInteraction(c.visual())
	}
}

func (c *Controller) visual() Interaction {
	return Interaction{
		Hovering: c.interaction.hovering,
		Dragging: c.interaction.dragging,
		DragAxis: c.interaction.dragAxis,
		AutoHide: c.config.AutoHide,
	}
}

type nopRenderer struct{}

func (nopRenderer) CreateBars(Axes)                        {}
func (nopRenderer) SetBarGeometry(Axis, float64, float64)  {}
func (nopRenderer) SetDraggerPosition(Axis, float64)       {}
func (nopRenderer) SetBarVisible(Axis, bool)               {}
func (nopRenderer) SetContainerScrollExtent(Axis, float64) {}
func (nopRenderer) SetInteraction(Interaction)             {}

type nopAnimator struct{}

func (nopAnimator) Animate(Axis, float64) {}
func (nopAnimator) Jump(Axis, float64)    {}

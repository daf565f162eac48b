package zscroll

import "log"

// AxisScroller holds the scroll state of one axis and applies clamped deltas
// to it.
type AxisScroller struct {
	axis      Axis
	offset    float64
	maxOffset float64
	geometry  Geometry

	ctrl *Controller
}

func newAxisScroller(ctrl *Controller, axis Axis) *AxisScroller {
	return &AxisScroller{axis: axis, ctrl: ctrl, geometry: Geometry{Ratio: 1}}
}

// Axis returns the scroller's axis.
func (s *AxisScroller) Axis() Axis {
	return s.axis
}

// Offset returns the current logical scroll offset.
func (s *AxisScroller) Offset() float64 {
	return s.offset
}

// MaxOffset returns the largest reachable offset.
func (s *AxisScroller) MaxOffset() float64 {
	return s.maxOffset
}

// Geometry returns the bar layout computed by the last update.
func (s *AxisScroller) Geometry() Geometry {
	return s.geometry
}

// DraggerPosition returns the dragger offset along the track.
func (s *AxisScroller) DraggerPosition() float64 {
	return s.geometry.Ratio * s.offset
}

// ApplyDelta moves the offset by delta. A delta pointing past a bound is
// rejected only when the offset already sits on that bound; otherwise the
// target is clamped. Drag deltas jump the viewport directly, all others are
// animated when smooth scrolling is enabled.
//
// The input that produced the delta should be treated as consumed only when
// accepted is true.
func (s *AxisScroller) ApplyDelta(delta float64, drag bool) (accepted bool, applied float64) {
	target := s.offset + delta
	if (target > s.maxOffset && s.offset == s.maxOffset) || (target < 0 && s.offset == 0) {
		return false, 0
	}

	target = clamp(target, 0, s.maxOffset)
	applied = target - s.offset
	s.offset = target

	c := s.ctrl
	switch {
	case drag, !c.config.SmoothScrolling:
		c.animator.Jump(s.axis, s.offset)
	default:
		c.animator.Animate(s.axis, applied)
	}
	c.renderer.SetDraggerPosition(s.axis, s.DraggerPosition())
	s.persist()
	if c.config.Callbacks.OnScroll != nil {
		c.config.Callbacks.OnScroll(s.axis)
	}
	return true, applied
}

func (s *AxisScroller) persist() {
	c := s.ctrl
	if c.store == nil || c.id == "" {
		return
	}
	key := storeKey(c.id, s.axis)
	if err := c.store.Save(key, s.offset); err != nil {
		log.Printf("zscroll: store save %q: %v", key, err)
	}
}

// restored returns the persisted offset, if any.
func (s *AxisScroller) restored() (float64, bool) {
	c := s.ctrl
	if c.store == nil || c.id == "" {
		return 0, false
	}
	key := storeKey(c.id, s.axis)
	v, ok, err := c.store.Load(key)
	if err != nil {
		log.Printf("zscroll: store load %q: %v", key, err)
		return 0, false
	}
	return v, ok
}

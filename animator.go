package zscroll

import (
	"math"
	"time"
)

// FrameInterval is the delay between two animation frames.
var FrameInterval = 16 * time.Millisecond

// Viewport is the native scroll position an Animator moves.
type Viewport interface {
	ScrollPosition(axis Axis) float64
	SetScrollPosition(axis Axis, position float64)
}

// JumpAnimator moves a viewport without animation.
type JumpAnimator struct {
	Viewport Viewport
}

// Animate implements Animator by jumping to the end position.
func (a JumpAnimator) Animate(axis Axis, delta float64) {
	a.Viewport.SetScrollPosition(axis, a.Viewport.ScrollPosition(axis)+delta)
}

// Jump implements Animator.
func (a JumpAnimator) Jump(axis Axis, position float64) {
	a.Viewport.SetScrollPosition(axis, position)
}

type animation struct {
	from, to float64
	start    time.Time
}

// SmoothScroller is an Animator that eases a viewport towards its target
// over a fixed duration. Deltas arriving mid-animation extend the target;
// Jump cancels the animation of its axis.
//
// SmoothScroller is driven either by Step, called by the owner once per
// frame, or by a scheduler set with SetScheduler. It is not safe for
// concurrent use; the scheduler must run ticks on the event-loop goroutine.
type SmoothScroller struct {
	viewport Viewport
	duration time.Duration
	easing   string

	now      func() time.Time
	schedule func(tick func())
	ticking  bool

	active [2]*animation
}

// NewSmoothScroller returns a SmoothScroller for viewport.
func NewSmoothScroller(viewport Viewport, config AnimationConfig) *SmoothScroller {
	if config.Duration < 0 {
		config.Duration = DefaultSmoothDuration
	}
	return &SmoothScroller{
		viewport: viewport,
		duration: config.Duration,
		easing:   config.Easing,
		now:      time.Now,
	}
}

// SetScheduler sets the function used to request the next frame. schedule
// must arrange for tick to run once, later, on the event-loop goroutine.
func (s *SmoothScroller) SetScheduler(schedule func(tick func())) *SmoothScroller {
	s.schedule = schedule
	return s
}

// SetClock replaces the time source.
func (s *SmoothScroller) SetClock(now func() time.Time) *SmoothScroller {
	s.now = now
	return s
}

// Animate implements Animator.
func (s *SmoothScroller) Animate(axis Axis, delta float64) {
	current := s.viewport.ScrollPosition(axis)
	target := current + delta
	if a := s.active[axis]; a != nil {
		target = a.to + delta
	}
	if s.duration == 0 {
		s.Jump(axis, target)
		return
	}
	s.active[axis] = &animation{from: current, to: target, start: s.now()}
	s.requestFrame()
}

// Jump implements Animator.
func (s *SmoothScroller) Jump(axis Axis, position float64) {
	s.active[axis] = nil
	s.viewport.SetScrollPosition(axis, position)
}

// Animating reports whether any axis is still moving.
func (s *SmoothScroller) Animating() bool {
	return s.active[AxisX] != nil || s.active[AxisY] != nil
}

// Target returns the position an axis is animating towards.
func (s *SmoothScroller) Target(axis Axis) (float64, bool) {
	if a := s.active[axis]; a != nil {
		return a.to, true
	}
	return 0, false
}

// Step advances every running animation to time now and reports whether any
// is still running.
func (s *SmoothScroller) Step(now time.Time) bool {
	for _, axis := range allAxes {
		a := s.active[axis]
		if a == nil {
			continue
		}
		progress := float64(now.Sub(a.start)) / float64(s.duration)
		if progress >= 1 {
			s.active[axis] = nil
			s.viewport.SetScrollPosition(axis, a.to)
			continue
		}
		t := Ease(s.easing, max(progress, 0))
		s.viewport.SetScrollPosition(axis, a.from+(a.to-a.from)*t)
	}
	return s.Animating()
}

func (s *SmoothScroller) requestFrame() {
	if s.schedule == nil || s.ticking {
		return
	}
	s.ticking = true
	s.schedule(s.tick)
}

func (s *SmoothScroller) tick() {
	s.ticking = false
	if s.Step(s.now()) {
		s.requestFrame()
	}
}

// Ease maps linear progress t in [0, 1] through a named easing curve.
// Unknown names use smoothstep.
func Ease(easing string, t float64) float64 {
	switch easing {
	case "linear":
		return t
	case "ease-in-out":
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	case "ease-out":
		return 1 - math.Pow(1-t, 3)
	default:
		return t * t * (3 - 2*t)
	}
}

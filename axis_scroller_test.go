package zscroll

import "testing"

func TestAxisScroller_EdgeSaturation(t *testing.T) {
	tests := []struct {
		name         string
		start, delta float64
		accepted     bool
		offset       float64
	}{
		{"past top at top", 0, -5, false, 0},
		{"zero at top", 0, 0, true, 0},
		{"inside range", 10, 5, true, 15},
		{"clamped to bottom", 78, 5, true, 80},
		{"past bottom at bottom", 80, 5, false, 80},
		{"clamped to top", 30, -100, true, 0},
		{"back from bottom", 80, -100, true, 0},
		{"full range", 0, 80, true, 80},
		{"huge overshoot", 40, 1e9, true, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestController(t, newFakeContainer(20, 100), jumpingConfig(), nil)
			s, _ := c.Scroller(AxisY)
			s.offset = tt.start

			accepted, applied := s.ApplyDelta(tt.delta, false)
			if accepted != tt.accepted || s.Offset() != tt.offset {
				t.Errorf("ApplyDelta(%v) from %v = %v, offset %v; want %v, offset %v",
					tt.delta, tt.start, accepted, s.Offset(), tt.accepted, tt.offset)
			}
			if accepted && applied != tt.offset-tt.start {
				t.Errorf("applied = %v, want %v", applied, tt.offset-tt.start)
			}
		})
	}
}

func TestAxisScroller_OffsetStaysInRange(t *testing.T) {
	c, _ := newTestController(t, newFakeContainer(20, 100), jumpingConfig(), nil)
	s, _ := c.Scroller(AxisY)

	starts := []float64{0, 0.5, 1, 40, 79, 79.5, 80}
	deltas := []float64{-1e9, -81, -80, -40.25, -3, -0.125, 0, 0.125, 3, 40.25, 80, 81, 1e9}
	for _, start := range starts {
		for _, delta := range deltas {
			for _, drag := range []bool{false, true} {
				s.offset = start
				accepted, _ := s.ApplyDelta(delta, drag)
				if s.Offset() < 0 || s.Offset() > s.MaxOffset() {
					t.Errorf("ApplyDelta(%v, %v) from %v left offset %v outside [0, %v]",
						delta, drag, start, s.Offset(), s.MaxOffset())
				}
				if !accepted && s.Offset() != start {
					t.Errorf("rejected ApplyDelta(%v) from %v moved offset to %v", delta, start, s.Offset())
				}
			}
		}
	}
}

func TestAxisScroller_SmoothAnimatesAppliedDelta(t *testing.T) {
	c, rec := newTestController(t, newFakeContainer(20, 100), DefaultConfig(), nil)
	s, _ := c.Scroller(AxisY)

	s.ApplyDelta(75, false)
	s.ApplyDelta(10, false)
	if rec.animated[AxisY] != 80 {
		t.Errorf("animated %v, want 80", rec.animated[AxisY])
	}

	jumps := len(rec.jumps[AxisY])
	s.ApplyDelta(-10, true)
	if len(rec.jumps[AxisY]) != jumps+1 || rec.jumps[AxisY][jumps] != 70 {
		t.Errorf("drag did not jump to 70: %v", rec.jumps[AxisY])
	}
}

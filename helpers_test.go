package zscroll

import "fmt"

// fakeContainer is a Container and Viewport with fixed sizes.
type fakeContainer struct {
	overflow  [2]Overflow
	viewport  [2]float64
	content   [2]float64
	bar       [2]float64
	thickness float64
	position  [2]float64
}

func newFakeContainer(viewportY, contentY float64) *fakeContainer {
	return &fakeContainer{
		overflow:  [2]Overflow{OverflowHidden, OverflowAuto},
		viewport:  [2]float64{80, viewportY},
		content:   [2]float64{80, contentY},
		bar:       [2]float64{80, viewportY},
		thickness: 1,
	}
}

func (f *fakeContainer) Overflow(axis Axis) Overflow                    { return f.overflow[axis] }
func (f *fakeContainer) ViewportLength(axis Axis) float64               { return f.viewport[axis] }
func (f *fakeContainer) ContentLength(axis Axis) float64                { return f.content[axis] }
func (f *fakeContainer) BarLength(axis Axis) float64                    { return f.bar[axis] }
func (f *fakeContainer) BarThickness(Axis) float64                      { return f.thickness }
func (f *fakeContainer) ScrollPosition(axis Axis) float64               { return f.position[axis] }
func (f *fakeContainer) SetScrollPosition(axis Axis, position float64) { f.position[axis] = position }

// recorder is a Renderer and Animator that logs every call. Animator calls
// move viewport at once when it is set.
type recorder struct {
	viewport *fakeContainer

	calls       []string
	created     Axes
	geometry    [2][2]float64
	dragger     [2]float64
	visible     [2]bool
	extent      [2]float64
	interaction Interaction
	animated    [2]float64
	jumps       [2][]float64
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) CreateBars(axes Axes) {
	r.created = axes
	r.log("create %v", axes)
}

func (r *recorder) SetBarGeometry(axis Axis, track, dragger float64) {
	r.geometry[axis] = [2]float64{track, dragger}
	r.log("geometry %v %v %v", axis, track, dragger)
}

func (r *recorder) SetDraggerPosition(axis Axis, position float64) {
	r.dragger[axis] = position
}

func (r *recorder) SetBarVisible(axis Axis, visible bool) {
	r.visible[axis] = visible
}

func (r *recorder) SetContainerScrollExtent(axis Axis, extent float64) {
	r.extent[axis] = extent
}

func (r *recorder) SetInteraction(state Interaction) {
	r.interaction = state
	r.log("interaction %+v", state)
}

func (r *recorder) Animate(axis Axis, delta float64) {
	r.animated[axis] += delta
	if r.viewport != nil {
		r.viewport.position[axis] += delta
	}
	r.log("animate %v %v", axis, delta)
}

func (r *recorder) Jump(axis Axis, position float64) {
	r.jumps[axis] = append(r.jumps[axis], position)
	if r.viewport != nil {
		r.viewport.position[axis] = position
	}
	r.log("jump %v %v", axis, position)
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, call := range r.calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func jumpingConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothScrolling = false
	return cfg
}

// newTestController binds a controller to a vertical container and
// initializes it.
func newTestController(t interface {
	Helper()
	Fatalf(string, ...any)
}, container *fakeContainer, cfg Config, store Store) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{viewport: container}
	c := NewController(Binding{ID: "doc", Container: container, Renderer: rec, Animator: rec, Store: store}, cfg)
	if err := c.Initialize(); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	return c, rec
}

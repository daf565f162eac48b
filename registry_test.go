package zscroll

import (
	"errors"
	"testing"
)

func TestRegistry_BindIsIdempotent(t *testing.T) {
	r := NewRegistry()
	container := newFakeContainer(20, 100)
	rec := &recorder{viewport: container}
	b := Binding{ID: "doc", Container: container, Renderer: rec, Animator: rec}

	first, err := r.Bind(b, jumpingConfig())
	if err != nil {
		t.Fatal(err)
	}
	first.scroll(10, AxisY)

	cfg := jumpingConfig()
	cfg.ScrollIncrement = 99
	second, err := r.Bind(b, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("second bind created a new controller")
	}
	if second.Config().ScrollIncrement != DefaultScrollIncrement {
		t.Errorf("config replaced on rebind")
	}
	if second.Offset(AxisY) != 10 {
		t.Errorf("offset = %v, want 10", second.Offset(AxisY))
	}
	if r.Len() != 1 || rec.count("create") != 1 {
		t.Errorf("registry has %d controllers, %d create calls", r.Len(), rec.count("create"))
	}
}

func TestRegistry_ScrollToUnbound(t *testing.T) {
	r := NewRegistry()
	err := r.ScrollTo(newFakeContainer(20, 100), ToY(5))
	if !errors.Is(err, ErrNoController) {
		t.Errorf("ScrollTo error = %v, want ErrNoController", err)
	}
	if err := r.Update(newFakeContainer(20, 100)); !errors.Is(err, ErrNoController) {
		t.Errorf("Update error = %v, want ErrNoController", err)
	}
}

func TestRegistry_ScrollToAndUnbind(t *testing.T) {
	r := NewRegistry()
	container := newFakeContainer(20, 100)
	rec := &recorder{viewport: container}
	c, err := r.Bind(Binding{Container: container, Renderer: rec, Animator: rec}, jumpingConfig())
	if err != nil {
		t.Fatal(err)
	}

	if err := r.ScrollTo(container, ToY(25)); err != nil {
		t.Fatal(err)
	}
	if got, ok := r.Lookup(container); !ok || got.Offset(AxisY) != 25 {
		t.Errorf("Lookup = (%v, %v), want offset 25", got, ok)
	}

	c.Router().BeginDrag(AxisY, 0, 0)
	r.Unbind(container)
	if dragging, _ := c.Dragging(); dragging {
		t.Error("unbind left a drag active")
	}
	if _, ok := r.Lookup(container); ok {
		t.Error("container still bound")
	}
	r.Unbind(container)
}

func TestRegistry_ScrollToInactive(t *testing.T) {
	r := NewRegistry()
	container := newFakeContainer(20, 100)
	container.overflow = [2]Overflow{OverflowHidden, OverflowHidden}
	if _, err := r.Bind(Binding{Container: container}, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if err := r.ScrollTo(container, ToY(5)); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ScrollTo error = %v, want ErrNotInitialized", err)
	}
}

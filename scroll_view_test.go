package zscroll

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func numberedText(n int) string {
	var b strings.Builder
	for i := range n {
		fmt.Fprintf(&b, "line %03d\n", i)
	}
	return b.String()
}

// newTestView returns a 40x20 view over 100 short lines, drawn once.
func newTestView(t *testing.T, cfg Config) (*ScrollView, *Controller, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	view := NewScrollView(NewTextContent().SetText(numberedText(100)))
	view.SetRect(0, 0, 40, 20)
	ctrl, err := view.Attach(NewRegistry(), Binding{ID: "view"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	view.Draw(screen)
	return view, ctrl, screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func mouse(x, y int, buttons tcell.ButtonMask, mods tcell.ModMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, mods)
}

func TestScrollView_Layout(t *testing.T) {
	view, ctrl, screen := newTestView(t, jumpingConfig())

	if !ctrl.Active() || ctrl.Axes() != AxesBoth {
		t.Fatalf("controller active %v axes %v", ctrl.Active(), ctrl.Axes())
	}
	if got := rowText(screen, 0, 8); got != "line 000" {
		t.Errorf("row 0 = %q", got)
	}
	bar, _ := view.Bar(AxisY)
	if !bar.Visible() || bar.DraggerLength() != 4 {
		t.Errorf("vertical bar visible %v dragger %v", bar.Visible(), bar.DraggerLength())
	}
	if bar, _ := view.Bar(AxisX); bar.Visible() {
		t.Error("horizontal bar visible for short lines")
	}
	if mainc, _, _, _ := screen.GetContent(39, 0); mainc == '█' {
		t.Error("auto-hidden bar drawn")
	}
}

func TestScrollView_KeysScrollContent(t *testing.T) {
	view, ctrl, screen := newTestView(t, jumpingConfig())

	cmd := view.InputHandler(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	if !IsConsumed(cmd) {
		t.Fatal("page down not consumed")
	}
	if ctrl.Offset(AxisY) != 9 || view.ScrollPosition(AxisY) != 9 {
		t.Errorf("offset %v position %v, want 9", ctrl.Offset(AxisY), view.ScrollPosition(AxisY))
	}
	view.Draw(screen)
	if got := rowText(screen, 0, 8); got != "line 009" {
		t.Errorf("row 0 = %q", got)
	}

	if cmd := view.InputHandler(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); IsConsumed(cmd) {
		t.Error("plain rune consumed")
	}
}

func TestScrollView_Wheel(t *testing.T) {
	view, ctrl, _ := newTestView(t, jumpingConfig())

	_, cmd := view.MouseHandler(MouseScrollDown, mouse(5, 5, tcell.WheelDown, tcell.ModNone))
	if !IsConsumed(cmd) || ctrl.Offset(AxisY) != 3 {
		t.Errorf("wheel consumed %v offset %v", IsConsumed(cmd), ctrl.Offset(AxisY))
	}
	_, cmd = view.MouseHandler(MouseScrollDown, mouse(5, 5, tcell.WheelDown, tcell.ModCtrl))
	if IsConsumed(cmd) || ctrl.Offset(AxisY) != 3 {
		t.Error("ctrl+wheel scrolled")
	}
	_, cmd = view.MouseHandler(MouseScrollDown, mouse(50, 5, tcell.WheelDown, tcell.ModNone))
	if IsConsumed(cmd) {
		t.Error("wheel outside the view consumed")
	}
}

func TestScrollView_HoverShowsBar(t *testing.T) {
	view, ctrl, screen := newTestView(t, jumpingConfig())

	view.MouseHandler(MouseMove, mouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	if !ctrl.Hovering() {
		t.Fatal("move inside did not hover")
	}
	view.Draw(screen)
	if mainc, _, _, _ := screen.GetContent(39, 1); mainc != '█' {
		t.Errorf("bar cell = %q, want the dragger", mainc)
	}

	view.MouseHandler(MouseMove, mouse(50, 5, tcell.ButtonNone, tcell.ModNone))
	if ctrl.Hovering() {
		t.Error("move outside kept hover")
	}
}

func TestScrollView_DragCapturesMouse(t *testing.T) {
	view, ctrl, _ := newTestView(t, jumpingConfig())

	capture, _ := view.MouseHandler(MouseLeftDown, mouse(39, 1, tcell.Button1, tcell.ModNone))
	if capture != view {
		t.Fatalf("drag start captured %v", capture)
	}

	// The pointer leaves the view; the drag follows it.
	capture, _ = view.MouseHandler(MouseMove, mouse(45, 6, tcell.Button1, tcell.ModNone))
	if capture != view {
		t.Error("drag move released the capture")
	}
	if got := ctrl.Offset(AxisY); got != 25 {
		t.Errorf("offset = %v, want 25", got)
	}
	if view.ScrollPosition(AxisY) != 25 {
		t.Errorf("position = %v, want 25", view.ScrollPosition(AxisY))
	}

	view.MouseHandler(MouseLeftUp, mouse(45, 6, tcell.ButtonNone, tcell.ModNone))
	if dragging, _ := ctrl.Dragging(); dragging {
		t.Error("release did not end the drag")
	}
	if ctrl.Hovering() {
		t.Error("release outside kept hover")
	}
}

func TestScrollView_ReleaseOutsideClearsHover(t *testing.T) {
	view, ctrl, _ := newTestView(t, DefaultConfig())

	view.MouseHandler(MouseMove, mouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	if !ctrl.Hovering() || !view.interaction.BarsShown() {
		t.Fatal("hover did not show the bars")
	}

	_, cmd := view.MouseHandler(MouseLeftUp, mouse(45, 25, tcell.ButtonNone, tcell.ModNone))
	if ctrl.Hovering() || view.interaction.BarsShown() {
		t.Error("release outside kept hover")
	}
	if IsConsumed(cmd) {
		t.Error("release outside consumed")
	}

	view.MouseHandler(MouseMove, mouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	view.MouseHandler(MouseLeftUp, mouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	if !ctrl.Hovering() {
		t.Error("release inside cleared hover")
	}
}

func TestScrollView_TrackClick(t *testing.T) {
	view, ctrl, _ := newTestView(t, jumpingConfig())

	capture, cmd := view.MouseHandler(MouseLeftDown, mouse(39, 10, tcell.Button1, tcell.ModNone))
	if capture != nil || !IsConsumed(cmd) {
		t.Errorf("track click capture %v consumed %v", capture, IsConsumed(cmd))
	}
	if got := ctrl.Offset(AxisY); got < 42.4999 || got > 42.5001 {
		t.Errorf("offset = %v, want 42.5", got)
	}
}

func TestScrollView_OutsidePlacement(t *testing.T) {
	cfg := jumpingConfig()
	cfg.Placement = PlacementOutside
	view, _, screen := newTestView(t, cfg)

	if view.ViewportLength(AxisX) != 39 || view.ViewportLength(AxisY) != 19 {
		t.Errorf("viewport = %vx%v, want 39x19", view.ViewportLength(AxisX), view.ViewportLength(AxisY))
	}
	bar, _ := view.Bar(AxisY)
	if x, _, _, height := bar.GetRect(); x != 39 || height != 19 {
		t.Errorf("bar at column %d, height %d", x, height)
	}
	if got := rowText(screen, 19, 8); strings.Contains(got, "line") {
		t.Errorf("content drawn in the gutter row: %q", got)
	}
}

func TestScrollView_ResizeUpdatesGeometry(t *testing.T) {
	view, _, screen := newTestView(t, jumpingConfig())

	view.SetRect(0, 0, 40, 10)
	view.Draw(screen)
	bar, _ := view.Bar(AxisY)
	if bar.DraggerLength() != 1 {
		t.Errorf("dragger = %v, want 1", bar.DraggerLength())
	}
}

func TestScrollView_ClipsToViewport(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(40, 20)

	view := NewScrollView(NewTextContent().SetText(numberedText(100)))
	view.SetRect(0, 5, 40, 5)
	if _, err := view.Attach(NewRegistry(), Binding{}, jumpingConfig()); err != nil {
		t.Fatal(err)
	}
	view.Draw(screen)

	if got := rowText(screen, 4, 8); strings.Contains(got, "line") {
		t.Errorf("content drawn above the view: %q", got)
	}
	if got := rowText(screen, 5, 8); got != "line 000" {
		t.Errorf("first row = %q", got)
	}
	if got := rowText(screen, 10, 8); strings.Contains(got, "line") {
		t.Errorf("content drawn below the view: %q", got)
	}
}

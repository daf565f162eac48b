package layers

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/zscroll"
)

type recorder struct {
	*zscroll.Box
	keys []string
}

func newRecorder() *recorder {
	return &recorder{Box: zscroll.NewBox()}
}

func (r *recorder) InputHandler(event *tcell.EventKey) zscroll.Command {
	r.keys = append(r.keys, string(event.Rune()))
	return zscroll.ConsumeEventCommand{}
}

type fixture struct {
	layers *Layers
	main   *recorder
	status *zscroll.Box
	panel  *zscroll.Box
	screen tcell.SimulationScreen
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)

	f := &fixture{
		layers: New(),
		main:   newRecorder(),
		status: zscroll.NewBox(),
		panel:  zscroll.NewBox(),
		screen: screen,
	}
	f.layers.AddLayer(f.main, WithName("main"), WithResize(true))
	f.layers.AddLayer(f.status, WithName("status"), WithDock(1), WithEnabled(false))
	f.layers.AddLayer(f.panel, WithName("panel"), WithDock(3), WithOverlay(), WithVisible(false))
	f.layers.SetRect(0, 0, 20, 10)
	f.layers.Draw(screen)
	return f
}

func assertRect(t *testing.T, name string, p zscroll.Primitive, x, y, w, h int) {
	t.Helper()
	gx, gy, gw, gh := p.GetRect()
	if gx != x || gy != y || gw != w || gh != h {
		t.Errorf("%s rect = (%d,%d,%d,%d), want (%d,%d,%d,%d)", name, gx, gy, gw, gh, x, y, w, h)
	}
}

func TestLayers_DockedRects(t *testing.T) {
	f := newFixture(t)
	assertRect(t, "main", f.main, 0, 0, 20, 9)
	assertRect(t, "status", f.status, 0, 9, 20, 1)

	// Overlays sit on top of the resized layer without shrinking it.
	f.layers.ToggleLayer("panel")
	f.layers.Draw(f.screen)
	assertRect(t, "main", f.main, 0, 0, 20, 9)
	assertRect(t, "panel", f.panel, 0, 7, 20, 3)

	f.layers.SetVisible("status", false)
	f.layers.Draw(f.screen)
	assertRect(t, "main", f.main, 0, 0, 20, 10)
}

func TestLayers_Visibility(t *testing.T) {
	f := newFixture(t)
	if f.layers.GetVisible("panel") {
		t.Fatal("panel visible on start")
	}
	f.layers.ToggleLayer("panel")
	if !f.layers.GetVisible("panel") {
		t.Fatal("toggle did not show the panel")
	}
	if f.layers.GetVisible("missing") {
		t.Error("unknown layer reported visible")
	}
	if !f.layers.HasLayer("status") || f.layers.HasLayer("missing") {
		t.Error("HasLayer mismatch")
	}
}

func TestLayers_AddReplacesByName(t *testing.T) {
	f := newFixture(t)
	replacement := zscroll.NewBox()
	f.layers.AddLayer(replacement, WithName("status"), WithDock(2))
	f.layers.Draw(f.screen)

	assertRect(t, "main", f.main, 0, 0, 20, 8)
	assertRect(t, "replacement", replacement, 0, 8, 20, 2)

	f.layers.RemoveLayer("status")
	if f.layers.HasLayer("status") {
		t.Error("layer not removed")
	}
}

func TestLayers_InputCapture(t *testing.T) {
	f := newFixture(t)
	f.layers.Focus(func(p zscroll.Primitive) { p.Focus(nil) })
	if !f.main.HasFocus() {
		t.Fatal("focus did not reach the top enabled layer")
	}

	f.layers.SetInputCapture(func(event *tcell.EventKey) zscroll.Command {
		if event.Rune() == 'q' {
			return zscroll.BatchCommand{zscroll.QuitCommand{}, zscroll.ConsumeEventCommand{}}
		}
		return nil
	})

	cmd := f.layers.InputHandler(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !zscroll.IsConsumed(cmd) {
		t.Errorf("capture command = %#v", cmd)
	}
	f.layers.InputHandler(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	if len(f.main.keys) != 1 || f.main.keys[0] != "j" {
		t.Errorf("main saw %v, want [j]", f.main.keys)
	}
}

func TestLayers_OverlayBlocksMouse(t *testing.T) {
	f := newFixture(t)
	click := tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone)

	if _, cmd := f.layers.MouseHandler(zscroll.MouseLeftDown, click); !zscroll.IsConsumed(cmd) {
		t.Fatal("click did not reach the main layer")
	}

	f.layers.ToggleLayer("panel")
	f.layers.Draw(f.screen)
	if _, cmd := f.layers.MouseHandler(zscroll.MouseLeftDown, click); cmd != nil {
		t.Errorf("click behind the overlay returned %#v", cmd)
	}

	inPanel := tcell.NewEventMouse(5, 8, tcell.Button1, tcell.ModNone)
	if _, cmd := f.layers.MouseHandler(zscroll.MouseLeftDown, inPanel); !zscroll.IsConsumed(cmd) {
		t.Error("click on the overlay was not handled")
	}
}

func TestApplyBackgroundStyle(t *testing.T) {
	base := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	got := applyBackgroundStyle(base, tcell.StyleDefault.Dim(true))

	fg, _, attrs := got.Decompose()
	if fg != tcell.ColorRed {
		t.Errorf("foreground = %v, want red", fg)
	}
	if attrs&tcell.AttrBold == 0 || attrs&tcell.AttrDim == 0 {
		t.Errorf("attrs = %v, want bold and dim", attrs)
	}
}

package help

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/zscroll/keybind"
)

type testKeyMap struct {
	short []keybind.Keybind
	full  [][]keybind.Keybind
}

func (k testKeyMap) ShortHelp() []keybind.Keybind  { return k.short }
func (k testKeyMap) FullHelp() [][]keybind.Keybind { return k.full }

func bind(key, desc string, opts ...keybind.Option) keybind.Keybind {
	return keybind.NewKeybind(append([]keybind.Option{keybind.WithKeys(key), keybind.WithHelp(key, desc)}, opts...)...)
}

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

func row(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestHelp_ShortSkipsDisabled(t *testing.T) {
	screen := newScreen(t, 60, 1)
	h := New().SetKeyMap(testKeyMap{short: []keybind.Keybind{
		bind("pgup", "page up"),
		bind("x", "hidden", keybind.WithDisabled()),
		bind("pgdn", "page down"),
	}})
	h.SetRect(0, 0, 60, 1)
	h.Draw(screen)

	if got := row(screen, 0, 60); got != "pgup page up • pgdn page down" {
		t.Errorf("short help = %q", got)
	}
}

func TestHelp_ShortTruncates(t *testing.T) {
	screen := newScreen(t, 20, 1)
	h := New().SetKeyMap(testKeyMap{short: []keybind.Keybind{
		bind("a", "first"),
		bind("b", "second"),
		bind("c", "third"),
	}})
	h.SetRect(0, 0, 20, 1)
	h.Draw(screen)

	if got := row(screen, 0, 20); got != "a first • b second …" {
		t.Errorf("short help = %q", got)
	}
}

func TestHelp_FullColumns(t *testing.T) {
	screen := newScreen(t, 60, 3)
	h := New().SetShowAll(true).SetKeyMap(testKeyMap{full: [][]keybind.Keybind{
		{bind("up", "up"), bind("down", "down")},
		{},
		{bind("home", "top")},
	}})
	h.SetRect(0, 0, 60, 3)
	h.Draw(screen)

	if got := row(screen, 0, 60); got != "up   up      home top" {
		t.Errorf("row 0 = %q", got)
	}
	if got := row(screen, 1, 60); got != "down down" {
		t.Errorf("row 1 = %q", got)
	}
	if !h.ShowAll() {
		t.Error("ShowAll = false")
	}
}

func TestHelp_Status(t *testing.T) {
	screen := newScreen(t, 30, 1)
	h := New().SetKeyMap(testKeyMap{short: []keybind.Keybind{bind("q", "quit")}}).
		SetStatus(func() string { return "10/100" })
	h.SetRect(0, 0, 30, 1)
	h.Draw(screen)

	got := row(screen, 0, 30)
	if !strings.HasPrefix(got, "q quit") || !strings.HasSuffix(got, "10/100") {
		t.Errorf("status line = %q", got)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/zscroll"
	"github.com/xqrs/zscroll/help"
	"github.com/xqrs/zscroll/highlight"
	"github.com/xqrs/zscroll/internal/source"
	"github.com/xqrs/zscroll/keybind"
	"github.com/xqrs/zscroll/layers"
	"github.com/xqrs/zscroll/sqlitestore"
	"github.com/xqrs/zscroll/teascroll"
)

// Stored offsets untouched for this long are dropped on start.
const pruneAfter = 90 * 24 * time.Hour

var (
	configPath = flag.String("config", "", "JSON scroll configuration file")
	dbPath     = flag.String("db", "", "SQLite file for scroll positions (in memory if empty)")
	id         = flag.String("id", "", "persistence id (defaults to the document name)")
	teaMode    = flag.Bool("tea", false, "use the Bubble Tea front end")
	styleName  = flag.String("style", "", "Chroma style for syntax highlighting")
	diffPath   = flag.String("diff", "", "show a diff of the file against this file")
	command    = flag.String("exec", "", "show the output of a shell command")
	logPath    = flag.String("log", "", "write logs to this file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: zscroll-demo [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("zscroll-demo: %v", err)
	}
}

func run() error {
	// The terminal belongs to the UI; logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := zscroll.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = zscroll.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	var store zscroll.Store = zscroll.NewMemoryStore()
	if *dbPath != "" {
		s, err := sqlitestore.Open(*dbPath)
		if err != nil {
			return err
		}
		defer s.Close()
		if n, err := s.Prune(time.Now().Add(-pruneAfter)); err != nil {
			log.Printf("prune: %v", err)
		} else if n > 0 {
			log.Printf("pruned %d stale positions", n)
		}
		store = s
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}
	docID := *id
	if docID == "" {
		docID = doc.Name
	}
	binding := zscroll.Binding{ID: docID, Store: store}

	if *teaMode {
		return runTea(doc, binding, cfg)
	}
	return runTcell(doc, binding, cfg)
}

func loadDocument() (source.Document, error) {
	switch {
	case *command != "":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return source.Command(ctx, *command, 120, 40)
	case flag.NArg() > 0:
		return source.File(flag.Arg(0))
	case source.Piped():
		return source.Stdin()
	}
	return source.Document{}, errors.New("nothing to show: pass a file, -exec or pipe text in")
}

func styledLines(doc source.Document) []zscroll.Line {
	if *diffPath != "" {
		other, err := source.File(*diffPath)
		if err != nil {
			log.Printf("diff: %v", err)
		} else {
			return highlight.Diff(doc.Text, other.Text)
		}
	}
	lines, err := highlight.Lines(doc.Name, doc.Text, *styleName)
	if err != nil {
		log.Printf("highlight: %v", err)
		return highlight.Plain(doc.Text)
	}
	return lines
}

// keyMap adds the viewer's own keys to the scroll keys.
type keyMap struct {
	router *zscroll.InputRouter
	toggle keybind.Keybind
	close  keybind.Keybind
	quit   keybind.Keybind
}

func newKeyMap(router *zscroll.InputRouter) keyMap {
	return keyMap{
		router: router,
		toggle: keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "keys")),
		close:  keybind.NewKeybind(keybind.WithKeys("esc"), keybind.WithHelp("esc", "close")),
		quit:   keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []keybind.Keybind {
	return append(k.router.ShortHelp(), k.toggle, k.quit)
}

func (k keyMap) FullHelp() [][]keybind.Keybind {
	return append(k.router.FullHelp(), []keybind.Keybind{k.toggle, k.close, k.quit})
}

func runTcell(doc source.Document, binding zscroll.Binding, cfg zscroll.Config) error {
	app := zscroll.NewApplication().EnableMouse(true)

	lines := styledLines(doc)
	content := zscroll.NewTextContent().SetLines(lines)
	view := zscroll.NewScrollView(content)
	view.SetBorders(zscroll.BordersAll).SetBorderSet(zscroll.BorderSetRound()).SetTitle(" " + doc.Name + " ")

	binding.Animator = zscroll.NewSmoothScroller(view, cfg.Animation).SetScheduler(func(tick func()) {
		time.AfterFunc(zscroll.FrameInterval, func() { app.Post(tick) })
	})
	registry := zscroll.NewRegistry()
	ctrl, err := view.Attach(registry, binding, cfg)
	if err != nil {
		return err
	}
	defer registry.Unbind(view)

	keys := newKeyMap(ctrl.Router())
	status := help.New().SetKeyMap(keys).SetStatus(func() string {
		return fmt.Sprintf("%d/%d", int(ctrl.Offset(zscroll.AxisY))+1, len(lines))
	})
	full := help.New().SetKeyMap(keys).SetShowAll(true)
	full.SetBorders(zscroll.BordersAll).SetBorderSet(zscroll.BorderSetRound()).SetTitle(" keys ")

	rows := 0
	for _, column := range keys.FullHelp() {
		rows = max(rows, len(column))
	}

	root := layers.New()
	root.AddLayer(view, layers.WithName("main"), layers.WithResize(true))
	root.AddLayer(status, layers.WithName("status"), layers.WithDock(1), layers.WithEnabled(false))
	root.AddLayer(full, layers.WithName("keys"), layers.WithDock(rows+2), layers.WithOverlay(),
		layers.WithVisible(false), layers.WithEnabled(false))

	redraw := zscroll.BatchCommand{zscroll.ConsumeEventCommand{}, zscroll.RedrawCommand{}}
	root.SetInputCapture(func(event *tcell.EventKey) zscroll.Command {
		switch {
		case keybind.Matches(event, keys.quit):
			return zscroll.QuitCommand{}
		case keybind.Matches(event, keys.toggle):
			root.ToggleLayer("keys")
			return redraw
		case keybind.Matches(event, keys.close) && root.GetVisible("keys"):
			root.SetVisible("keys", false)
			return redraw
		}
		return nil
	})

	app.SetRoot(root)
	return app.Run()
}

func runTea(doc source.Document, binding zscroll.Binding, cfg zscroll.Config) error {
	text := strings.TrimSuffix(doc.Text, "\n")
	m := teascroll.New(strings.Split(text, "\n"))
	if _, err := m.Attach(zscroll.NewRegistry(), binding, cfg); err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

package teascroll

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/xqrs/zscroll"
	"github.com/xqrs/zscroll/keybind"
)

// keyMap implements help.KeyMap over the controller's scroll bindings and
// the model's own keys.
type keyMap struct {
	router *zscroll.InputRouter

	Yank key.Binding
	Help key.Binding
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Yank: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy view")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// toBinding converts a scroll binding. Bubble Tea names page down "pgdown".
func toBinding(k keybind.Keybind) key.Binding {
	keys := make([]string, 0, len(k.Keys()))
	for _, name := range k.Keys() {
		switch name {
		case "pgdn":
			name = "pgdown"
		case "space":
			name = " "
		}
		keys = append(keys, name)
	}
	opts := []key.BindingOpt{key.WithKeys(keys...), key.WithHelp(k.Help().Key, k.Help().Desc)}
	if !k.Enabled() {
		opts = append(opts, key.WithDisabled())
	}
	return key.NewBinding(opts...)
}

func toBindings(binds []keybind.Keybind) []key.Binding {
	out := make([]key.Binding, 0, len(binds))
	for _, b := range binds {
		out = append(out, toBinding(b))
	}
	return out
}

func (k keyMap) ShortHelp() []key.Binding {
	var binds []key.Binding
	if k.router != nil {
		binds = toBindings(k.router.ShortHelp())
	}
	return append(binds, k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	var columns [][]key.Binding
	if k.router != nil {
		for _, column := range k.router.FullHelp() {
			if len(column) > 0 {
				columns = append(columns, toBindings(column))
			}
		}
	}
	return append(columns, []key.Binding{k.Yank, k.Help, k.Quit})
}

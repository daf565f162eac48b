// Package help draws key binding hints, either as a single line or as
// aligned columns.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/zscroll"
	"github.com/xqrs/zscroll/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

type Help struct {
	*zscroll.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	status         func() string
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            zscroll.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       zscroll.SemigraphicsHorizontalEllipsis,
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	h.MarkDirty()
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetStatus sets a function whose result is right-aligned on the first line,
// e.g. the scroll position.
func (h *Help) SetStatus(status func() string) *Help {
	h.status = status
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	statusWidth := 0
	if h.status != nil {
		if status := h.status(); status != "" {
			_, statusWidth = zscroll.PrintWithStyle(screen, status, x, y, width, zscroll.AlignmentRight, h.Styles.StatusStyle)
			statusWidth++ // keep a gap before the hints
		}
	}

	if h.keyMap == nil {
		return
	}
	var lines [][]segment
	if h.showAll {
		lines = h.fullHelpSegments(h.keyMap.FullHelp(), width-statusWidth)
	} else {
		lines = [][]segment{h.shortHelpSegments(h.keyMap.ShortHelp(), width-statusWidth)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		lineWidth := width
		if row == 0 {
			lineWidth -= statusWidth
		}
		drawSegments(screen, x, y+row, lineWidth, lines[row])
	}
}

type segment struct {
	text  string
	style tcell.Style
}

func (h *Help) shortHelpSegments(bindings []keybind.Keybind, maxWidth int) []segment {
	var out []segment
	sep := segment{text: h.shortSeparator, style: h.Styles.SeparatorStyle}
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		item := itemSegments(kb.Help(), h.Styles.KeyStyle, h.Styles.DescStyle)
		if len(item) == 0 {
			continue
		}
		candidate := item
		if len(out) > 0 {
			candidate = append(append(cloneSegments(out), sep), item...)
		}
		if maxWidth > 0 && segmentsWidth(candidate) > maxWidth {
			return append(out, h.truncationTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

func (h *Help) fullHelpSegments(groups [][]keybind.Keybind, maxWidth int) [][]segment {
	type column struct {
		entries []keybind.Help
		keyW    int
		colW    int
	}

	columns := make([]column, 0, len(groups))
	for _, group := range groups {
		var col column
		for _, kb := range group {
			hp := kb.Help()
			if !kb.Enabled() || (hp.Key == "" && hp.Desc == "") {
				continue
			}
			col.entries = append(col.entries, hp)
			col.keyW = max(col.keyW, zscroll.StringWidth(hp.Key))
		}
		if len(col.entries) == 0 {
			continue
		}
		for _, e := range col.entries {
			col.colW = max(col.colW, col.keyW+1+zscroll.StringWidth(e.Desc))
		}
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return nil
	}

	sepW := zscroll.StringWidth(h.fullSeparator)
	included, totalW := 0, 0
	for i, col := range columns {
		nextW := col.colW
		if i > 0 {
			nextW += sepW
		}
		if maxWidth > 0 && totalW+nextW > maxWidth {
			break
		}
		included++
		totalW += nextW
	}
	if included == 0 {
		return [][]segment{{{text: h.ellipsis, style: h.Styles.EllipsisStyle}}}
	}

	rows := 0
	for _, col := range columns[:included] {
		rows = max(rows, len(col.entries))
	}

	lines := make([][]segment, 0, rows)
	for row := 0; row < rows; row++ {
		var line []segment
		for i, col := range columns[:included] {
			if i > 0 {
				line = append(line, segment{text: h.fullSeparator, style: h.Styles.SeparatorStyle})
			}
			// Empty rows still occupy the full column width so separators
			// stay aligned.
			if row >= len(col.entries) {
				line = append(line, segment{text: strings.Repeat(" ", col.colW), style: h.Styles.DescStyle})
				continue
			}
			e := col.entries[row]
			key := e.Key + strings.Repeat(" ", col.keyW-zscroll.StringWidth(e.Key))
			desc := e.Desc + strings.Repeat(" ", col.colW-col.keyW-1-zscroll.StringWidth(e.Desc))
			line = append(line,
				segment{text: key, style: h.Styles.KeyStyle},
				segment{text: " " + desc, style: h.Styles.DescStyle},
			)
		}
		lines = append(lines, line)
	}

	if included < len(columns) {
		lines[0] = append(lines[0], h.truncationTail(lines[0], maxWidth)...)
	}
	return lines
}

// truncationTail returns an ellipsis only when it fully fits.
func (h *Help) truncationTail(current []segment, maxWidth int) []segment {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := []segment{{text: " " + h.ellipsis, style: h.Styles.EllipsisStyle}}
	if segmentsWidth(current)+segmentsWidth(tail) <= maxWidth {
		return tail
	}
	return nil
}

func drawSegments(screen tcell.Screen, x, y, width int, segments []segment) {
	for _, s := range segments {
		if width <= 0 {
			return
		}
		_, printed := zscroll.PrintWithStyle(screen, s.text, x, y, width, zscroll.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

func itemSegments(help keybind.Help, keyStyle, descStyle tcell.Style) []segment {
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []segment{{text: help.Desc, style: descStyle}}
	case help.Desc == "":
		return []segment{{text: help.Key, style: keyStyle}}
	default:
		return []segment{{text: help.Key, style: keyStyle}, {text: " " + help.Desc, style: descStyle}}
	}
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, segment := range segments {
		width += zscroll.StringWidth(segment.text)
	}
	return width
}

func cloneSegments(in []segment) []segment {
	out := make([]segment, len(in))
	copy(out, in)
	return out
}

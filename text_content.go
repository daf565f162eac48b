package zscroll

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TextContent is styled, unwrapped text sized to its longest line. It is
// meant to be scrolled by a ScrollView.
type TextContent struct {
	*Box

	lines []Line
	width int
	style tcell.Style
	// tabWidth is the number of spaces a tab expands to.
	tabWidth int
}

// NewTextContent returns empty text content.
func NewTextContent() *TextContent {
	return &TextContent{
		Box:      NewBox().SetDontClear(true),
		style:    tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
		tabWidth: 4,
	}
}

// SetText replaces the content with plain text in the default style.
func (t *TextContent) SetText(text string) *TextContent {
	b := NewLineBuilder()
	b.Write(text, t.style)
	return t.SetLines(b.Finish())
}

// SetLines replaces the content with styled lines.
func (t *TextContent) SetLines(lines []Line) *TextContent {
	tabs := strings.Repeat(" ", t.tabWidth)
	t.lines = make([]Line, len(lines))
	t.width = 0
	for i, line := range lines {
		expanded := make(Line, len(line))
		for j, segment := range line {
			expanded[j] = Segment{Text: strings.ReplaceAll(segment.Text, "\t", tabs), Style: segment.Style}
		}
		t.lines[i] = expanded
		t.width = max(t.width, expanded.Width())
	}
	t.MarkDirty()
	return t
}

// SetTextStyle sets the style used by SetText.
func (t *TextContent) SetTextStyle(style tcell.Style) *TextContent {
	t.style = style
	return t
}

// Lines returns the content lines.
func (t *TextContent) Lines() []Line {
	return t.lines
}

// ContentSize implements ContentSizer.
func (t *TextContent) ContentSize() (int, int) {
	return t.width, len(t.lines)
}

// Draw draws the lines that fall on screen.
func (t *TextContent) Draw(screen tcell.Screen) {
	x, y, width, _ := t.GetRect()
	_, screenHeight := screen.Size()
	for row, line := range t.lines {
		lineY := y + row
		if lineY < 0 {
			continue
		}
		if lineY >= screenHeight {
			break
		}
		cursor := x
		for _, segment := range line {
			_, printed := PrintWithStyle(screen, segment.Text, cursor, lineY, x+width-cursor, AlignmentLeft, segment.Style)
			cursor += printed
		}
	}
}

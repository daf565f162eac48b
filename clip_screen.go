package zscroll

import "github.com/gdamore/tcell/v2"

// clipScreen drops every write outside a rectangle. Scroll views draw their
// content through it at a shifted origin.
type clipScreen struct {
	tcell.Screen
	x, y, width, height int
}

func newClipScreen(screen tcell.Screen, x, y, width, height int) *clipScreen {
	return &clipScreen{Screen: screen, x: x, y: y, width: width, height: height}
}

func (s *clipScreen) contains(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clipScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if s.contains(x, y) {
		s.Screen.SetContent(x, y, primary, combining, style)
	}
}

func (s *clipScreen) SetCell(x int, y int, style tcell.Style, ch ...rune) {
	if s.contains(x, y) {
		s.Screen.SetCell(x, y, style, ch...)
	}
}

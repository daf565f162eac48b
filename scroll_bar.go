package zscroll

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

const subcell = 8

// GlyphSet defines the track glyphs and the fractional dragger glyphs of both
// orientations. Index i of a fractional array covers i+1 eighths of a cell.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	// Vertical draggers covering the bottom or the top of a cell.
	DraggerLower [8]string
	DraggerUpper [8]string
	// Horizontal draggers covering the left or the right of a cell.
	DraggerLeft  [8]string
	DraggerRight [8]string
}

// MinimalGlyphSet returns the minimal glyph set (space track, fractional
// draggers).
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// LegacyComputingGlyphSet returns legacy-computing symbols for full 1/8
// fractional fidelity.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   BoxDrawingsLightVertical,
		TrackHorizontal: BoxDrawingsLightHorizontal,

		DraggerLower: [8]string{
			BlockLowerOneEighthBlock, BlockLowerOneQuarterBlock, BlockLowerThreeEighthsBlock, BlockLowerHalfBlock,
			BlockLowerFiveEighthsBlock, BlockLowerThreeQuartersBlock, BlockLowerSevenEighthsBlock, BlockFullBlock,
		},
		DraggerUpper: [8]string{
			BlockUpperOneEighthBlock, BlockUpperOneQuarterBlock, BlockUpperThreeEighthsBlock, BlockUpperHalfBlock,
			BlockUpperFiveEighthsBlock, BlockUpperThreeQuartersBlock, BlockUpperSevenEighthsBlock, BlockFullBlock,
		},
		DraggerLeft: [8]string{
			BlockLeftOneEighthBlock, BlockLeftOneQuarterBlock, BlockLeftThreeEighthsBlock, BlockLeftHalfBlock,
			BlockLeftFiveEighthsBlock, BlockLeftThreeQuartersBlock, BlockLeftSevenEighthsBlock, BlockFullBlock,
		},
		DraggerRight: [8]string{
			BlockRightOneEighthBlock, BlockRightOneQuarterBlock, BlockRightThreeEighthsBlock, BlockRightHalfBlock,
			BlockRightFiveEighthsBlock, BlockRightThreeQuartersBlock, BlockRightSevenEighthsBlock, BlockFullBlock,
		},
	}
}

// UnicodeGlyphSet returns a standard-unicode-only approximation set.
func UnicodeGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.DraggerUpper = [8]string{
		BlockUpperOneEighthBlock, BlockUpperOneEighthBlock, BlockUpperHalfBlock, BlockUpperHalfBlock,
		BlockUpperHalfBlock, BlockUpperHalfBlock, BlockFullBlock, BlockFullBlock,
	}
	g.DraggerRight = [8]string{
		BlockRightOneEighthBlock, BlockRightOneEighthBlock, BlockRightHalfBlock, BlockRightHalfBlock,
		BlockRightHalfBlock, BlockRightHalfBlock, BlockFullBlock, BlockFullBlock,
	}
	return g
}

// ScrollBar draws one bar: a track with a dragger on it. Its geometry is set
// in cells by a scroll controller and drawn with 1/8-cell precision.
type ScrollBar struct {
	*Box

	axis Axis

	trackLength   float64
	draggerLength float64
	position      float64
	visible       bool

	trackStyle    tcell.Style
	draggerStyle  tcell.Style
	hoverStyle    tcell.Style
	draggingStyle tcell.Style

	glyphSet  GlyphSet
	showTrack bool
}

// NewScrollBar returns a new hidden bar for axis.
func NewScrollBar(axis Axis) *ScrollBar {
	return &ScrollBar{
		Box:           NewBox().SetDontClear(true),
		axis:          axis,
		trackStyle:    tcell.StyleDefault.Foreground(Styles.ScrollBarTrackColor).Dim(true),
		draggerStyle:  tcell.StyleDefault.Foreground(Styles.ScrollBarDraggerColor),
		hoverStyle:    tcell.StyleDefault.Foreground(Styles.ScrollBarHoverColor),
		draggingStyle: tcell.StyleDefault.Foreground(Styles.ScrollBarDraggingColor),
		glyphSet:      MinimalGlyphSet(),
		showTrack:     true,
	}
}

// Axis returns the axis the bar scrolls.
func (s *ScrollBar) Axis() Axis {
	return s.axis
}

// SetGeometry sets the track and dragger lengths in cells.
func (s *ScrollBar) SetGeometry(trackLength, draggerLength float64) *ScrollBar {
	s.trackLength = max(trackLength, 0)
	s.draggerLength = clamp(draggerLength, 0, s.trackLength)
	return s
}

// SetPosition sets the dragger offset from the start of the track, in cells.
func (s *ScrollBar) SetPosition(position float64) *ScrollBar {
	s.position = max(position, 0)
	return s
}

// SetVisible shows or hides the bar.
func (s *ScrollBar) SetVisible(visible bool) *ScrollBar {
	s.visible = visible
	return s
}

// Visible reports whether the bar has anything to scroll.
func (s *ScrollBar) Visible() bool {
	return s.visible
}

// TrackLength returns the track length in cells.
func (s *ScrollBar) TrackLength() float64 {
	return s.trackLength
}

// DraggerLength returns the dragger length in cells.
func (s *ScrollBar) DraggerLength() float64 {
	return s.draggerLength
}

// Position returns the dragger offset in cells.
func (s *ScrollBar) Position() float64 {
	return s.position
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

// SetTrackGlyph sets the track symbol of the bar's orientation and whether
// the track is drawn at all.
func (s *ScrollBar) SetTrackGlyph(glyph string, visible bool) *ScrollBar {
	if s.axis == AxisY {
		s.glyphSet.TrackVertical = glyph
	} else {
		s.glyphSet.TrackHorizontal = glyph
	}
	s.showTrack = visible
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

// SetDraggerStyles sets the dragger style when idle, hovered and dragged.
func (s *ScrollBar) SetDraggerStyles(idle, hover, dragging tcell.Style) *ScrollBar {
	s.draggerStyle, s.hoverStyle, s.draggingStyle = idle, hover, dragging
	return s
}

// cells returns the number of cells the bar occupies along its axis.
func (s *ScrollBar) cells() int {
	_, _, width, height := s.GetRect()
	if s.axis == AxisY {
		return height
	}
	return width
}

// along converts screen coordinates into a cell index along the bar.
func (s *ScrollBar) along(x, y int) int {
	bx, by, _, _ := s.GetRect()
	if s.axis == AxisY {
		return y - by
	}
	return x - bx
}

// OnDragger reports whether screen cell (x, y) shows part of the dragger.
func (s *ScrollBar) OnDragger(x, y int) bool {
	if !s.visible || !s.InRect(x, y) {
		return false
	}
	m := s.metrics()
	_, fill := cellFill(m, s.along(x, y))
	return fill > 0
}

// TrackPosition returns the position along the track, in cells, of the centre
// of screen cell (x, y).
func (s *ScrollBar) TrackPosition(x, y int) float64 {
	return float64(s.along(x, y)) + 0.5
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// metrics converts the cell geometry into subcell units.
func (s *ScrollBar) metrics() scrollMetrics {
	trackCells := min(int(math.Ceil(s.trackLength)), s.cells())
	return computeScrollMetrics(trackCells, s.draggerLength, s.position)
}

func computeScrollMetrics(trackCells int, draggerLength, position float64) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen <= 0 {
		return scrollMetrics{}
	}
	// The dragger never shrinks below one subcell so it stays visible.
	thumbLen := min(max(int(math.Round(draggerLength*subcell)), 1), trackLen)
	thumbStart := min(max(int(math.Round(position*subcell)), 0), trackLen-thumbLen)
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 || cellIndex < 0 || cellIndex >= m.trackCells {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	// Convert absolute subcell coverage into cell-local [start,len] used by fractional glyph selection.
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyph(start, fillLen int) string {
	if fillLen <= 0 {
		switch {
		case !s.showTrack:
			return " "
		case s.axis == AxisY:
			return s.glyphSet.TrackVertical
		default:
			return s.glyphSet.TrackHorizontal
		}
	}
	ix := fillLen - 1
	// A dragger that starts at the top (left) edge of the cell ends inside
	// it, so the filled part hugs that edge.
	switch {
	case s.axis == AxisY && start == 0:
		return s.glyphSet.DraggerUpper[ix]
	case s.axis == AxisY:
		return s.glyphSet.DraggerLower[ix]
	case start == 0:
		return s.glyphSet.DraggerLeft[ix]
	default:
		return s.glyphSet.DraggerRight[ix]
	}
}

// BarCell is one drawn cell of a bar.
type BarCell struct {
	Glyph   string
	Dragger bool
}

// Cells returns the track cells from the start of the bar. It is empty
// while the bar is hidden or has no room.
func (s *ScrollBar) Cells() []BarCell {
	if !s.visible {
		return nil
	}
	m := s.metrics()
	cells := make([]BarCell, m.trackCells)
	for cell := range cells {
		start, fillLen := cellFill(m, cell)
		cells[cell] = BarCell{Glyph: s.glyph(start, fillLen), Dragger: fillLen > 0}
	}
	return cells
}

// Draw draws the bar with its idle style.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.draw(screen, Interaction{})
}

func (s *ScrollBar) draw(screen tcell.Screen, state Interaction) {
	if !s.visible || !state.BarsShown() {
		return
	}
	s.DrawForSubclass(screen, s)

	draggerStyle := s.draggerStyle
	switch {
	case state.Dragging && state.DragAxis == s.axis:
		draggerStyle = s.draggingStyle
	case state.Hovering:
		draggerStyle = s.hoverStyle
	}

	x, y, _, _ := s.GetRect()
	for i, cell := range s.Cells() {
		style := s.trackStyle
		if cell.Dragger {
			style = draggerStyle
		}
		if s.axis == AxisY {
			putCluster(screen, x, y+i, cell.Glyph, style)
		} else {
			putCluster(screen, x+i, y, cell.Glyph, style)
		}
	}
}

var _ Primitive = &ScrollBar{}

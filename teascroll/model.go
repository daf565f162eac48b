// Package teascroll runs a scroll controller inside a Bubble Tea program.
//
// Model is the container, renderer and viewport of one controller. It shows
// lines of text with custom bars drawn in the last column and row, animates
// wheel and key scrolls with frame ticks, and lists the scroll keys in a
// footer.
package teascroll

import (
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/xqrs/zscroll"
)

// frameMsg advances running animations.
type frameMsg time.Time

// Model is a scrollable text view for Bubble Tea.
type Model struct {
	lines        []string
	contentWidth int
	tag          string

	width, height int
	position      [2]float64
	extent        [2]float64
	bars          [2]*zscroll.ScrollBar
	interaction   zscroll.Interaction
	placement     zscroll.Placement

	ctrl     *zscroll.Controller
	scroller *zscroll.SmoothScroller
	ticking  bool

	keys   keyMap
	help   help.Model
	styles Styles
	status string
}

// New returns a model showing lines. Tabs are expanded to four columns.
func New(lines []string) *Model {
	m := &Model{
		help:   help.New(),
		styles: DefaultStyles(),
		keys:   newKeyMap(),
	}
	m.SetLines(lines)
	return m
}

// SetLines replaces the content. The controller picks the new size up on
// the next layout.
func (m *Model) SetLines(lines []string) *Model {
	m.lines = make([]string, len(lines))
	m.contentWidth = 0
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", "    ")
		m.lines[i] = line
		m.contentWidth = max(m.contentWidth, uniseg.StringWidth(line))
	}
	m.relayout()
	return m
}

// SetTag sets the element tag reported to the controller's exclusion lists.
func (m *Model) SetTag(tag string) *Model {
	m.tag = tag
	return m
}

// SetStyles replaces the styles.
func (m *Model) SetStyles(styles Styles) *Model {
	m.styles = styles
	return m
}

// Attach binds the model into r. The model is always its own container and
// renderer. A nil animator selects a SmoothScroller driven by frame ticks.
func (m *Model) Attach(r *zscroll.Registry, b zscroll.Binding, config zscroll.Config) (*zscroll.Controller, error) {
	b.Container = m
	b.Renderer = m
	if b.Animator == nil {
		m.scroller = zscroll.NewSmoothScroller(m, config.Animation)
		b.Animator = m.scroller
	}
	m.placement = config.Placement
	c, err := r.Bind(b, config)
	m.ctrl = c
	m.keys.router = c.Router()
	m.placeBars()
	return c, err
}

// Controller returns the bound controller, or nil before Attach.
func (m *Model) Controller() *zscroll.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.relayout()
		case key.Matches(msg, m.keys.Yank):
			m.yank()
		case m.ctrl != nil:
			m.ctrl.Router().HandleKey(msg.String(), m.tag)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameMsg:
		m.ticking = false
		if m.scroller != nil {
			m.scroller.Step(time.Time(msg))
		}
	}
	return m, m.nextFrame()
}

// nextFrame schedules a frame tick while an animation runs.
func (m *Model) nextFrame() tea.Cmd {
	if m.scroller == nil || m.ticking || !m.scroller.Animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(zscroll.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.ctrl == nil {
		return
	}
	x, y := msg.X, msg.Y
	inside := x >= 0 && y >= 0 && x < m.width && y < m.areaHeight()
	router := m.ctrl.Router()
	dragging, _ := m.ctrl.Dragging()

	switch {
	case tea.MouseEvent(msg).IsWheel():
		if !inside {
			return
		}
		in := zscroll.WheelInput{Shift: msg.Shift, Ctrl: msg.Ctrl, Alt: msg.Alt, Target: m.tag}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			in.DeltaY = -1
		case tea.MouseButtonWheelDown:
			in.DeltaY = 1
		case tea.MouseButtonWheelLeft:
			in.DeltaX = -1
		case tea.MouseButtonWheelRight:
			in.DeltaX = 1
		}
		router.HandleWheel(in)
	case msg.Action == tea.MouseActionMotion:
		if dragging {
			router.DragTo(float64(x), float64(y))
			return
		}
		if inside {
			m.ctrl.PointerEnter()
		} else {
			m.ctrl.PointerLeave()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside {
			return
		}
		m.ctrl.PointerEnter()
		for _, bar := range m.bars {
			if bar == nil || !bar.Visible() || !m.interaction.BarsShown() || !bar.InRect(x, y) {
				continue
			}
			if bar.OnDragger(x, y) {
				router.BeginDrag(bar.Axis(), float64(x), float64(y))
			} else {
				router.TrackClick(bar.Axis(), bar.TrackPosition(x, y))
			}
			return
		}
	case msg.Action == tea.MouseActionRelease:
		switch {
		case dragging:
			router.PointerUp(!inside)
		case !inside:
			m.ctrl.PointerLeave()
		}
	}
}

func (m *Model) yank() {
	text := strings.Join(m.visibleLines(), "\n")
	if err := clipboard.WriteAll(text); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied visible lines"
}

// footerHeight is the number of rows taken by the key help.
func (m *Model) footerHeight() int {
	return lipgloss.Height(m.footer())
}

// areaHeight is the height of the viewport plus any outside bar gutter.
func (m *Model) areaHeight() int {
	return max(m.height-m.footerHeight(), 0)
}

// viewportSize returns the visible content size. Outside placement reserves
// a one-cell gutter for every created bar.
func (m *Model) viewportSize() (int, int) {
	width, height := m.width, m.areaHeight()
	if m.placement == zscroll.PlacementOutside {
		if m.bars[zscroll.AxisY] != nil {
			width--
		}
		if m.bars[zscroll.AxisX] != nil {
			height--
		}
	}
	return max(width, 0), max(height, 0)
}

func (m *Model) placeBars() {
	width, height := m.viewportSize()
	if bar := m.bars[zscroll.AxisY]; bar != nil {
		column := width - 1
		if m.placement == zscroll.PlacementOutside {
			column = width
		}
		bar.SetRect(column, 0, 1, height)
	}
	if bar := m.bars[zscroll.AxisX]; bar != nil {
		row := height - 1
		if m.placement == zscroll.PlacementOutside {
			row = height
		}
		bar.SetRect(0, row, width, 1)
	}
}

// relayout places the bars and runs a controller update.
func (m *Model) relayout() {
	if m.ctrl == nil {
		return
	}
	m.placeBars()
	var err error
	if m.ctrl.Active() {
		err = m.ctrl.Update()
	} else {
		err = m.ctrl.Initialize()
	}
	if err != nil {
		m.status = err.Error()
	}
	m.placeBars()
}

// Overflow implements zscroll.Container.
func (m *Model) Overflow(zscroll.Axis) zscroll.Overflow {
	return zscroll.OverflowAuto
}

// ViewportLength implements zscroll.Container.
func (m *Model) ViewportLength(axis zscroll.Axis) float64 {
	width, height := m.viewportSize()
	if axis == zscroll.AxisX {
		return float64(width)
	}
	return float64(height)
}

// ContentLength implements zscroll.Container.
func (m *Model) ContentLength(axis zscroll.Axis) float64 {
	if axis == zscroll.AxisX {
		return float64(m.contentWidth)
	}
	return float64(len(m.lines))
}

// BarLength implements zscroll.Container.
func (m *Model) BarLength(axis zscroll.Axis) float64 {
	return m.ViewportLength(axis)
}

// BarThickness implements zscroll.Container.
func (m *Model) BarThickness(zscroll.Axis) float64 {
	return 1
}

// ScrollPosition implements zscroll.Container and zscroll.Viewport.
func (m *Model) ScrollPosition(axis zscroll.Axis) float64 {
	return m.position[axis]
}

// SetScrollPosition implements zscroll.Viewport.
func (m *Model) SetScrollPosition(axis zscroll.Axis, position float64) {
	m.position[axis] = position
}

// CreateBars implements zscroll.Renderer.
func (m *Model) CreateBars(axes zscroll.Axes) {
	for _, axis := range []zscroll.Axis{zscroll.AxisX, zscroll.AxisY} {
		if axes.Has(axis) && m.bars[axis] == nil {
			m.bars[axis] = zscroll.NewScrollBar(axis).SetGlyphSet(m.styles.Glyphs)
		}
	}
}

// SetBarGeometry implements zscroll.Renderer.
func (m *Model) SetBarGeometry(axis zscroll.Axis, trackLength, draggerLength float64) {
	if bar := m.bars[axis]; bar != nil {
		bar.SetGeometry(trackLength, draggerLength)
	}
}

// SetDraggerPosition implements zscroll.Renderer.
func (m *Model) SetDraggerPosition(axis zscroll.Axis, position float64) {
	if bar := m.bars[axis]; bar != nil {
		bar.SetPosition(position)
	}
}

// SetBarVisible implements zscroll.Renderer.
func (m *Model) SetBarVisible(axis zscroll.Axis, visible bool) {
	if bar := m.bars[axis]; bar != nil {
		bar.SetVisible(visible)
	}
}

// SetContainerScrollExtent implements zscroll.Renderer.
func (m *Model) SetContainerScrollExtent(axis zscroll.Axis, extent float64) {
	m.extent[axis] = extent
}

// SetInteraction implements zscroll.Renderer.
func (m *Model) SetInteraction(state zscroll.Interaction) {
	m.interaction = state
}

// Bar returns the bar of an axis, if it was created.
func (m *Model) Bar(axis zscroll.Axis) (*zscroll.ScrollBar, bool) {
	bar := m.bars[axis]
	return bar, bar != nil
}

// barShown reports whether the bar of axis is drawn right now.
func (m *Model) barShown(axis zscroll.Axis) bool {
	bar := m.bars[axis]
	return bar != nil && bar.Visible() && m.interaction.BarsShown()
}

// visibleLines returns the content inside the viewport, without bars.
func (m *Model) visibleLines() []string {
	width, height := m.viewportSize()
	top := int(math.Round(m.position[zscroll.AxisY]))
	left := int(math.Round(m.position[zscroll.AxisX]))
	out := make([]string, 0, height)
	for row := 0; row < height && top+row < len(m.lines); row++ {
		out = append(out, cut(m.lines[top+row], left, width))
	}
	return out
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.viewportSize()
	top := int(math.Round(m.position[zscroll.AxisY]))
	left := int(math.Round(m.position[zscroll.AxisX]))

	var vcells, hcells []zscroll.BarCell
	column, row := -1, -1
	if bar := m.bars[zscroll.AxisY]; m.barShown(zscroll.AxisY) {
		vcells = bar.Cells()
		column, _, _, _ = bar.GetRect()
	}
	if bar := m.bars[zscroll.AxisX]; m.barShown(zscroll.AxisX) {
		hcells = bar.Cells()
		_, row, _, _ = bar.GetRect()
	}

	contentWidth := width
	if column >= 0 && column < width {
		contentWidth = column
	}

	var b strings.Builder
	for y := 0; y < m.areaHeight(); y++ {
		used := 0
		switch {
		case y == row:
			for _, cell := range hcells {
				b.WriteString(m.cellStyle(cell, zscroll.AxisX).Render(cell.Glyph))
			}
			used = len(hcells)
		case y < height:
			line := ""
			if top+y < len(m.lines) {
				line = cut(m.lines[top+y], left, contentWidth)
			}
			b.WriteString(m.styles.Content.Render(pad(line, contentWidth)))
			used = contentWidth
		}
		if y < len(vcells) {
			b.WriteString(strings.Repeat(" ", max(column-used, 0)))
			b.WriteString(m.cellStyle(vcells[y], zscroll.AxisY).Render(vcells[y].Glyph))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) cellStyle(cell zscroll.BarCell, axis zscroll.Axis) lipgloss.Style {
	switch {
	case !cell.Dragger:
		return m.styles.Track
	case m.interaction.Dragging && m.interaction.DragAxis == axis:
		return m.styles.DraggerActive
	case m.interaction.Hovering:
		return m.styles.DraggerHover
	}
	return m.styles.Dragger
}

func (m *Model) footer() string {
	view := m.help.View(m.keys)
	if m.status == "" {
		return view
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, view, "  ", m.styles.Status.Render(m.status))
}

// cut returns the columns [left, left+width) of line. Wide clusters split by
// either edge are replaced by spaces.
func cut(line string, left, width int) string {
	var b strings.Builder
	right := left + width
	col := 0
	state := -1
	for len(line) > 0 && col < right {
		var cluster string
		var w int
		cluster, line, w, state = uniseg.FirstGraphemeClusterInString(line, state)
		switch {
		case col >= left && col+w <= right:
			b.WriteString(cluster)
		case col+w > left:
			b.WriteString(strings.Repeat(" ", min(col+w, right)-max(col, left)))
		}
		col += w
	}
	return b.String()
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

var (
	_ tea.Model         = &Model{}
	_ zscroll.Container = &Model{}
	_ zscroll.Renderer  = &Model{}
	_ zscroll.Viewport  = &Model{}
)

// Package layers stacks primitives on top of each other, with optional
// bottom-docked bars and dimming overlays.
package layers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/zscroll"
)

// layer represents one layer of a Layers object.
type layer struct {
	name    string            // The layer's name.
	item    zscroll.Primitive // The layer's primitive.
	resize  bool              // Whether or not to resize the layer when it is drawn.
	dock    int               // Height of a bottom-docked layer; 0 if not docked.
	visible bool              // Whether or not this layer is visible.
	enabled bool              // Whether or not this layer can receive focus/input.
	overlay bool              // Whether this layer applies a background style to layers behind it.
}

// Layers is a container for other primitives laid out on top of each other.
// The layers are drawn from back to front. Resizing layers fill the space
// left by visible docked layers that are not overlays.
type Layers struct {
	*zscroll.Box

	layers []*layer
	// The style applied to layers behind the visible overlay layer.
	backgroundLayerStyle tcell.Style

	setFocus func(p zscroll.Primitive)
	capture  func(event *tcell.EventKey) zscroll.Command
}

// Option configures a layer on Add.
type Option func(*layer)

// WithName sets the layer's name.
func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithResize sets whether the layer is resized to the free part of the
// container's inner rect.
func WithResize(resize bool) Option {
	return func(l *layer) {
		l.resize = resize
	}
}

// WithDock docks the layer to the bottom of the container with a fixed
// height.
func WithDock(height int) Option {
	return func(l *layer) {
		l.dock = max(height, 0)
	}
}

// WithVisible sets the initial visibility of the layer.
func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

// WithEnabled sets whether the layer can receive focus and input.
func WithEnabled(enabled bool) Option {
	return func(l *layer) {
		l.enabled = enabled
	}
}

// WithOverlay marks this layer as an overlay layer.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// New returns a new Layers object.
func New() *Layers {
	return &Layers{
		Box:                  zscroll.NewBox(),
		backgroundLayerStyle: tcell.StyleDefault.Dim(true),
	}
}

// AddLayer adds a new layer for the given primitive. A layer with the same
// name is replaced.
func (l *Layers) AddLayer(item zscroll.Primitive, opts ...Option) *Layers {
	hasFocus := l.HasFocus()
	newLayer := &layer{
		item:    item,
		visible: true,
		enabled: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(newLayer)
		}
	}
	if newLayer.name != "" {
		l.RemoveLayer(newLayer.name)
	}
	l.layers = append(l.layers, newLayer)
	l.MarkDirty()
	if hasFocus {
		l.Focus(l.setFocus)
	}
	return l
}

// RemoveLayer removes the layer with the given name.
func (l *Layers) RemoveLayer(name string) *Layers {
	for index, layer := range l.layers {
		if layer.name == name {
			l.layers = append(l.layers[:index], l.layers[index+1:]...)
			l.MarkDirty()
			break
		}
	}
	return l
}

// HasLayer returns true if a layer with the given name exists in this object.
func (l *Layers) HasLayer(name string) bool {
	return l.find(name) != nil
}

// GetVisible returns whether the given layer is visible.
func (l *Layers) GetVisible(name string) bool {
	if layer := l.find(name); layer != nil {
		return layer.visible
	}
	return false
}

// SetVisible shows or hides a layer.
func (l *Layers) SetVisible(name string, visible bool) *Layers {
	layer := l.find(name)
	if layer == nil || layer.visible == visible {
		return l
	}
	layer.visible = visible
	l.MarkDirty()
	if l.HasFocus() {
		l.Focus(l.setFocus)
	}
	return l
}

// ToggleLayer flips a layer's visibility.
func (l *Layers) ToggleLayer(name string) *Layers {
	return l.SetVisible(name, !l.GetVisible(name))
}

// SetBackgroundLayerStyle sets the style applied to layers behind the
// visible overlay layer.
func (l *Layers) SetBackgroundLayerStyle(style tcell.Style) *Layers {
	if l.backgroundLayerStyle != style {
		l.backgroundLayerStyle = style
		l.MarkDirty()
	}
	return l
}

// SetInputCapture installs a function that sees every key event before the
// focused layer. Events it consumes go no further.
func (l *Layers) SetInputCapture(capture func(event *tcell.EventKey) zscroll.Command) *Layers {
	l.capture = capture
	return l
}

func (l *Layers) find(name string) *layer {
	for _, layer := range l.layers {
		if layer.name == name {
			return layer
		}
	}
	return nil
}

// HasFocus returns whether or not this primitive has focus.
func (l *Layers) HasFocus() bool {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return true
		}
	}
	return l.Box.HasFocus()
}

// Focus is called by the application when the primitive receives focus.
func (l *Layers) Focus(delegate func(p zscroll.Primitive)) {
	if delegate == nil {
		return // We cannot delegate so we cannot focus.
	}
	l.setFocus = delegate
	if top := l.topVisibleEnabledLayer(); top != nil {
		delegate(top.item)
		return
	}
	l.Box.Focus(delegate)
}

// Draw draws this primitive onto the screen.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	free := height
	for _, layer := range l.layers {
		if layer.visible && layer.dock > 0 && !layer.overlay {
			free -= layer.dock
		}
	}
	free = max(free, 0)

	overlayIndex := l.topVisibleOverlayIndex()
	var ovScreen *overlayScreen
	if overlayIndex >= 0 {
		ovScreen = newOverlayScreen(screen, l.backgroundLayerStyle)
	}
	bottom := y + height
	for index, layer := range l.layers {
		if !layer.visible {
			continue
		}
		switch {
		case layer.dock > 0 && layer.overlay:
			layer.item.SetRect(x, y+height-layer.dock, width, layer.dock)
		case layer.dock > 0:
			bottom -= layer.dock
			layer.item.SetRect(x, bottom, width, layer.dock)
		case layer.resize:
			layer.item.SetRect(x, y, width, free)
		}
		layerScreen := screen
		if ovScreen != nil && index < overlayIndex {
			// Draw lower layers through the overlay screen so only the touched
			// cells get styled.
			layerScreen = ovScreen
		}
		layer.item.Draw(layerScreen)
	}
}

// MouseHandler passes mouse events to the front-most visible layer that
// takes them, but never to layers behind a visible overlay.
func (l *Layers) MouseHandler(action zscroll.MouseAction, event *tcell.EventMouse) (zscroll.Primitive, zscroll.Command) {
	overlayIndex := l.topVisibleOverlayIndex()
	var cmd zscroll.Command
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if !layer.visible || !layer.enabled {
			continue
		}
		if overlayIndex >= 0 && index < overlayIndex {
			break
		}
		var capture zscroll.Primitive
		var next zscroll.Command
		capture, next = layer.item.MouseHandler(action, event)
		cmd = zscroll.AppendCommand(cmd, next)
		if capture != nil || zscroll.IsConsumed(next) {
			return capture, cmd
		}
	}
	return nil, cmd
}

// InputHandler runs the input capture, then hands the event to the focused
// layer.
func (l *Layers) InputHandler(event *tcell.EventKey) zscroll.Command {
	var cmd zscroll.Command
	if l.capture != nil {
		cmd = l.capture(event)
		if zscroll.IsConsumed(cmd) {
			return cmd
		}
	}
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return zscroll.AppendCommand(cmd, layer.item.InputHandler(event))
		}
	}
	return cmd
}

func (l *Layers) topVisibleEnabledLayer() *layer {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.enabled {
			return layer
		}
	}
	return nil
}

// topVisibleOverlayIndex returns the index of the top-most visible overlay
// layer, or -1.
func (l *Layers) topVisibleOverlayIndex() int {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.overlay {
			return index
		}
	}
	return -1
}

type overlayScreen struct {
	tcell.Screen
	overlay tcell.Style
}

func newOverlayScreen(screen tcell.Screen, overlay tcell.Style) *overlayScreen {
	return &overlayScreen{
		Screen:  screen,
		overlay: overlay,
	}
}

func (s *overlayScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, applyBackgroundStyle(style, s.overlay))
}

func applyBackgroundStyle(base tcell.Style, overlay tcell.Style) tcell.Style {
	overlayFg, overlayBg, attrs := overlay.Decompose()

	// Apply overlay foreground/background only when explicitly set.
	if overlayFg != tcell.ColorDefault {
		base = base.Foreground(overlayFg)
	}
	if overlayBg != tcell.ColorDefault {
		base = base.Background(overlayBg)
	}

	// Attributes are additive so the overlay never removes existing ones.
	_, _, baseAttrs := base.Decompose()
	return base.Attributes(baseAttrs | attrs)
}

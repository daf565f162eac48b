package teascroll

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xqrs/zscroll"
)

// Styles holds the lipgloss styles of a Model.
type Styles struct {
	Content       lipgloss.Style
	Track         lipgloss.Style
	Dragger       lipgloss.Style
	DraggerHover  lipgloss.Style
	DraggerActive lipgloss.Style
	Status        lipgloss.Style

	// Glyphs is applied to bars when they are created.
	Glyphs zscroll.GlyphSet
}

// DefaultStyles returns styles that read on light and dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Content:       lipgloss.NewStyle(),
		Track:         lipgloss.NewStyle().Faint(true),
		Dragger:       lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "240"}),
		DraggerHover:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"}),
		DraggerActive: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"}),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Glyphs:        zscroll.UnicodeGlyphSet(),
	}
}

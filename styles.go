package zscroll

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. line numbers).

	ScrollBarTrackColor    tcell.Color // Scroll bar track.
	ScrollBarDraggerColor  tcell.Color // Idle dragger.
	ScrollBarHoverColor    tcell.Color // Dragger while the pointer is over the container.
	ScrollBarDraggingColor tcell.Color // Dragger while it is being dragged.
}

// Styles defines the theme for applications. The default is for a black
// background with white text and a gray scroll bar.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorBlack,
	BorderColor:              tcell.ColorWhite,
	TitleColor:               tcell.ColorWhite,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorYellow,

	ScrollBarTrackColor:    tcell.ColorDefault,
	ScrollBarDraggerColor:  tcell.ColorGray,
	ScrollBarHoverColor:    tcell.ColorSilver,
	ScrollBarDraggingColor: tcell.ColorWhite,
}

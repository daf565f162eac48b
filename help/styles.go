package help

import "github.com/gdamore/tcell/v2"

type Styles struct {
	KeyStyle       tcell.Style
	DescStyle      tcell.Style
	SeparatorStyle tcell.Style
	EllipsisStyle  tcell.Style
	StatusStyle    tcell.Style
}

func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	normal := tcell.StyleDefault
	return Styles{
		KeyStyle:       dim,
		DescStyle:      normal,
		SeparatorStyle: dim,
		EllipsisStyle:  dim,
		StatusStyle:    normal.Bold(true),
	}
}

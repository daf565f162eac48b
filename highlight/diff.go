package highlight

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/xqrs/zscroll"
)

var (
	diffDelStyle = tcell.StyleDefault.Foreground(tcell.ColorIndianRed)
	diffAddStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkSeaGreen)
	diffEqStyle  = tcell.StyleDefault.Dim(true)
)

// Diff returns a line diff of before and after with "- ", "+ " and "  "
// prefixes.
func Diff(before, after string) []zscroll.Line {
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	builder := zscroll.NewLineBuilder()
	for _, df := range diffs {
		prefix, style := "  ", diffEqStyle
		switch df.Type {
		case dmp.DiffDelete:
			prefix, style = "- ", diffDelStyle
		case dmp.DiffInsert:
			prefix, style = "+ ", diffAddStyle
		}
		for _, line := range strings.SplitAfter(df.Text, "\n") {
			if line == "" {
				continue
			}
			builder.Write(prefix+line, style)
			if !strings.HasSuffix(line, "\n") {
				builder.NewLine()
			}
		}
	}
	return builder.Finish()
}

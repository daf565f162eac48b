// Package highlight turns source files into styled lines for a text view.
//
// The language is detected with go-enry from the file name and content and
// the text is tokenised with a Chroma lexer. Token colours come from a
// Chroma style; tokens in the style's base text colour keep the terminal's
// default foreground.
package highlight

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"

	"github.com/xqrs/zscroll"
)

const defaultStyleName = "catppuccin-mocha"

// Language returns the detected language of a file, or "" if unknown.
func Language(filename string, content []byte) string {
	return enry.GetLanguage(filepath.Base(filename), content)
}

// Lines highlights source and returns one styled line per source line. An
// empty style name selects the default style.
func Lines(filename, source, styleName string) ([]zscroll.Line, error) {
	lexer := lexerFor(Language(filename, []byte(source)), source)
	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenise %s: %w", filename, err)
	}

	style := chromaStyle(styleName)
	base := style.Get(chroma.Text).Colour
	b := zscroll.NewLineBuilder()
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		b.Write(tok.Value, tokenStyle(style.Get(tok.Type), base))
	}
	return b.Finish(), nil
}

// Plain returns source as unstyled lines.
func Plain(source string) []zscroll.Line {
	b := zscroll.NewLineBuilder()
	b.Write(source, tcell.StyleDefault)
	return b.Finish()
}

func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

// lexerFor prefers the detected language and falls back to content analysis.
func lexerFor(language, text string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

func tokenStyle(entry chroma.StyleEntry, base chroma.Colour) tcell.Style {
	style := tcell.StyleDefault
	if entry.Colour.IsSet() && entry.Colour != base {
		style = style.Foreground(tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue())))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

package styles

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ChromaStyle builds a syntax highlighting style from a theme's ANSI
// palette so highlighted config matches the terminal's colors.
func ChromaStyle(def Definition) (*chroma.Style, error) {
	d := Derive(def)
	var p [16]string
	for i, c := range def.Palette() {
		p[i] = opaque(c)
	}
	bg, text := opaque(def.Background), opaque(def.Foreground)
	comment := Blend(text, bg, 0.45)

	return chroma.NewStyle(def.ID, chroma.StyleEntries{
		chroma.Background:          fmt.Sprintf("%s bg:%s", text, bg),
		chroma.Text:                text,
		chroma.Error:               p[1],
		chroma.Comment:             "italic " + comment,
		chroma.CommentPreproc:      p[5],
		chroma.Keyword:             "bold " + p[5],
		chroma.KeywordConstant:     p[3],
		chroma.KeywordType:         p[6],
		chroma.Operator:            p[13],
		chroma.Punctuation:         text,
		chroma.Name:                text,
		chroma.NameBuiltin:         p[14],
		chroma.NameFunction:        p[4],
		chroma.NameAttribute:       p[12],
		chroma.LiteralNumber:       p[11],
		chroma.LiteralString:       p[2],
		chroma.LiteralStringEscape: p[10],
		chroma.GenericEmph:         "italic",
		chroma.GenericStrong:       "bold",
		chroma.GenericHeading:      "bold " + opaque(d.TabBar.ActiveTab.Fg),
	})
}

// Highlight writes src to w with terminal color escapes. lang names a
// chroma lexer ("lua", "json"); unknown languages fall back to plain
// text.
func Highlight(w io.Writer, lang, src string, def Definition) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style, err := ChromaStyle(def)
	if err != nil {
		return fmt.Errorf("build style for %s: %w", def.ID, err)
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", lang, err)
	}
	return formatter.Format(w, style, it)
}

// opaque drops the alpha channel of a #RRGGBBAA color; chroma only
// understands #RRGGBB.
func opaque(hex string) string {
	if len(hex) == 9 {
		return hex[:7]
	}
	return hex
}

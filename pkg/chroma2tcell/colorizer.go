// Package chroma2tcell renders chroma token streams as tview dynamic
// color tags, so highlighted text can go straight into a TextView with
// SetDynamicColors(true).
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Colorize tokenises text with the given lexer and wraps each token in
// a tview color tag derived from the named chroma style. Unknown style
// names fall back to chroma's default style.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	sb.Grow(len(text) * 2)
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		if entry.IsZero() {
			sb.WriteString(token.Value)
			continue
		}
		sb.WriteString(openTag(entry))
		sb.WriteString(token.Value)
		sb.WriteString("[-:-:-]")
	}
	return sb.String(), nil
}

// openTag formats a chroma style entry as a [fg:bg:flags] tview tag.
// Only the foreground and the bold/italic/underline flags are carried
// over; backgrounds tend to fight the hosting widget's own.
func openTag(entry chroma.StyleEntry) string {
	var sb strings.Builder
	sb.WriteByte('[')
	if entry.Colour.IsSet() {
		sb.WriteString(entry.Colour.String())
	}
	var flags string
	if entry.Bold == chroma.Yes {
		flags += "b"
	}
	if entry.Italic == chroma.Yes {
		flags += "i"
	}
	if entry.Underline == chroma.Yes {
		flags += "u"
	}
	if flags != "" {
		sb.WriteString("::")
		sb.WriteString(flags)
	}
	sb.WriteByte(']')
	return sb.String()
}

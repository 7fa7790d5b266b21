package browser

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/datatug/tviewx/pkg/files"
)

// Styles holds the colors used for listing rows. Hosts may override
// the package level Style variable before creating browsers.
type Styles struct {
	DirectoryColor tcell.Color
	FileColor      tcell.Color
	SpecialColor   tcell.Color
	UnknownColor   tcell.Color
}

var Style = Styles{
	DirectoryColor: tcell.ColorCornflowerBlue,
	FileColor:      tcell.ColorWhiteSmoke,
	SpecialColor:   tcell.ColorOrange,
	UnknownColor:   tcell.ColorGray,
}

// KindColor maps a classification to a display color. It never draws;
// callers decide how to apply the color.
func KindColor(kind files.Kind) tcell.Color {
	switch kind {
	case files.Directory:
		return Style.DirectoryColor
	case files.RegularFile:
		return Style.FileColor
	default:
		return Style.SpecialColor
	}
}

// EntryColor is KindColor over an entry's optional classification.
func EntryColor(e files.Entry) tcell.Color {
	kind, ok := e.Kind()
	if !ok {
		return Style.UnknownColor
	}
	return KindColor(kind)
}

func colorTag(color tcell.Color) string {
	return fmt.Sprintf("#%06x", color.Hex())
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skater/terminal"
)

// Palette converts RGB to tcell colors for the detected terminal capability
type Palette struct {
	mode terminal.ColorMode
}

// NewPalette creates a palette for mode
func NewPalette(mode terminal.ColorMode) Palette {
	return Palette{mode: mode}
}

// Mode returns the palette's color mode
func (p Palette) Mode() terminal.ColorMode {
	return p.mode
}

// Color maps rgb to a truecolor value or the nearest xterm-256 palette entry
func (p Palette) Color(rgb RGB) tcell.Color {
	if p.mode == terminal.ColorModeTrueColor {
		return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
	}
	return tcell.PaletteColor(int(terminal.RGBTo256(rgb.R, rgb.G, rgb.B)))
}

// Style builds a tcell style from foreground and background
func (p Palette) Style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(p.Color(fg)).Background(p.Color(bg))
}

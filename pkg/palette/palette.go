// Package palette holds the colours shared by the graphical and terminal frontends.
package palette

import (
	"image/color"

	"github.com/cbodonnell/blockfall/pkg/tetris"
)

var (
	DarkGrey  = color.RGBA{26, 31, 40, 255}
	Green     = color.RGBA{47, 230, 23, 255}
	Red       = color.RGBA{232, 18, 18, 255}
	Orange    = color.RGBA{226, 116, 17, 255}
	Yellow    = color.RGBA{237, 234, 4, 255}
	Purple    = color.RGBA{166, 0, 247, 255}
	Cyan      = color.RGBA{21, 204, 209, 255}
	Blue      = color.RGBA{13, 64, 216, 255}
	White     = color.RGBA{255, 255, 255, 255}
	DarkBlue  = color.RGBA{44, 44, 127, 255}
	LightBlue = color.RGBA{59, 85, 162, 255}
)

var kindColors = map[tetris.Kind]color.RGBA{
	tetris.KindNone: DarkGrey,
	tetris.KindL:    Green,
	tetris.KindJ:    Red,
	tetris.KindI:    Orange,
	tetris.KindO:    Yellow,
	tetris.KindS:    Purple,
	tetris.KindT:    Cyan,
	tetris.KindZ:    Blue,
}

// KindColor returns the fill colour of a cell holding k.
func KindColor(k tetris.Kind) color.RGBA {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return DarkGrey
}

var themes = []color.RGBA{DarkBlue, LightBlue, Green, Red}

// ThemeColor returns the background colour of a level theme.
func ThemeColor(theme int) color.RGBA {
	if theme < 0 {
		theme = 0
	}
	if theme >= len(themes) {
		theme = len(themes) - 1
	}
	return themes[theme]
}

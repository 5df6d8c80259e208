package objects

import (
	"image/color"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/cbodonnell/blockfall/pkg/palette"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PanelObject draws a titled box on the side of the board, optionally with a value centred in it.
type PanelObject struct {
	*BaseObject

	title      string
	value      func() string
	x, y, w, h float32
	color      color.Color
}

type NewPanelObjectOptions struct {
	Title string
	// Value may be nil for panels whose content is drawn by another object.
	Value func() string
	X     float32
	Y     float32
	W     float32
	H     float32
	Color color.Color
}

func NewPanelObject(id string, opts NewPanelObjectOptions) *PanelObject {
	clr := opts.Color
	if clr == nil {
		clr = palette.LightBlue
	}
	return &PanelObject{
		BaseObject: NewBaseObject(id, nil),
		title:      opts.Title,
		value:      opts.Value,
		x:          opts.X,
		y:          opts.Y,
		w:          opts.W,
		h:          opts.H,
		color:      clr,
	}
}

func (o *PanelObject) Draw(screen *ebiten.Image) {
	cx := float64(o.x + o.w/2)
	DrawText(screen, o.title, fonts.TTFLargeFont, cx, float64(o.y)-8, AlignCenter, color.White)
	vector.DrawFilledRect(screen, o.x, o.y, o.w, o.h, o.color, false)
	if o.value == nil {
		return
	}
	cy := float64(o.y + o.h/2)
	DrawText(screen, o.value(), fonts.TTFLargeFont, cx, cy+12, AlignCenter, color.White)
}

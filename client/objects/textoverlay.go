package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

type Align int

const (
	AlignCenter Align = iota
	AlignLeft
)

// TextObject draws a line of text whose content may change every frame.
// Y is the baseline.
type TextObject struct {
	*BaseObject

	text  func() string
	face  font.Face
	x, y  float64
	align Align
	color color.Color
}

type NewTextObjectOptions struct {
	// Text returns the text to draw. Empty text draws nothing.
	Text  func() string
	Face  font.Face
	X     float64
	Y     float64
	Align Align
	// Color defaults to white.
	Color  color.Color
	ZIndex int
}

func NewTextObject(id string, opts NewTextObjectOptions) *TextObject {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		face:       opts.Face,
		x:          opts.X,
		y:          opts.Y,
		align:      opts.Align,
		color:      clr,
	}
}

// NewStaticTextObject draws s centred on x.
func NewStaticTextObject(id, s string, face font.Face, x, y float64, clr color.Color) *TextObject {
	return NewTextObject(id, NewTextObjectOptions{
		Text:  func() string { return s },
		Face:  face,
		X:     x,
		Y:     y,
		Color: clr,
	})
}

func (o *TextObject) Draw(screen *ebiten.Image) {
	t := o.text()
	if t == "" {
		return
	}
	DrawText(screen, t, o.face, o.x, o.y, o.align, o.color)
}

// DrawText draws t with its baseline at y, either centred on x or starting at x.
func DrawText(screen *ebiten.Image, t string, face font.Face, x, y float64, align Align, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	if align == AlignCenter {
		width := font.MeasureString(face, t)
		x -= float64(width.Round()) / 2
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, t, face, op)
}

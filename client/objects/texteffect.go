package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextEffect is a short lived text that drifts upwards, used for points popups.
type TextEffect struct {
	*BaseObject

	text  string
	x     float64
	y     float64
	color color.Color
	ttl   int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the x-coordinate of the text centre.
	X float64
	// Y is the baseline the text starts at.
	Y float64
	// Color is the color of the text.
	Color color.Color
	// TTL is the time to live in milliseconds.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		text:  opts.Text,
		x:     opts.X,
		y:     opts.Y,
		color: clr,
		ttl:   opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	factor := 60 / float64(ebiten.TPS())
	o.y -= 1 * factor
	o.ttl -= 1000 / ebiten.TPS()
	if o.ttl <= 0 {
		parent := o.GetParent()
		if parent == nil {
			return nil
		}
		if err := parent.RemoveChild(o.GetID()); err != nil {
			return fmt.Errorf("failed to remove text effect from parent: %w", err)
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	DrawText(screen, o.text, fonts.TTFLargeFont, o.x, o.y, AlignCenter, o.color)
}

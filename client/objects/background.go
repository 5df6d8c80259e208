package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// BackgroundObject fills the screen with a colour that may change every frame.
type BackgroundObject struct {
	*BaseObject

	color func() color.Color
}

func NewBackgroundObject(id string, clr func() color.Color) *BackgroundObject {
	return &BackgroundObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: -100}),
		color:      clr,
	}
}

func (o *BackgroundObject) Draw(screen *ebiten.Image) {
	screen.Fill(o.color())
}

package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/palette"
	"github.com/hajimehoshi/ebiten/v2"
)

// ScoreListObject draws a ranked leaderboard, or why it could not be loaded.
type ScoreListObject struct {
	*BaseObject

	entries func() ([]leaderboard.Entry, error)
	x, y    float64
}

const scoreListLineHeight = 26

func NewScoreListObject(id string, entries func() ([]leaderboard.Entry, error), x, y float64) *ScoreListObject {
	return &ScoreListObject{
		BaseObject: NewBaseObject(id, nil),
		entries:    entries,
		x:          x,
		y:          y,
	}
}

func (o *ScoreListObject) Draw(screen *ebiten.Image) {
	entries, err := o.entries()
	if err != nil {
		DrawText(screen, err.Error(), fonts.TTFSmallFont, ScreenWidth/2, o.y, AlignCenter, palette.Red)
		return
	}
	if len(entries) == 0 {
		DrawText(screen, "No scores yet", fonts.TTFSmallFont, ScreenWidth/2, o.y, AlignCenter, color.White)
		return
	}
	for i, e := range entries {
		y := o.y + float64(i*scoreListLineHeight)
		DrawText(screen, fmt.Sprintf("%2d. %s", i+1, e.Name), fonts.TTFSmallFont, o.x, y, AlignLeft, color.White)
		DrawText(screen, fmt.Sprintf("%d", e.Score), fonts.TTFSmallFont, ScreenWidth-o.x-60, y, AlignLeft, color.White)
	}
}


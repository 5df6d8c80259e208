package objects

import (
	"github.com/cbodonnell/blockfall/pkg/palette"
	"github.com/cbodonnell/blockfall/pkg/tetris"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PreviewObject draws the next piece centred in a box.
type PreviewObject struct {
	*BaseObject

	engine     *tetris.Engine
	x, y, w, h float32
}

func NewPreviewObject(id string, engine *tetris.Engine, x, y, w, h float32) *PreviewObject {
	return &PreviewObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 10}),
		engine:     engine,
		x:          x,
		y:          y,
		w:          w,
		h:          h,
	}
}

func (o *PreviewObject) Draw(screen *ebiten.Image) {
	next := o.engine.Next()
	if len(next.Cells) == 0 {
		return
	}

	minRow, maxRow := next.Cells[0].Row, next.Cells[0].Row
	minCol, maxCol := next.Cells[0].Col, next.Cells[0].Col
	for _, c := range next.Cells[1:] {
		minRow, maxRow = min(minRow, c.Row), max(maxRow, c.Row)
		minCol, maxCol = min(minCol, c.Col), max(maxCol, c.Col)
	}
	pieceW := float32((maxCol - minCol + 1) * CellSize)
	pieceH := float32((maxRow - minRow + 1) * CellSize)
	originX := o.x + (o.w-pieceW)/2
	originY := o.y + (o.h-pieceH)/2

	clr := palette.KindColor(next.Kind)
	for _, c := range next.Cells {
		x := originX + float32((c.Col-minCol)*CellSize)
		y := originY + float32((c.Row-minRow)*CellSize)
		vector.DrawFilledRect(screen, x+1, y+1, CellSize-1, CellSize-1, clr, false)
	}
}

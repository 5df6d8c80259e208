package objects

import (
	"image/color"

	"github.com/cbodonnell/blockfall/pkg/palette"
	"github.com/cbodonnell/blockfall/pkg/tetris"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardObject draws the locked cells, the ghost and the falling piece of an engine.
type BoardObject struct {
	*BaseObject

	engine *tetris.Engine
	x, y   float32
}

type NewBoardObjectOptions struct {
	Engine *tetris.Engine
	// X and Y are the top left corner of the board.
	X float32
	Y float32
	// ZIndex is the z-index of the board.
	ZIndex int
}

func NewBoardObject(id string, opts NewBoardObjectOptions) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		engine: opts.Engine,
		x:      opts.X,
		y:      opts.Y,
	}
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	board := o.engine.Board()
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			o.drawCell(screen, r, c, palette.KindColor(board.Cell(r, c)))
		}
	}

	if o.engine.GameOver() {
		return
	}

	current := o.engine.Current()
	clr := palette.KindColor(current.Kind)
	ghost := color.RGBA{clr.R, clr.G, clr.B, 110}
	for _, p := range o.engine.Ghost() {
		x, y := o.cellOrigin(p.Row, p.Col)
		vector.StrokeRect(screen, x+1, y+1, CellSize-3, CellSize-3, 2, ghost, false)
	}
	for _, p := range current.Cells {
		o.drawCell(screen, p.Row, p.Col, clr)
	}
}

func (o *BoardObject) cellOrigin(row, col int) (float32, float32) {
	return o.x + float32(col*CellSize), o.y + float32(row*CellSize)
}

func (o *BoardObject) drawCell(screen *ebiten.Image, row, col int, clr color.Color) {
	x, y := o.cellOrigin(row, col)
	vector.DrawFilledRect(screen, x+1, y+1, CellSize-1, CellSize-1, clr, false)
}

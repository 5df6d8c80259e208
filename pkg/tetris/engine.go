package tetris

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrNegativePoints is returned when a negative drop bonus is awarded.
var ErrNegativePoints = errors.New("points must not be negative")

// BoardView is a read-only view of the board.
type BoardView interface {
	Rows() int
	Cols() int
	Cell(row, col int) Kind
}

type boardView struct {
	board *Board
}

func (v boardView) Rows() int {
	return v.board.Rows()
}

func (v boardView) Cols() int {
	return v.board.Cols()
}

func (v boardView) Cell(row, col int) Kind {
	return v.board.Cell(row, col)
}

// PieceView describes a piece for rendering.
type PieceView struct {
	Kind  Kind
	Cells []Position
}

// LockResult reports what happened when a piece locked into the board.
type LockResult struct {
	RowsCleared int
	Points      int
	GameOver    bool
}

// DropResult reports the outcome of a soft or hard drop.
type DropResult struct {
	// Distance is the number of rows the piece fell.
	Distance int
	// Locked is set when the drop fixed the piece into the board.
	Locked bool
	// Lock is only meaningful when Locked is set.
	Lock LockResult
}

type EngineOptions struct {
	// Rows and Cols are the board dimensions. Zero means the default 20x10.
	Rows int
	Cols int
	// Rand drives the bag shuffle. A time seeded source is used when nil.
	Rand *rand.Rand
	// Scoring is the line clear award table. DefaultScoreTable is used when nil.
	Scoring ScoreTable
}

// Engine owns the board, the bag and the current and next pieces, and applies
// player moves to them. Invalid moves are reverted silently. The only terminal
// condition is game over, which is reached when a freshly spawned piece does
// not fit on the board. Engine is not safe for concurrent use.
type Engine struct {
	board    *Board
	bag      *Bag
	scoring  ScoreTable
	current  *Piece
	next     *Piece
	score    int
	lines    int
	gameOver bool
}

func NewEngine(opts EngineOptions) (*Engine, error) {
	rows, cols := opts.Rows, opts.Cols
	if rows == 0 {
		rows = DefaultRows
	}
	if cols == 0 {
		cols = DefaultCols
	}
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	if cols < 4 || rows < 4 {
		return nil, fmt.Errorf("board %dx%d is too small for a tetromino", rows, cols)
	}

	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	scoring := opts.Scoring
	if scoring == nil {
		scoring = DefaultScoreTable
	}

	e := &Engine{
		board:   board,
		bag:     NewBag(rng),
		scoring: scoring,
	}
	e.Reset()
	return e, nil
}

// Reset empties the board, reshuffles the bag, draws new current and next pieces
// and clears the score and game over flag.
func (e *Engine) Reset() {
	e.board.Reset()
	e.bag.Refill()
	e.current = e.spawn(e.bag.Draw())
	e.next = e.spawn(e.bag.Draw())
	e.score = 0
	e.lines = 0
	e.gameOver = false
}

func (e *Engine) spawn(k Kind) *Piece {
	p := NewPiece(k)
	offset := spawnOffset(k, e.board.Cols())
	p.Move(offset.Row, offset.Col)
	return p
}

// fits reports whether every cell of p is inside the board and empty.
func (e *Engine) fits(p *Piece) bool {
	for _, c := range p.Cells() {
		if !e.board.IsEmpty(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// shift moves the current piece and reverts the move when it does not fit.
func (e *Engine) shift(dRow, dCol int) bool {
	e.current.Move(dRow, dCol)
	if !e.fits(e.current) {
		e.current.Move(-dRow, -dCol)
		return false
	}
	return true
}

func (e *Engine) MoveLeft() bool {
	if e.gameOver {
		return false
	}
	return e.shift(0, -1)
}

func (e *Engine) MoveRight() bool {
	if e.gameOver {
		return false
	}
	return e.shift(0, 1)
}

// SoftDrop moves the current piece down one row, locking it when it cannot move.
func (e *Engine) SoftDrop() DropResult {
	if e.gameOver {
		return DropResult{}
	}
	if e.shift(1, 0) {
		return DropResult{Distance: 1}
	}
	return DropResult{Locked: true, Lock: e.lock()}
}

// HardDrop drops the current piece as far as it goes and locks it.
func (e *Engine) HardDrop() DropResult {
	if e.gameOver {
		return DropResult{}
	}
	distance := 0
	for e.shift(1, 0) {
		distance++
	}
	return DropResult{Distance: distance, Locked: true, Lock: e.lock()}
}

// Rotate rotates the current piece, reverting when the rotated piece does not fit.
func (e *Engine) Rotate() bool {
	if e.gameOver {
		return false
	}
	e.current.Rotate()
	if !e.fits(e.current) {
		e.current.UndoRotation()
		return false
	}
	return true
}

func (e *Engine) lock() LockResult {
	for _, c := range e.current.Cells() {
		if err := e.board.Fill(c.Row, c.Col, e.current.Kind()); err != nil {
			// the current piece always fits, so this is a broken invariant
			panic(fmt.Sprintf("failed to lock %s piece: %v", e.current.Kind(), err))
		}
	}

	cleared := e.board.ClearFullRows()
	points := e.scoring.Points(cleared)
	e.score += points
	e.lines += cleared

	e.current = e.next
	e.next = e.spawn(e.bag.Draw())
	if !e.fits(e.current) {
		e.gameOver = true
	}

	return LockResult{
		RowsCleared: cleared,
		Points:      points,
		GameOver:    e.gameOver,
	}
}

// AddDropPoints adds a caller computed drop bonus to the score.
func (e *Engine) AddDropPoints(points int) error {
	if points < 0 {
		return fmt.Errorf("failed to add %d drop points: %w", points, ErrNegativePoints)
	}
	e.score += points
	return nil
}

func (e *Engine) Score() int {
	return e.score
}

// Lines returns the number of rows cleared since the last reset.
func (e *Engine) Lines() int {
	return e.lines
}

func (e *Engine) GameOver() bool {
	return e.gameOver
}

func (e *Engine) Board() BoardView {
	return boardView{board: e.board}
}

func (e *Engine) Current() PieceView {
	return PieceView{Kind: e.current.Kind(), Cells: e.current.Cells()}
}

func (e *Engine) Next() PieceView {
	return PieceView{Kind: e.next.Kind(), Cells: e.next.Cells()}
}

// Ghost returns the cells the current piece would occupy after a hard drop.
func (e *Engine) Ghost() []Position {
	ghost := e.current.Clone()
	for {
		ghost.Move(1, 0)
		if !e.fits(ghost) {
			ghost.Move(-1, 0)
			return ghost.Cells()
		}
	}
}

package tetris

import "fmt"

// Kind identifies a tetromino shape. The zero value marks an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindL
	KindJ
	KindI
	KindO
	KindS
	KindT
	KindZ
)

// Kinds lists every playable kind.
var Kinds = []Kind{KindL, KindJ, KindI, KindO, KindS, KindT, KindZ}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	}
	return "Unknown"
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindL && k <= KindZ
}

// Position is a (row, column) cell on the board. Row 0 is the top.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// shape holds the relative cells of every rotation state of a kind
// and the offset a freshly spawned piece is moved to on a 10 column board.
type shape struct {
	rotations [][]Position
	spawn     Position
}

var shapes = map[Kind]shape{
	KindL: {
		rotations: [][]Position{
			{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		},
		spawn: Position{0, 3},
	},
	KindJ: {
		rotations: [][]Position{
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
		},
		spawn: Position{0, 3},
	},
	KindI: {
		rotations: [][]Position{
			{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		},
		spawn: Position{-1, 3},
	},
	KindO: {
		rotations: [][]Position{
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
		spawn: Position{0, 4},
	},
	KindS: {
		rotations: [][]Position{
			{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		},
		spawn: Position{0, 3},
	},
	KindT: {
		rotations: [][]Position{
			{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
			{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
		},
		spawn: Position{0, 3},
	},
	KindZ: {
		rotations: [][]Position{
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
			{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
		},
		spawn: Position{0, 3},
	},
}

// RotationStates returns the number of rotation states of k, or 0 for an invalid kind.
func RotationStates(k Kind) int {
	return len(shapes[k].rotations)
}

// Piece is a tetromino with a rotation state and an offset from the board origin.
// A Piece knows nothing about the board; validating a move is the engine's job.
type Piece struct {
	kind     Kind
	rotation int
	offset   Position
}

// NewPiece returns a piece of kind k at rotation 0 with a zero offset.
// It panics if k is not a playable kind.
func NewPiece(k Kind) *Piece {
	if !k.Valid() {
		panic(fmt.Sprintf("invalid piece kind %d", k))
	}
	return &Piece{kind: k}
}

func (p *Piece) Kind() Kind {
	return p.kind
}

func (p *Piece) Rotation() int {
	return p.rotation
}

func (p *Piece) Offset() Position {
	return p.offset
}

// Move translates the piece by dRow rows and dCol columns.
func (p *Piece) Move(dRow, dCol int) {
	p.offset.Row += dRow
	p.offset.Col += dCol
}

// Rotate advances the rotation state.
func (p *Piece) Rotate() {
	p.rotation = (p.rotation + 1) % RotationStates(p.kind)
}

// UndoRotation reverts the last Rotate.
func (p *Piece) UndoRotation() {
	n := RotationStates(p.kind)
	p.rotation = (p.rotation - 1 + n) % n
}

// Cells returns the absolute board positions occupied by the piece.
func (p *Piece) Cells() []Position {
	rel := shapes[p.kind].rotations[p.rotation]
	cells := make([]Position, len(rel))
	for i, c := range rel {
		cells[i] = Position{Row: c.Row + p.offset.Row, Col: c.Col + p.offset.Col}
	}
	return cells
}

func (p *Piece) Clone() *Piece {
	clone := *p
	return &clone
}

// spawnOffset returns where a piece of kind k enters a board with the given number of columns.
func spawnOffset(k Kind, cols int) Position {
	spawn := shapes[k].spawn
	spawn.Col += (cols - DefaultCols) / 2
	return spawn
}

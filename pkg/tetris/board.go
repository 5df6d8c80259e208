package tetris

import (
	"errors"
	"fmt"
)

const (
	DefaultRows = 20
	DefaultCols = 10
)

var (
	// ErrOutOfBounds is returned when a cell outside the board is addressed.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidKind is returned when a board cell is filled with KindNone or an unknown kind.
	ErrInvalidKind = errors.New("invalid piece kind")
	// ErrInvalidDimensions is returned for a board without rows or columns.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)

// Board is a fixed size grid of cells. Each cell is either KindNone or the kind
// of the piece that filled it.
type Board struct {
	rows  int
	cols  int
	cells [][]Kind
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w %dx%d", ErrInvalidDimensions, rows, cols)
	}
	cells := make([][]Kind, rows)
	for r := range cells {
		cells[r] = make([]Kind, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) IsInside(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsEmpty reports whether the cell is inside the board and unfilled.
func (b *Board) IsEmpty(row, col int) bool {
	return b.IsInside(row, col) && b.cells[row][col] == KindNone
}

// Cell returns the kind stored at the cell, or KindNone outside the board.
func (b *Board) Cell(row, col int) Kind {
	if !b.IsInside(row, col) {
		return KindNone
	}
	return b.cells[row][col]
}

func (b *Board) Fill(row, col int, kind Kind) error {
	if !b.IsInside(row, col) {
		return fmt.Errorf("failed to fill %s: %w", Position{row, col}, ErrOutOfBounds)
	}
	if !kind.Valid() {
		return fmt.Errorf("failed to fill %s with %d: %w", Position{row, col}, kind, ErrInvalidKind)
	}
	b.cells[row][col] = kind
	return nil
}

func (b *Board) isRowFull(row int) bool {
	for _, k := range b.cells[row] {
		if k == KindNone {
			return false
		}
	}
	return true
}

func (b *Board) clearRow(row int) {
	for c := range b.cells[row] {
		b.cells[row][c] = KindNone
	}
}

// ClearFullRows removes every full row at once. Each remaining row moves down by
// the number of cleared rows beneath it and the freed rows at the top are emptied.
// It returns the number of rows cleared.
func (b *Board) ClearFullRows() int {
	completed := 0
	for row := b.rows - 1; row >= 0; row-- {
		if b.isRowFull(row) {
			b.clearRow(row)
			completed++
			continue
		}
		if completed > 0 {
			copy(b.cells[row+completed], b.cells[row])
			b.clearRow(row)
		}
	}
	return completed
}

func (b *Board) Reset() {
	for row := range b.cells {
		b.clearRow(row)
	}
}

// Snapshot returns a copy of the cells, indexed [row][col].
func (b *Board) Snapshot() [][]Kind {
	snapshot := make([][]Kind, b.rows)
	for r := range b.cells {
		snapshot[r] = make([]Kind, b.cols)
		copy(snapshot[r], b.cells[r])
	}
	return snapshot
}

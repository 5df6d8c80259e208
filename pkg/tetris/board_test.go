package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, rows, cols int) *Board {
	t.Helper()
	b, err := NewBoard(rows, cols)
	require.NoError(t, err)
	return b
}

func fillRow(t *testing.T, b *Board, row int, kind Kind, skip ...int) {
	t.Helper()
	skipped := map[int]bool{}
	for _, c := range skip {
		skipped[c] = true
	}
	for c := 0; c < b.Cols(); c++ {
		if skipped[c] {
			continue
		}
		require.NoError(t, b.Fill(row, c, kind))
	}
}

func TestNewBoard(t *testing.T) {
	_, err := NewBoard(0, 10)
	assert.Error(t, err)
	_, err = NewBoard(20, -1)
	assert.Error(t, err)

	b := newTestBoard(t, 20, 10)
	assert.Equal(t, 20, b.Rows())
	assert.Equal(t, 10, b.Cols())
}

func TestBoard_IsInsideIsEmpty(t *testing.T) {
	b := newTestBoard(t, 4, 3)
	tests := []struct {
		row, col int
		inside   bool
	}{
		{0, 0, true},
		{3, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 3, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.inside, b.IsInside(tt.row, tt.col), "IsInside(%d,%d)", tt.row, tt.col)
		assert.Equal(t, tt.inside, b.IsEmpty(tt.row, tt.col), "IsEmpty(%d,%d)", tt.row, tt.col)
	}

	require.NoError(t, b.Fill(1, 1, KindZ))
	assert.False(t, b.IsEmpty(1, 1))
	assert.Equal(t, KindZ, b.Cell(1, 1))
	assert.Equal(t, KindNone, b.Cell(10, 10))
}

func TestBoard_FillPreconditions(t *testing.T) {
	b := newTestBoard(t, 4, 3)

	err := b.Fill(4, 0, KindT)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	err = b.Fill(0, 0, KindNone)
	assert.ErrorIs(t, err, ErrInvalidKind)

	assert.True(t, b.IsEmpty(0, 0))
}

func TestBoard_ClearFullRows_nonContiguous(t *testing.T) {
	b := newTestBoard(t, 8, 4)

	// every row gets one marker cell so shifts are observable
	for r := 0; r < b.Rows(); r++ {
		require.NoError(t, b.Fill(r, r%b.Cols(), Kinds[r%len(Kinds)]))
	}
	fillRow(t, b, 2, KindI)
	fillRow(t, b, 5, KindI)
	before := b.Snapshot()

	cleared := b.ClearFullRows()
	require.Equal(t, 2, cleared)

	after := b.Snapshot()
	// rows below the lowest cleared row stay put
	assert.Equal(t, before[6], after[6])
	assert.Equal(t, before[7], after[7])
	// rows between the cleared rows move down by one
	assert.Equal(t, before[3], after[4])
	assert.Equal(t, before[4], after[5])
	// rows above both move down by two
	assert.Equal(t, before[0], after[2])
	assert.Equal(t, before[1], after[3])
	// the top is refilled with empty rows
	assert.Equal(t, []Kind{KindNone, KindNone, KindNone, KindNone}, after[0])
	assert.Equal(t, []Kind{KindNone, KindNone, KindNone, KindNone}, after[1])
}

func TestBoard_ClearFullRows(t *testing.T) {
	tests := []struct {
		name string
		full []int
		want int
	}{
		{name: "none", full: nil, want: 0},
		{name: "bottom row", full: []int{5}, want: 1},
		{name: "tetris", full: []int{2, 3, 4, 5}, want: 4},
		{name: "top row", full: []int{0}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, 6, 5)
			for _, r := range tt.full {
				fillRow(t, b, r, KindL)
			}
			fillRow(t, b, 1, KindJ, 0)

			assert.Equal(t, tt.want, b.ClearFullRows())
			// the partial row survives and is never cleared
			partial := 0
			for r := 0; r < b.Rows(); r++ {
				if b.Cell(r, 1) == KindJ {
					partial++
				}
			}
			assert.Equal(t, 1, partial)
		})
	}
}

func TestBoard_Reset(t *testing.T) {
	b := newTestBoard(t, 5, 5)
	fillRow(t, b, 4, KindO)
	fillRow(t, b, 3, KindS, 2)

	b.Reset()

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			assert.True(t, b.IsEmpty(r, c))
		}
	}
}

func TestBoard_SnapshotIsCopy(t *testing.T) {
	b := newTestBoard(t, 2, 2)
	snapshot := b.Snapshot()
	snapshot[0][0] = KindT
	assert.True(t, b.IsEmpty(0, 0))
}

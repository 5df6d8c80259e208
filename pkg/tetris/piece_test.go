package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPiece_CellsPerRotation(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			p := NewPiece(k)
			states := RotationStates(k)
			if k == KindO {
				assert.Equal(t, 1, states)
			} else {
				assert.Equal(t, 4, states)
			}
			for i := 0; i < states; i++ {
				cells := p.Cells()
				assert.Len(t, cells, 4, "rotation %d", p.Rotation())

				seen := map[Position]bool{}
				for _, c := range cells {
					assert.False(t, seen[c], "duplicate cell %s in rotation %d", c, p.Rotation())
					seen[c] = true
				}
				p.Rotate()
			}
			assert.Equal(t, 0, p.Rotation(), "rotation wraps after a full turn")
		})
	}
}

func TestPiece_RotateUndoRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		for start := 0; start < RotationStates(k); start++ {
			p := NewPiece(k)
			p.Move(3, 2)
			for i := 0; i < start; i++ {
				p.Rotate()
			}
			before := p.Cells()

			p.Rotate()
			p.UndoRotation()

			assert.Equal(t, before, p.Cells(), "kind %s rotation %d", k, start)
			assert.Equal(t, start, p.Rotation())
		}
	}
}

func TestPiece_UndoRotationFromZero(t *testing.T) {
	p := NewPiece(KindT)
	p.UndoRotation()
	assert.Equal(t, 3, p.Rotation())

	o := NewPiece(KindO)
	o.UndoRotation()
	assert.Equal(t, 0, o.Rotation())
}

func TestPiece_Move(t *testing.T) {
	p := NewPiece(KindO)
	p.Move(2, 3)
	assert.Equal(t, []Position{{2, 3}, {2, 4}, {3, 3}, {3, 4}}, p.Cells())

	p.Move(-1, -1)
	assert.Equal(t, Position{1, 2}, p.Offset())
}

func TestPiece_Clone(t *testing.T) {
	p := NewPiece(KindS)
	clone := p.Clone()
	clone.Move(5, 0)
	clone.Rotate()

	assert.Equal(t, Position{0, 0}, p.Offset())
	assert.Equal(t, 0, p.Rotation())
}

func TestNewPiece_invalidKind(t *testing.T) {
	assert.Panics(t, func() { NewPiece(KindNone) })
	assert.Panics(t, func() { NewPiece(Kind(42)) })
}

func TestSpawnOffset(t *testing.T) {
	assert.Equal(t, Position{0, 4}, spawnOffset(KindO, DefaultCols))
	assert.Equal(t, Position{-1, 3}, spawnOffset(KindI, DefaultCols))
	assert.Equal(t, Position{0, 5}, spawnOffset(KindT, 14))
}

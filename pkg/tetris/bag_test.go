package tetris

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBag_DrawsEveryKindOncePerGroup(t *testing.T) {
	b := NewBag(rand.New(rand.NewPCG(7, 11)))

	for group := 0; group < 10; group++ {
		taken := map[Kind]int{}
		for i := 0; i < len(Kinds); i++ {
			taken[b.Draw()]++
		}
		assert.Len(t, taken, len(Kinds), "group %d", group)
		for _, k := range Kinds {
			assert.Equal(t, 1, taken[k], "group %d kind %s", group, k)
		}
	}
}

func TestBag_Refill(t *testing.T) {
	b := NewBag(rand.New(rand.NewPCG(1, 2)))
	b.Draw()
	b.Draw()
	assert.Len(t, b.Remaining(), 5)

	b.Refill()
	assert.ElementsMatch(t, Kinds, b.Remaining())
}

func TestBag_SameSeedSameSequence(t *testing.T) {
	a := NewBag(rand.New(rand.NewPCG(42, 42)))
	b := NewBag(rand.New(rand.NewPCG(42, 42)))
	for i := 0; i < 21; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

package tetris

import "math/rand/v2"

// Bag hands out kinds in shuffled groups of seven. Every kind appears exactly once
// per group; the bag refills itself when the group is exhausted.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
}

func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng}
	b.Refill()
	return b
}

// Refill discards whatever is left and reshuffles a full group.
func (b *Bag) Refill() {
	b.kinds = append(b.kinds[:0], Kinds...)
	b.rng.Shuffle(len(b.kinds), func(i, j int) { b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i] })
}

// Draw removes and returns the next kind.
func (b *Bag) Draw() Kind {
	if len(b.kinds) == 0 {
		b.Refill()
	}
	k := b.kinds[0]
	b.kinds = b.kinds[1:]
	return k
}

// Remaining returns the kinds left in the current group, in draw order.
func (b *Bag) Remaining() []Kind {
	remaining := make([]Kind, len(b.kinds))
	copy(remaining, b.kinds)
	return remaining
}

package belief

import (
	"fmt"

	"github.com/ratel-online/shangdaren/mahjong/card"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

// Belief counts, per kind, the copies a seat has not seen yet.
// It is a value type and is recomputed from scratch whenever anything the seat can observe changes.
type Belief struct {
	remaining [tile.Kinds]int
	total     int
}

// New returns a belief with every copy unaccounted for.
func New() Belief {
	b := Belief{total: tile.Total}
	for k := range b.remaining {
		b.remaining[k] = tile.CopiesPerKind
	}
	return b
}

// Compute builds a belief from the tiles a seat can see and every meld on the table.
func Compute(melds []card.Meld, seen ...[]tile.Tile) Belief {
	b := New()
	for _, tiles := range seen {
		for _, t := range tiles {
			b.subtract(t.Kind(), 1)
		}
	}
	for _, m := range melds {
		b.subtract(m.Kind(), m.Size())
	}
	return b
}

func (b *Belief) subtract(kind, n int) {
	if b.remaining[kind] < n {
		panic(fmt.Sprintf("belief underflow: kind %d has %d unseen, subtracting %d", kind, b.remaining[kind], n))
	}
	b.remaining[kind] -= n
	b.total -= n
}

func (b Belief) Remaining(kind int) int {
	return b.remaining[kind]
}

func (b Belief) Total() int {
	return b.total
}

// Unseen lists the kinds with at least one unaccounted copy.
func (b Belief) Unseen() []int {
	var kinds []int
	for k, n := range b.remaining {
		if n > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

package game

import (
	"fmt"

	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/util"
)

// Pile is a seat's discard history, or a neighbour's copy of it.
type Pile struct {
	tiles []tile.Tile
}

func NewPile() *Pile {
	return &Pile{tiles: make([]tile.Tile, 0, tile.Total/3)}
}

func (p *Pile) Add(t tile.Tile) {
	p.tiles = append(p.tiles, t)
}

func (p *Pile) Tiles() []tile.Tile {
	return util.SliceCopy(p.tiles)
}

func (p *Pile) Size() int {
	return len(p.tiles)
}

func (p *Pile) Top() (tile.Tile, bool) {
	if len(p.tiles) == 0 {
		return 0, false
	}
	return p.tiles[len(p.tiles)-1], true
}

// Retract removes a claimed discard, which is always the latest one.
func (p *Pile) Retract(t tile.Tile) {
	top, ok := p.Top()
	if !ok || top != t {
		panic(fmt.Sprintf("retract %d: pile top is %d (empty=%v)", t, top, !ok))
	}
	p.tiles = p.tiles[:len(p.tiles)-1]
}

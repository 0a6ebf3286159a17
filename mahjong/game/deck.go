package game

import (
	"math/rand"

	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/util"
)

// Deck is drawn from its end.
type Deck struct {
	tiles []tile.Tile
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{tiles: util.GenRange(tile.Total, tile.Tile(0))}
	shuffleTiles(rng, deck.tiles)
	return deck
}

// NewOrderedDeck returns a deck whose draws come out as 0, 1, 2 and so on.
func NewOrderedDeck() *Deck {
	tiles := make([]tile.Tile, tile.Total)
	for i := range tiles {
		tiles[i] = tile.Tile(tile.Total - 1 - i)
	}
	return &Deck{tiles: tiles}
}

func restoreDeck(tiles []tile.Tile) *Deck {
	return &Deck{tiles: tiles}
}

func (d *Deck) NoTiles() bool {
	return len(d.tiles) == 0
}

func (d *Deck) Size() int {
	return len(d.tiles)
}

func (d *Deck) DrawOne() (tile.Tile, bool) {
	if d.NoTiles() {
		return 0, false
	}
	t := d.tiles[len(d.tiles)-1]
	d.tiles = d.tiles[:len(d.tiles)-1]
	return t, true
}

func (d *Deck) Tiles() []tile.Tile {
	return util.SliceCopy(d.tiles)
}

func shuffleTiles(rng *rand.Rand, tiles []tile.Tile) {
	rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
}

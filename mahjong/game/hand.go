package game

import (
	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/util"
)

// Hand keeps tiles in the order they arrived; drawn tiles go to the end.
type Hand struct {
	tiles []tile.Tile
}

func NewHand() *Hand {
	return &Hand{tiles: make([]tile.Tile, 0, consts.HandSize+1)}
}

func (h *Hand) AddTiles(tiles ...tile.Tile) {
	h.tiles = append(h.tiles, tiles...)
}

func (h *Hand) Tiles() []tile.Tile {
	return util.SliceCopy(h.tiles)
}

func (h *Hand) IndexOf(t tile.Tile) int {
	return util.IndexOf(t, h.tiles)
}

// RemoveAt takes the tile at position i out of the hand, keeping the order of the rest.
func (h *Hand) RemoveAt(i int) tile.Tile {
	t := h.tiles[i]
	h.tiles = util.SliceRemoveAt(h.tiles, i)
	return t
}

func (h *Hand) Size() int {
	return len(h.tiles)
}

package player

import (
	"github.com/ratel-online/shangdaren/mahjong/belief"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

// View is what a robot may look at when it decides: its own hand and
// what the seat has inferred about the rest of the table. Waiting holds the
// kinds the seat was waiting on after its previous discard.
type View struct {
	Hand     []tile.Tile
	Belief   belief.Belief
	Banked   int
	Wildcard tile.Tile
	Waiting  []int
}

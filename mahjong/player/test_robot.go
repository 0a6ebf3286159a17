package player

import (
	"github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

// testRobot plays a fixed script so that hands can be replayed exactly.
type testRobot struct{}

func (testRobot) Strategy() consts.Strategy {
	return consts.Test
}

func (testRobot) Discard(View) int {
	return 0
}

func (testRobot) AcceptDing(View, tile.Tile) bool {
	return true
}

func (testRobot) AcceptPao(View, tile.Tile) bool {
	return false
}

package player

import (
	"github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

type levelOneRobot struct{}

func (levelOneRobot) Strategy() consts.Strategy {
	return consts.Level1
}

// Discard keeps the hand waiting once it is, otherwise follows the heuristic.
func (levelOneRobot) Discard(v View) int {
	if len(v.Waiting) > 0 {
		if i, ok := BestWaitingDiscard(v); ok {
			return i
		}
	}
	return ChooseDiscard(v)
}

func (levelOneRobot) AcceptDing(View, tile.Tile) bool {
	return true
}

func (levelOneRobot) AcceptPao(View, tile.Tile) bool {
	return true
}

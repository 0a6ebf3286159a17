package player

import (
	"math/rand"

	"github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

type randomRobot struct {
	rng *rand.Rand
}

func (r randomRobot) Strategy() consts.Strategy {
	return consts.Random
}

func (r randomRobot) Discard(v View) int {
	return r.rng.Intn(len(v.Hand))
}

func (r randomRobot) AcceptDing(View, tile.Tile) bool {
	return r.rng.Intn(2) == 1
}

func (r randomRobot) AcceptPao(View, tile.Tile) bool {
	return r.rng.Intn(2) == 1
}

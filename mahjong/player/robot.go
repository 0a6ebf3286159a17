package player

import (
	"math/rand"

	"github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

// Robot decides for a seat without a human behind it.
type Robot interface {
	Strategy() consts.Strategy
	// Discard returns the index of the hand tile to throw away.
	Discard(v View) int
	AcceptDing(v View, t tile.Tile) bool
	AcceptPao(v View, t tile.Tile) bool
}

func NewRobot(strategy consts.Strategy, rng *rand.Rand) Robot {
	switch strategy {
	case consts.Random:
		return randomRobot{rng: rng}
	case consts.Test:
		return testRobot{}
	default:
		return levelOneRobot{}
	}
}

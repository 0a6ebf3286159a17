package player

import (
	"github.com/ratel-online/shangdaren/mahjong/belief"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/util"
	"github.com/ratel-online/shangdaren/mahjong/win"
)

// Waiting 听牌，返回再摸到哪些种类的牌就能胡
// 已经全部可见的种类不考虑
func Waiting(hand []tile.Tile, banked int, wildcard tile.Tile, b belief.Belief) []int {
	var kinds []int
	for _, k := range b.Unseen() {
		if win.CanWin(util.SliceAppend(hand, tile.Of(k)), banked, wildcard) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// BestWaitingDiscard 找出打掉后仍然听牌、且听的牌最容易摸到的那张
func BestWaitingDiscard(v View) (int, bool) {
	best, bestScore := -1, int64(-1)
	for i := range v.Hand {
		kinds := Waiting(util.SliceRemoveAt(v.Hand, i), v.Banked, v.Wildcard, v.Belief)
		if len(kinds) == 0 {
			continue
		}
		var p float32
		for _, k := range kinds {
			p += v.Belief.ProbOf(k, 3)
		}
		if s := Fixed(p); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, best >= 0
}

package win

import (
	"github.com/ratel-online/shangdaren/mahjong/card"
	"github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

const (
	RunScore = 1
	RunBonus = 2
	SetScore = 3
	SetBonus = 3

	QuadletScore = 6
	QuadletBonus = 6
)

// Bonused 第0类和精牌所在的类计分加成
func Bonused(category int, wildcard tile.Tile) bool {
	return category == 0 || category == wildcard.Category()
}

// CanWin 判断手牌加上已认领明牌的分数是否胡牌
// 先拆顺子再拆刻子，剩下两张同类不同种的牌，并且总分不低于12
func CanWin(hand []tile.Tile, banked int, wildcard tile.Tile) bool {
	score, rest := Score(hand, wildcard)
	if !IsPairResidual(rest) {
		return false
	}
	return banked+score >= consts.WinThreshold
}

// Score 拆出所有顺子和刻子，返回得分和剩余的牌数
func Score(hand []tile.Tile, wildcard tile.Tile) (int, [tile.Kinds]int) {
	counts := tile.Count(hand)
	score := 0
	for c := 0; c < tile.Categories; c++ {
		base := c * tile.KindsPerCategory
		runs := min(counts[base], counts[base+1], counts[base+2])
		if runs == 0 {
			continue
		}
		counts[base] -= runs
		counts[base+1] -= runs
		counts[base+2] -= runs
		per := RunScore
		if Bonused(c, wildcard) {
			per += RunBonus
		}
		score += runs * per
	}
	for k := 0; k < tile.Kinds; k++ {
		if counts[k] < 3 {
			continue
		}
		counts[k] -= 3
		score += SetScore
		if Bonused(tile.CategoryOf(k), wildcard) {
			score += SetBonus
		}
	}
	return score, counts
}

// IsPairResidual 剩余正好两张，不同种但同一类
func IsPairResidual(rest [tile.Kinds]int) bool {
	var kinds []int
	total := 0
	for k, n := range rest {
		total += n
		if n > 0 {
			kinds = append(kinds, k)
		}
	}
	return total == 2 && len(kinds) == 2 && tile.CategoryOf(kinds[0]) == tile.CategoryOf(kinds[1])
}

// MeldScore 已认领明牌计入的分数
func MeldScore(m card.Meld, wildcard tile.Tile) int {
	bonused := Bonused(m.Tile.Category(), wildcard)
	if m.Op == consts.PAO {
		if bonused {
			return QuadletScore + QuadletBonus
		}
		return QuadletScore
	}
	if bonused {
		return SetScore + SetBonus
	}
	return SetScore
}

// BankedScore 所有明牌分数之和
func BankedScore(melds []card.Meld, wildcard tile.Tile) int {
	score := 0
	for _, m := range melds {
		score += MeldScore(m, wildcard)
	}
	return score
}

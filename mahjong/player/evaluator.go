package player

import (
	"fmt"
	"math"
	"sort"

	"github.com/ratel-online/shangdaren/mahjong/belief"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/util"
	"github.com/ratel-online/shangdaren/mahjong/win"
)

// Complete is the score of a group with nothing left to form.
const Complete float32 = math.MaxFloat32

// Groups 按类分组，类升序，组内按牌升序
func Groups(hand []tile.Tile) [][]tile.Tile {
	var buckets [tile.Categories][]tile.Tile
	for _, t := range hand {
		buckets[t.Category()] = append(buckets[t.Category()], t)
	}
	groups := make([][]tile.Tile, 0, tile.Categories)
	for _, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		sort.Slice(bucket, func(i, j int) bool { return bucket[i] < bucket[j] })
		groups = append(groups, bucket)
	}
	return groups
}

// FormShun 估计一组同类牌凑成顺子的概率
func FormShun(group []tile.Tile, b belief.Belief, wildcard tile.Tile) float32 {
	if len(group) == 0 {
		return Complete
	}
	counts := tile.Count(group)
	category := group[0].Category()
	base := category * tile.KindsPerCategory
	runs := min(counts[base], counts[base+1], counts[base+2])
	var missing []int
	left := 0
	for k := base; k < base+tile.KindsPerCategory; k++ {
		counts[k] -= runs
		left += counts[k]
		if counts[k] == 0 {
			missing = append(missing, k)
		}
	}
	if left == 0 {
		return Complete
	}

	var p float32
	switch len(missing) {
	case 1:
		p = b.ProbOf(missing[0], 3)
	case 2:
		a, c := missing[0], missing[1]
		p = b.ProbOf(a, 3)*b.ProbOf(c, 6) + b.ProbOf(c, 3)*b.ProbOf(a, 6)
	}
	return doubled(p, category, wildcard)
}

// FormKe 估计一组同类牌凑成刻子的概率
func FormKe(group []tile.Tile, b belief.Belief, wildcard tile.Tile) float32 {
	if len(group) == 0 {
		return Complete
	}
	counts := tile.Count(group)
	left := 0
	for k, n := range counts {
		if n >= 3 {
			counts[k] -= 3
		}
		left += counts[k]
	}
	if left == 0 {
		return Complete
	}

	var p float32
	for k, n := range counts {
		switch n {
		case 0:
		case 1:
			p += b.SameKindProbOf(k) + b.ClaimProbOf(k)
		case 2:
			p += b.ProbOf(k, 3) + b.ClaimProbOf(k)
		default:
			panic(fmt.Sprintf("form ke: kind %d left with %d copies", k, n))
		}
	}
	return doubled(p, group[0].Category(), wildcard)
}

func doubled(p float32, category int, wildcard tile.Tile) float32 {
	if win.Bonused(category, wildcard) {
		return p * 2
	}
	return p
}

// GroupScore 一组牌的综合分，空组视为已完成
func GroupScore(group []tile.Tile, b belief.Belief, wildcard tile.Tile) float32 {
	return FormShun(group, b, wildcard) + FormKe(group, b, wildcard)
}

// Fixed 将分数放大1000倍后取整用于比较，已完成的组饱和为最大值
func Fixed(score float32) int64 {
	if score >= Complete || math.IsInf(float64(score), 1) {
		return math.MaxInt64
	}
	return int64(score * 1000)
}

// ChooseDiscard 先找最差的一组，再从组里拿走损失最小的那张，返回手牌下标
func ChooseDiscard(v View) int {
	groups := Groups(v.Hand)
	worst, worstScore := 0, int64(math.MaxInt64)
	for i, group := range groups {
		if s := Fixed(GroupScore(group, v.Belief, v.Wildcard)); s < worstScore {
			worst, worstScore = i, s
		}
	}

	group := groups[worst]
	best, bestScore := 0, int64(math.MinInt64)
	for i := range group {
		if s := Fixed(GroupScore(util.SliceRemoveAt(group, i), v.Belief, v.Wildcard)); s > bestScore {
			best, bestScore = i, s
		}
	}
	return util.IndexOf(group[best], v.Hand)
}

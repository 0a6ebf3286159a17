package card

import "github.com/ratel-online/shangdaren/mahjong/tile"

// CountKind 手牌中与t同种类的牌数
func CountKind(hand []tile.Tile, t tile.Tile) int {
	n := 0
	for _, h := range hand {
		if h.Kind() == t.Kind() {
			n++
		}
	}
	return n
}

// KindIndexes 手牌中与t同种类的牌的下标，升序
func KindIndexes(hand []tile.Tile, t tile.Tile) []int {
	var idx []int
	for i, h := range hand {
		if h.Kind() == t.Kind() {
			idx = append(idx, i)
		}
	}
	return idx
}

// CanPao 手里有三张或以上同种类的牌可以跑
func CanPao(hand []tile.Tile, t tile.Tile) bool {
	return CountKind(hand, t) >= 3
}

// CanDing 手里正好两张同种类的牌可以丁
func CanDing(hand []tile.Tile, t tile.Tile) bool {
	return CountKind(hand, t) == 2
}

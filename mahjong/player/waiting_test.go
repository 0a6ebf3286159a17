package player_test

import (
	"testing"

	"github.com/ratel-online/shangdaren/mahjong/belief"
	"github.com/ratel-online/shangdaren/mahjong/player"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/util"
	"github.com/stretchr/testify/require"
)

func hand(ids ...int) []tile.Tile {
	ret := make([]tile.Tile, 0, len(ids))
	for _, id := range ids {
		ret = append(ret, tile.Tile(id))
	}
	return ret
}

func TestWaiting(t *testing.T) {
	h := hand(0, 4, 8, 1, 5, 9, 12, 13, 14, 15, 16, 20, 24, 28, 32, 25, 29, 33, 34)

	kinds := player.Waiting(h, 0, wildcard, belief.New())

	require.Contains(t, kinds, 6)
	require.NotContains(t, kinds, 9)
}

func TestWaitingIgnoresExhaustedKinds(t *testing.T) {
	h := hand(0, 4, 8, 1, 5, 9, 12, 13, 14, 15, 16, 20, 24, 28, 32, 25, 29, 33, 34)
	b := belief.Compute(nil, hand(24, 25, 26, 27))

	require.NotContains(t, player.Waiting(h, 0, wildcard, b), 6)
}

func TestBestWaitingDiscard(t *testing.T) {
	h := hand(0, 4, 8, 1, 5, 9, 12, 13, 14, 15, 16, 20, 24, 28, 32, 25, 29, 33, 34, 36)
	v := player.View{Hand: h, Belief: belief.New(), Wildcard: wildcard}

	i, ok := player.BestWaitingDiscard(v)

	require.True(t, ok)
	require.NotEmpty(t, player.Waiting(util.SliceRemoveAt(h, i), 0, wildcard, v.Belief))
}

func TestBestWaitingDiscardWithoutWaiting(t *testing.T) {
	v := player.View{Hand: hand(0, 13, 26, 39, 52, 65), Belief: belief.New(), Wildcard: wildcard}

	_, ok := player.BestWaitingDiscard(v)

	require.False(t, ok)
}

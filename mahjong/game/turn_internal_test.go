package game

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/ratel-online/shangdaren/mahjong/card"
	mconsts "github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/stretchr/testify/require"
)

func seatedGame(hands ...[]tile.Tile) *Game {
	g := New(rand.New(rand.NewSource(1)))
	for i, hand := range hands {
		s := newSeat(fmt.Sprintf("seat-%d", i), mconsts.Human)
		s.hand.AddTiles(hand...)
		g.seats = append(g.seats, s)
	}
	g.running = true
	return g
}

func TestOfferPriority(t *testing.T) {
	scenarios := []struct {
		description string
		next        []tile.Tile
		prev        []tile.Tile
		turn        int
		mode        Mode
	}{
		{description: "next seat quadlet", next: []tile.Tile{0, 1, 2}, turn: 1, mode: Mode{Op: mconsts.PAO, Tile: 3}},
		{description: "previous seat quadlet", prev: []tile.Tile{0, 1, 2}, turn: 2, mode: Mode{Op: mconsts.PAO, Tile: 3}},
		{description: "quadlet beats triplet", next: []tile.Tile{0, 1}, prev: []tile.Tile{0, 1, 2}, turn: 2, mode: Mode{Op: mconsts.PAO, Tile: 3}},
		{description: "next seat triplet first", next: []tile.Tile{0, 1}, prev: []tile.Tile{1, 2}, turn: 1, mode: Mode{Op: mconsts.DING, Tile: 3}},
		{description: "previous seat triplet", next: []tile.Tile{0}, prev: []tile.Tile{1, 2}, turn: 2, mode: Mode{Op: mconsts.DING, Tile: 3}},
		{description: "nobody claims", next: []tile.Tile{0}, prev: []tile.Tile{1}, turn: 1, mode: Normal},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			g := seatedGame([]tile.Tile{40}, scenario.next, scenario.prev)

			g.offer(0, 3)

			require.Equal(t, scenario.turn, g.turn)
			require.Equal(t, scenario.mode, g.mode)
			require.Equal(t, 0, g.prevTurn)
		})
	}
}

func TestClaimNeedsExactCopies(t *testing.T) {
	g := seatedGame([]tile.Tile{40}, []tile.Tile{0}, []tile.Tile{8})
	g.seats[0].out.Add(3)
	g.seats[1].leftOut.Add(3)
	g.seats[2].rightOut.Add(3)
	g.turn = 1
	g.mode = Mode{Op: mconsts.DING, Tile: 3}

	require.Panics(t, func() { g.resolveDing(true) })
}

func TestDeclineAdvancesPastDiscarder(t *testing.T) {
	g := seatedGame([]tile.Tile{40}, []tile.Tile{0, 1, 2}, []tile.Tile{8})
	g.offer(0, 3)
	require.Equal(t, Mode{Op: mconsts.PAO, Tile: 3}, g.mode)

	g.resolvePao(false)

	require.Equal(t, 1, g.turn)
	require.Equal(t, Normal, g.mode)
	require.False(t, g.drawn)
}

// deckWithout holds every tile not in a hand, with last drawn first.
func deckWithout(last []tile.Tile, hands ...[]tile.Tile) *Deck {
	var tiles []tile.Tile
	for t := tile.Tile(0); t < tile.Total; t++ {
		held := slices.Contains(last, t)
		for _, hand := range hands {
			held = held || slices.Contains(hand, t)
		}
		if !held {
			tiles = append(tiles, t)
		}
	}
	return restoreDeck(append(tiles, last...))
}

func TestAcceptDingDiscardsWithoutDrawing(t *testing.T) {
	hands := [][]tile.Tile{{3, 40}, {0, 1, 41}, {8}}
	g := seatedGame(hands...)
	g.deck = deckWithout(nil, hands...)
	g.drawn = true
	size := g.deck.Size()

	require.NoError(t, g.Discard(0, 3))
	require.Equal(t, 1, g.turn)
	require.Equal(t, Mode{Op: mconsts.DING, Tile: 3}, g.mode)

	require.NoError(t, g.RespondDing(1, true))

	s := g.seats[1]
	require.Equal(t, []card.Meld{card.Triplet(3)}, s.melds)
	require.Equal(t, []tile.Tile{41}, s.hand.tiles)
	require.Equal(t, 6, s.banked)
	require.Empty(t, g.seats[0].out.tiles)
	require.Equal(t, 1, g.turn)
	require.Equal(t, Normal, g.mode)
	require.Equal(t, size, g.deck.Size())

	require.NoError(t, g.Discard(1, 41))
	require.Equal(t, 2, g.turn)
	require.Equal(t, size-1, g.deck.Size())
}

func TestDrawCompletesWin(t *testing.T) {
	hand := []tile.Tile{0, 4, 8, 1, 5, 9, 12, 13, 14, 15, 16, 20, 24, 28, 32, 25, 29, 33, 34}
	g := seatedGame(hand, nil, nil)
	g.wildcard = 90
	g.deck = deckWithout([]tile.Tile{26}, hand)
	listener := event.NewDummyListener()
	g.AddListener(listener)

	g.proceed()

	require.False(t, g.running)
	require.Equal(t, 0, g.winner)
	payloads := listener.ReceivedPayloads()
	won := payloads[len(payloads)-1]
	require.Equal(t, event.HandWon, won.Type)
	require.Equal(t, 0, won.Seat)
	require.Len(t, won.Tiles, 20)
	require.NotPanics(t, g.CheckConservation)
}

func TestWaitingOnlyShownToItsSeat(t *testing.T) {
	g := seatedGame([]tile.Tile{40}, []tile.Tile{0}, []tile.Tile{8})
	g.seats[1].waiting = []int{5}

	require.Nil(t, g.ExtractState(0).Seats[1].Waiting)
	require.Nil(t, g.ExtractState(-1).Seats[1].Waiting)
	require.Equal(t, []int{5}, g.ExtractState(1).Seats[1].Waiting)
}

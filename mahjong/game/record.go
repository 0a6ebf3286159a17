package game

import (
	"math/rand"

	"github.com/ratel-online/shangdaren/mahjong/card"
	mconsts "github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/player"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/util"
	"github.com/ratel-online/shangdaren/mahjong/win"
)

type SeatRecord struct {
	Name       string           `json:"name"`
	Role       mconsts.Role     `json:"role"`
	Strategy   mconsts.Strategy `json:"strategy"`
	Ready      bool             `json:"ready"`
	Hand       []int            `json:"hand"`
	Out        []int            `json:"out"`
	Melds      []card.Meld      `json:"melds"`
	RightOut   []int            `json:"rightOut"`
	LeftOut    []int            `json:"leftOut"`
	RightMelds []card.Meld      `json:"rightMelds"`
	LeftMelds  []card.Meld      `json:"leftMelds"`
	Waiting    []int            `json:"waiting"`
}

// Record is the complete state of a game, enough to resume it elsewhere.
type Record struct {
	Seats    []SeatRecord `json:"seats"`
	Deck     []int        `json:"deck"`
	Turn     int          `json:"turn"`
	PrevTurn int          `json:"prevTurn"`
	Wildcard int          `json:"wildcard"`
	Mode     Mode         `json:"mode"`
	Winner   int          `json:"winner"`
	Running  bool         `json:"running"`
	Drawn    bool         `json:"drawn"`
	Test     bool         `json:"test"`
}

func (g *Game) Record() Record {
	r := Record{
		Seats:    make([]SeatRecord, 0, len(g.seats)),
		Deck:     tile.Ints(g.deck.tiles),
		Turn:     g.turn,
		PrevTurn: g.prevTurn,
		Wildcard: int(g.wildcard),
		Mode:     g.mode,
		Winner:   g.winner,
		Running:  g.running,
		Drawn:    g.drawn,
		Test:     g.test,
	}
	for _, s := range g.seats {
		r.Seats = append(r.Seats, SeatRecord{
			Name:       s.name,
			Role:       s.role,
			Strategy:   s.strategy,
			Ready:      s.ready,
			Hand:       tile.Ints(s.hand.tiles),
			Out:        tile.Ints(s.out.tiles),
			Melds:      util.SliceCopy(s.melds),
			RightOut:   tile.Ints(s.rightOut.tiles),
			LeftOut:    tile.Ints(s.leftOut.tiles),
			RightMelds: util.SliceCopy(s.rightMelds),
			LeftMelds:  util.SliceCopy(s.leftMelds),
			Waiting:    util.SliceCopy(s.waiting),
		})
	}
	return r
}

// Restore rebuilds a game from a record. Beliefs are recomputed, listeners are not kept.
func Restore(r Record, rng *rand.Rand) *Game {
	g := New(rng)
	g.deck = restoreDeck(tile.FromInts(r.Deck))
	g.turn = r.Turn
	g.prevTurn = r.PrevTurn
	g.wildcard = tile.Tile(r.Wildcard)
	g.mode = r.Mode
	g.winner = r.Winner
	g.running = r.Running
	g.drawn = r.Drawn
	g.test = r.Test
	for _, sr := range r.Seats {
		s := newSeat(sr.Name, sr.Role)
		if sr.Role == mconsts.Robot {
			s.setRobot(player.NewRobot(sr.Strategy, g.rng))
		}
		s.ready = sr.Ready
		s.hand.AddTiles(tile.FromInts(sr.Hand)...)
		s.out.tiles = tile.FromInts(sr.Out)
		s.rightOut.tiles = tile.FromInts(sr.RightOut)
		s.leftOut.tiles = tile.FromInts(sr.LeftOut)
		s.melds = sr.Melds
		s.rightMelds = sr.RightMelds
		s.leftMelds = sr.LeftMelds
		s.banked = win.BankedScore(s.melds, g.wildcard)
		s.waiting = sr.Waiting
		g.seats = append(g.seats, s)
	}
	g.recomputeAll()
	return g
}

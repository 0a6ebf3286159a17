package game

import (
	"fmt"
	"slices"

	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/mahjong/card"
	mconsts "github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/ratel-online/shangdaren/mahjong/player"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/win"
)

// Discard plays a tile from the hand of the seat at turn.
func (g *Game) Discard(seat int, t tile.Tile) error {
	if !g.running {
		return consts.ErrorsGameNotRunning
	}
	if !g.mode.IsNormal() {
		return consts.ErrorsClaimPending
	}
	if seat != g.turn {
		return consts.ErrorsNotYourTurn
	}
	if !g.drawn {
		return consts.ErrorsHaveToDraw
	}
	if !t.Valid() {
		return consts.ErrorsInputInvalid
	}
	i := g.seats[seat].hand.IndexOf(t)
	if i < 0 {
		return consts.ErrorsTileNotInHand
	}
	g.discard(seat, i)
	g.proceed()
	g.CheckConservation()
	return nil
}

// RespondDing answers a triplet offer on the parked discard.
func (g *Game) RespondDing(seat int, confirm bool) error {
	if err := g.checkOffer(seat, mconsts.DING); err != nil {
		return err
	}
	g.resolveDing(confirm)
	g.proceed()
	g.CheckConservation()
	return nil
}

// RespondPao answers a quadlet offer on the parked discard.
func (g *Game) RespondPao(seat int, confirm bool) error {
	if err := g.checkOffer(seat, mconsts.PAO); err != nil {
		return err
	}
	g.resolvePao(confirm)
	g.proceed()
	g.CheckConservation()
	return nil
}

func (g *Game) checkOffer(seat, op int) error {
	if !g.running {
		return consts.ErrorsGameNotRunning
	}
	if g.mode.Op != op {
		return consts.ErrorsNoClaimOffered
	}
	if seat != g.turn {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

// proceed runs the table until the hand is over or a human has to act.
func (g *Game) proceed() {
	for g.running {
		s := g.seats[g.turn]
		switch {
		case g.mode.Op == mconsts.PAO:
			if !s.IsRobot() {
				return
			}
			g.resolvePao(s.robot.AcceptPao(s.view(g.wildcard), g.mode.Tile))
		case g.mode.Op == mconsts.DING:
			if !s.IsRobot() {
				return
			}
			g.resolveDing(s.robot.AcceptDing(s.view(g.wildcard), g.mode.Tile))
		case !g.drawn:
			g.draw()
		default:
			if !s.IsRobot() {
				return
			}
			g.discard(g.turn, s.robot.Discard(s.view(g.wildcard)))
		}
	}
}

func (g *Game) draw() {
	t, ok := g.deck.DrawOne()
	if !ok {
		g.finish(mconsts.NoWinner)
		return
	}
	s := g.seats[g.turn]
	s.hand.AddTiles(t)
	s.recompute()
	g.drawn = true
	g.emitter.Emit(event.Payload{Type: event.TileDrawn, Seat: g.turn, Turn: g.turn, Tile: int(t), Private: true})
	if win.CanWin(s.hand.tiles, s.banked, g.wildcard) {
		g.finish(g.turn)
	}
}

func (g *Game) discard(seat, i int) {
	s := g.seats[seat]
	t := s.hand.RemoveAt(i)
	s.out.Add(t)
	g.seats[Next(seat)].leftOut.Add(t)
	g.seats[Prev(seat)].rightOut.Add(t)
	g.drawn = false
	g.recomputeAll()
	s.waiting = player.Waiting(s.hand.tiles, s.banked, g.wildcard, s.belief)
	g.emitter.Emit(event.Payload{Type: event.TileDiscarded, Seat: seat, Turn: g.turn, Tile: int(t)})
	g.offer(seat, t)
}

// offer hands the discard to the seat with the strongest claim:
// a quadlet before a triplet, the next seat before the previous one.
func (g *Game) offer(from int, t tile.Tile) {
	g.prevTurn = from
	next, prev := Next(from), Prev(from)
	switch {
	case card.CanPao(g.seats[next].hand.tiles, t):
		g.park(next, mconsts.PAO, t)
	case card.CanPao(g.seats[prev].hand.tiles, t):
		g.park(prev, mconsts.PAO, t)
	case card.CanDing(g.seats[next].hand.tiles, t):
		g.park(next, mconsts.DING, t)
	case card.CanDing(g.seats[prev].hand.tiles, t):
		g.park(prev, mconsts.DING, t)
	default:
		g.pass(next)
	}
}

func (g *Game) park(seat, op int, t tile.Tile) {
	g.turn = seat
	g.mode = Mode{Op: op, Tile: t}
	g.emitTurn()
}

func (g *Game) pass(seat int) {
	g.turn = seat
	g.mode = Normal
	g.drawn = false
	g.emitTurn()
}

// decline puts the turn back on the discarder and moves on to its next seat.
func (g *Game) decline() {
	g.turn = g.prevTurn
	g.pass(Next(g.turn))
}

func (g *Game) resolvePao(accept bool) {
	if !accept {
		g.decline()
		return
	}
	t := g.mode.Tile
	g.claim(card.Quadlet(t))
	g.emitter.Emit(event.Payload{Type: event.PaoClaimed, Seat: g.turn, Turn: g.turn, Tile: int(t)})
	// the quadlet is followed by a replacement draw
	g.mode = Normal
	g.drawn = false
	g.emitTurn()
}

func (g *Game) resolveDing(accept bool) {
	if !accept {
		g.decline()
		return
	}
	t := g.mode.Tile
	g.claim(card.Triplet(t))
	g.emitter.Emit(event.Payload{Type: event.DingClaimed, Seat: g.turn, Turn: g.turn, Tile: int(t)})
	g.mode = Normal
	g.drawn = true
	g.emitTurn()
}

// claim moves the owned copies and the discard into a meld of the seat at turn.
func (g *Game) claim(m card.Meld) {
	s := g.seats[g.turn]
	idx := card.KindIndexes(s.hand.tiles, m.Tile)
	if m.Op == mconsts.DING && len(idx) != m.Owned() || len(idx) < m.Owned() {
		panic(fmt.Sprintf("claim %v by seat %d: hand holds %d of the kind", m, g.turn, len(idx)))
	}
	for i := m.Owned() - 1; i >= 0; i-- {
		s.hand.RemoveAt(idx[i])
	}

	from := g.prevTurn
	g.seats[from].out.Retract(m.Tile)
	g.seats[Next(from)].leftOut.Retract(m.Tile)
	g.seats[Prev(from)].rightOut.Retract(m.Tile)

	s.melds = append(s.melds, m)
	g.seats[Next(g.turn)].leftMelds = append(g.seats[Next(g.turn)].leftMelds, m)
	g.seats[Prev(g.turn)].rightMelds = append(g.seats[Prev(g.turn)].rightMelds, m)
	s.banked += win.MeldScore(m, g.wildcard)
	g.recomputeAll()
}

func (g *Game) finish(winner int) {
	g.winner = winner
	g.running = false
	g.mode = Normal
	g.drawn = false
	for _, s := range g.seats {
		if !s.IsRobot() {
			s.ready = false
		}
	}
	if winner == mconsts.NoWinner {
		g.emitter.Emit(event.Payload{Type: event.HandEnded, Seat: mconsts.NoWinner, Turn: g.turn})
		return
	}
	g.emitter.Emit(event.Payload{Type: event.HandWon, Seat: winner, Turn: g.turn, Tiles: tile.Ints(g.seats[winner].hand.tiles)})
}

func (g *Game) emitTurn() {
	g.emitter.Emit(event.Payload{Type: event.TurnChanged, Seat: g.turn, Turn: g.turn, Mode: g.mode.String(), Tile: int(g.mode.Tile)})
}

func (g *Game) recomputeAll() {
	for _, s := range g.seats {
		s.recompute()
	}
}

// CheckConservation panics unless every kind is accounted for exactly four times
// across hands, discards, melds and the deck, and every mirror matches its source.
func (g *Game) CheckConservation() {
	var counts [tile.Kinds]int
	add := func(tiles []tile.Tile) {
		for _, t := range tiles {
			counts[t.Kind()]++
		}
	}
	add(g.deck.tiles)
	for i, s := range g.seats {
		add(s.hand.tiles)
		add(s.out.tiles)
		for _, m := range s.melds {
			counts[m.Kind()] += m.Size()
		}
		if len(g.seats) != consts.MaxPlayers {
			continue
		}
		right, left := g.seats[Next(i)], g.seats[Prev(i)]
		if !slices.Equal(s.rightOut.tiles, right.out.tiles) || !slices.Equal(s.leftOut.tiles, left.out.tiles) {
			panic(fmt.Sprintf("seat %d discard mirrors out of sync", i))
		}
		if len(s.rightMelds) != len(right.melds) || len(s.leftMelds) != len(left.melds) {
			panic(fmt.Sprintf("seat %d meld mirrors out of sync", i))
		}
	}
	for k, n := range counts {
		if n != tile.CopiesPerKind {
			panic(fmt.Sprintf("conservation broken: kind %d counted %d times", k, n))
		}
	}
}

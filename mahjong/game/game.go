package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/shangdaren/consts"
	mconsts "github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/ratel-online/shangdaren/mahjong/player"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/util"
)

// TestWildcard is the wildcard of every test mode hand.
const TestWildcard = tile.Tile(90)

// Game owns everything about one table. It is not safe for concurrent use,
// callers serialize access to it.
type Game struct {
	seats    []*Seat
	deck     *Deck
	turn     int
	prevTurn int
	wildcard tile.Tile
	mode     Mode
	winner   int
	running  bool
	// drawn is set while the seat at turn holds a tile it still has to discard.
	drawn bool
	test  bool

	rng     *rand.Rand
	emitter *event.Emitter
}

func New(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		seats:   make([]*Seat, 0, consts.MaxPlayers),
		deck:    &Deck{},
		winner:  mconsts.NoWinner,
		rng:     rng,
		emitter: event.NewEmitter(),
	}
}

func (g *Game) AddListener(listener event.Listener) {
	g.emitter.AddListener(listener)
}

func (g *Game) AddSeat(name string) error {
	if g.running {
		return consts.ErrorsJoinFailForRunning
	}
	if len(g.seats) >= consts.MaxPlayers {
		return consts.ErrorsSessionPlayersFull
	}
	if g.SeatIndex(name) >= 0 {
		return consts.ErrorsPlayerNameExist
	}
	g.seats = append(g.seats, newSeat(name, mconsts.Human))
	return nil
}

// AddRobot seats a robot under a free bot name. Robots are always ready.
func (g *Game) AddRobot(strategy mconsts.Strategy) (string, error) {
	if g.running {
		return "", consts.ErrorsJoinFailForRunning
	}
	if len(g.seats) >= consts.MaxPlayers {
		return "", consts.ErrorsSessionPlayersFull
	}
	if g.test {
		strategy = mconsts.Test
	}
	name := player.BotName(g.names(), g.rng)
	s := newSeat(name, mconsts.Robot)
	s.setRobot(player.NewRobot(strategy, g.rng))
	s.ready = true
	g.seats = append(g.seats, s)
	return name, nil
}

// RemoveSeat drops a seat and compacts the rest. A hand in progress ends without a winner.
func (g *Game) RemoveSeat(name string) error {
	i := g.SeatIndex(name)
	if i < 0 {
		return consts.ErrorsPlayerNotFound
	}
	if g.running {
		g.finish(mconsts.NoWinner)
	}
	g.seats = util.SliceRemoveAt(g.seats, i)
	return nil
}

func (g *Game) SetReady(seat int) error {
	if g.running {
		return consts.ErrorsGameRunning
	}
	if seat < 0 || seat >= len(g.seats) {
		return consts.ErrorsPlayerNotFound
	}
	g.seats[seat].ready = true
	return nil
}

// EnableTestMode makes the next hands replayable: ordered deck, fixed wildcard,
// seat 0 starts and every robot follows the test script.
func (g *Game) EnableTestMode() error {
	if g.running {
		return consts.ErrorsGameRunning
	}
	g.test = true
	for _, s := range g.seats {
		if s.IsRobot() {
			s.setRobot(player.NewRobot(mconsts.Test, g.rng))
		}
	}
	return nil
}

func (g *Game) Start() error {
	if g.running {
		return consts.ErrorsGameRunning
	}
	if len(g.seats) != consts.MaxPlayers {
		return consts.ErrorsGamePlayersInvalid
	}
	for _, s := range g.seats {
		if !s.ready {
			return consts.ErrorsPlayersNotReady
		}
	}

	if g.test {
		g.deck = NewOrderedDeck()
		g.wildcard = TestWildcard
		g.turn = 0
	} else {
		g.deck = NewDeck(g.rng)
		g.wildcard = tile.Tile(g.rng.Intn(tile.Total))
		g.turn = g.rng.Intn(consts.MaxPlayers)
	}
	for _, s := range g.seats {
		s.reset()
		for n := 0; n < consts.HandSize; n++ {
			t, _ := g.deck.DrawOne()
			s.hand.AddTiles(t)
		}
	}
	g.prevTurn = g.turn
	g.mode = Normal
	g.winner = mconsts.NoWinner
	g.drawn = false
	g.running = true
	g.recomputeAll()

	for i, s := range g.seats {
		g.emitter.Emit(event.Payload{
			Type:    event.HandDealt,
			Seat:    i,
			Turn:    g.turn,
			Tile:    int(g.wildcard),
			Tiles:   tile.Ints(s.hand.tiles),
			Private: true,
		})
	}
	g.emitTurn()
	g.proceed()
	g.CheckConservation()
	return nil
}

// Abort throws away the hand in progress without a winner.
func (g *Game) Abort() {
	if g.running {
		g.finish(mconsts.NoWinner)
	}
}

func (g *Game) names() []string {
	names := make([]string, 0, len(g.seats))
	for _, s := range g.seats {
		names = append(names, s.name)
	}
	return names
}

// SeatIndex returns the position of the named seat, or -1.
func (g *Game) SeatIndex(name string) int {
	for i, s := range g.seats {
		if s.name == name {
			return i
		}
	}
	return -1
}

func (g *Game) Seats() []*Seat {
	return util.SliceCopy(g.seats)
}

func (g *Game) Seat(i int) *Seat {
	return g.seats[i]
}

func (g *Game) Turn() int {
	return g.turn
}

func (g *Game) PrevTurn() int {
	return g.prevTurn
}

func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) Wildcard() tile.Tile {
	return g.wildcard
}

func (g *Game) Winner() int {
	return g.winner
}

func (g *Game) Running() bool {
	return g.running
}

func (g *Game) TestMode() bool {
	return g.test
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

// HasHuman reports whether anyone at the table is not a robot.
func (g *Game) HasHuman() bool {
	for _, s := range g.seats {
		if !s.IsRobot() {
			return true
		}
	}
	return false
}

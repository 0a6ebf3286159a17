package game

import (
	"github.com/ratel-online/shangdaren/mahjong/belief"
	"github.com/ratel-online/shangdaren/mahjong/card"
	mconsts "github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/player"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/mahjong/util"
)

// Seat is one of the three places at the table. The right neighbour is the
// next seat in turn order, the left neighbour the previous one.
type Seat struct {
	name     string
	role     mconsts.Role
	strategy mconsts.Strategy
	robot    player.Robot
	ready    bool

	hand  *Hand
	out   *Pile
	melds []card.Meld

	rightOut   *Pile
	leftOut    *Pile
	rightMelds []card.Meld
	leftMelds  []card.Meld

	belief  belief.Belief
	banked  int
	waiting []int
}

func newSeat(name string, role mconsts.Role) *Seat {
	s := &Seat{name: name, role: role}
	s.reset()
	return s
}

func (s *Seat) reset() {
	s.hand = NewHand()
	s.out = NewPile()
	s.rightOut = NewPile()
	s.leftOut = NewPile()
	s.melds = nil
	s.rightMelds = nil
	s.leftMelds = nil
	s.banked = 0
	s.waiting = nil
	s.belief = belief.New()
}

func (s *Seat) setRobot(robot player.Robot) {
	s.robot = robot
	s.strategy = robot.Strategy()
}

func (s *Seat) recompute() {
	melds := make([]card.Meld, 0, len(s.melds)+len(s.rightMelds)+len(s.leftMelds))
	melds = append(append(append(melds, s.melds...), s.rightMelds...), s.leftMelds...)
	s.belief = belief.Compute(melds, s.hand.tiles, s.out.tiles, s.rightOut.tiles, s.leftOut.tiles)
}

func (s *Seat) view(wildcard tile.Tile) player.View {
	return player.View{
		Hand:     s.hand.Tiles(),
		Belief:   s.belief,
		Banked:   s.banked,
		Wildcard: wildcard,
		Waiting:  s.Waiting(),
	}
}

func (s *Seat) Name() string {
	return s.name
}

func (s *Seat) Role() mconsts.Role {
	return s.role
}

func (s *Seat) IsRobot() bool {
	return s.role == mconsts.Robot
}

func (s *Seat) Strategy() mconsts.Strategy {
	return s.strategy
}

func (s *Seat) Ready() bool {
	return s.ready
}

func (s *Seat) Hand() []tile.Tile {
	return s.hand.Tiles()
}

func (s *Seat) Out() []tile.Tile {
	return s.out.Tiles()
}

func (s *Seat) Melds() []card.Meld {
	return util.SliceCopy(s.melds)
}

func (s *Seat) Belief() belief.Belief {
	return s.belief
}

func (s *Seat) Banked() int {
	return s.banked
}

// Waiting is the waiting set cached after the seat's last discard.
func (s *Seat) Waiting() []int {
	return util.SliceCopy(s.waiting)
}

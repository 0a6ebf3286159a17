package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/shangdaren/mahjong/card"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

type SeatState struct {
	Name     string      `json:"name"`
	Role     string      `json:"role"`
	Strategy string      `json:"strategy,omitempty"`
	Ready    bool        `json:"ready"`
	HandSize int         `json:"handSize"`
	Out      []int       `json:"out"`
	Melds    []card.Meld `json:"melds"`
	Waiting  []int       `json:"waiting,omitempty"`
}

// State is what one seat is allowed to see of the table.
type State struct {
	Seat     int         `json:"seat"`
	Hand     []int       `json:"hand"`
	Turn     int         `json:"turn"`
	Mode     string      `json:"mode"`
	Claim    int         `json:"claim"`
	Wildcard int         `json:"wildcard"`
	DeckSize int         `json:"deckSize"`
	Winner   int         `json:"winner"`
	Running  bool        `json:"running"`
	Seats    []SeatState `json:"seats"`
}

// ExtractState builds the view of the given seat, or a spectator view for -1.
func (g *Game) ExtractState(seat int) State {
	state := State{
		Seat:     seat,
		Turn:     g.turn,
		Mode:     g.mode.String(),
		Claim:    int(g.mode.Tile),
		Wildcard: int(g.wildcard),
		DeckSize: g.deck.Size(),
		Winner:   g.winner,
		Running:  g.running,
		Seats:    make([]SeatState, 0, len(g.seats)),
	}
	if seat >= 0 && seat < len(g.seats) {
		state.Hand = tile.Ints(g.seats[seat].hand.tiles)
	}
	for i, s := range g.seats {
		ss := SeatState{
			Name:     s.name,
			Role:     s.role.String(),
			Ready:    s.ready,
			HandSize: s.hand.Size(),
			Out:      tile.Ints(s.out.tiles),
			Melds:    s.Melds(),
		}
		if i == seat {
			ss.Waiting = s.Waiting()
		}
		if s.IsRobot() {
			ss.Strategy = s.strategy.String()
		}
		state.Seats = append(state.Seats, ss)
	}
	return state
}

func (s State) String() string {
	wildcard := tile.Tile(s.Wildcard)
	paint := func(ids []int) string {
		faces := make([]string, 0, len(ids))
		for _, id := range ids {
			faces = append(faces, tile.Paint(tile.Tile(id), wildcard))
		}
		return strings.Join(faces, " ")
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Wildcard: %s, deck: %d", tile.Paint(wildcard, wildcard), s.DeckSize))
	lines = append(lines, fmt.Sprintf("Turn: %d (%s)", s.Turn, s.Mode))
	var seatStatuses []string
	for i, seat := range s.Seats {
		status := fmt.Sprintf("%d %s[%s] hand:%d out:%s", i, seat.Name, seat.Role, seat.HandSize, paint(seat.Out))
		if len(seat.Melds) > 0 {
			status += " melds:"
			for _, meld := range seat.Melds {
				status += fmt.Sprintf("%s ", meld.String())
			}
		}
		seatStatuses = append(seatStatuses, status)
	}
	lines = append(lines, fmt.Sprintf("Seats:\n%s", strings.Join(seatStatuses, "\n")))
	if len(s.Hand) > 0 {
		lines = append(lines, fmt.Sprintf("Your hand: %s", paint(s.Hand)))
	}
	return strings.Join(lines, "\n")
}

package event

type Type string

const (
	HandDealt     Type = "hand_dealt"
	TurnChanged   Type = "turn_changed"
	TileDrawn     Type = "tile_drawn"
	TileDiscarded Type = "tile_discarded"
	DingClaimed   Type = "ding_claimed"
	PaoClaimed    Type = "pao_claimed"
	HandWon       Type = "hand_won"
	HandEnded     Type = "hand_ended"
)

// Payload is one outbound notification. Private payloads are only for Seat.
type Payload struct {
	Type    Type   `json:"type"`
	Seat    int    `json:"seat"`
	Turn    int    `json:"turn"`
	Mode    string `json:"mode,omitempty"`
	Tile    int    `json:"tile"`
	Tiles   []int  `json:"tiles,omitempty"`
	Private bool   `json:"-"`
}

type Listener interface {
	OnEvent(Payload)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(Payload)

func (f ListenerFunc) OnEvent(payload Payload) {
	f(payload)
}

// Emitter fans payloads out to the listeners of one game.
type Emitter struct {
	listeners []Listener
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) AddListener(listener Listener) {
	e.listeners = append(e.listeners, listener)
}

func (e *Emitter) Emit(payload Payload) {
	for _, listener := range e.listeners {
		listener.OnEvent(payload)
	}
}

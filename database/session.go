package database

import (
	"sync"
	"time"

	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/ratel-online/shangdaren/mahjong/game"
	"github.com/ratel-online/shangdaren/render"
)

// Session is one table. The embedded lock guards Game: actions take the
// write lock for their whole run, status queries the read lock.
type Session struct {
	sync.RWMutex

	ID         string     `json:"id"`
	Game       *game.Game `json:"-"`
	ActiveTime time.Time  `json:"activeTime"`

	mu      sync.Mutex
	players map[string]*Player
}

func newSession(id string, g *game.Game) *Session {
	s := &Session{
		ID:         id,
		Game:       g,
		ActiveTime: time.Now(),
		players:    map[string]*Player{},
	}
	g.AddListener(s)
	return s
}

// OnEvent fans a game event out to the connected players. Callers hold the write lock.
func (s *Session) OnEvent(payload event.Payload) {
	data := render.Event(payload)
	if payload.Private {
		if payload.Seat < 0 || payload.Seat >= len(s.Game.Seats()) {
			return
		}
		if player := s.GetPlayer(s.Game.Seat(payload.Seat).Name()); player != nil {
			_ = player.Write(data)
		}
		return
	}
	s.Broadcast(data)
}

func (s *Session) Broadcast(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, player := range s.players {
		_ = player.Write(data)
	}
}

// Connect attaches a live connection under the seat name.
func (s *Session) Connect(name string, buffer int) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[name]; ok && p.Online() {
		return nil, consts.ErrorsPlayerNameExist
	}
	p := newPlayer(name, s.ID, buffer)
	s.players[name] = p
	s.ActiveTime = time.Now()
	return p, nil
}

func (s *Session) Disconnect(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[name]; ok {
		p.Offline()
		delete(s.players, name)
	}
	s.ActiveTime = time.Now()
}

func (s *Session) GetPlayer(name string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players[name]
}

// Online counts the connections that are still open.
func (s *Session) Online() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.players {
		if p.Online() {
			n++
		}
	}
	return n
}

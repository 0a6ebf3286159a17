package service

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/shangdaren/database"
	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/ratel-online/shangdaren/mahjong/game"
	"github.com/ratel-online/shangdaren/model"
)

// Observer receives the events of every session, e.g. an outside mirror.
type Observer interface {
	Listener(sessionID string) event.Listener
}

func AddObserver(o Observer) {
	database.AddSessionHook(func(s *database.Session) {
		s.Game.AddListener(o.Listener(s.ID))
	})
}

// Join seats name at session id. An empty id opens a new session, an unknown
// one is looked up in the store. A human seat restored under the same name is
// taken over instead of adding a new one.
func Join(ctx context.Context, id, name string, buffer int) (*database.Session, *database.Player, model.Joined, error) {
	var s *database.Session
	if id == "" {
		s = database.CreateSession(game.New(nil))
	} else {
		var err error
		if s, err = database.ResumeSession(ctx, id); err != nil {
			return nil, nil, model.Joined{}, err
		}
	}

	s.Lock()
	defer s.Unlock()
	seat := s.Game.SeatIndex(name)
	if seat < 0 || s.Game.Seat(seat).IsRobot() {
		if err := s.Game.AddSeat(name); err != nil {
			return nil, nil, model.Joined{}, err
		}
		seat = s.Game.SeatIndex(name)
	}
	p, err := s.Connect(name, buffer)
	if err != nil {
		return nil, nil, model.Joined{}, err
	}
	if err := database.Save(ctx, s); err != nil {
		log.Errorf("session %s save failed: %v\n", s.ID, err)
	}
	log.Infof("player %s joined session %s at seat %d\n", name, s.ID, seat)
	return s, p, model.Joined{Session: s.ID, Name: name, Seat: seat}, nil
}

// Leave drops the player's connection and seat. A session with no human left is deleted.
func Leave(ctx context.Context, s *database.Session, name string) {
	s.Lock()
	defer s.Unlock()
	s.Disconnect(name)
	if err := s.Game.RemoveSeat(name); err != nil {
		log.Errorf("session %s remove %s: %v\n", s.ID, name, err)
	}
	log.Infof("player %s left session %s\n", name, s.ID)
	if !s.Game.HasHuman() {
		database.DeleteSession(ctx, s)
		return
	}
	if err := database.Save(ctx, s); err != nil {
		log.Errorf("session %s save failed: %v\n", s.ID, err)
	}
}

package service

import (
	"context"
	"errors"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/database"
	mconsts "github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/tile"
	"github.com/ratel-online/shangdaren/model"
)

type servlet func(s *database.Session, seat int, action model.Action) (interface{}, error)

// servlets mutate the game and run under the session's write lock.
var servlets = map[string]servlet{
	consts.ActionReady:    ready,
	consts.ActionAddRobot: addRobot,
	consts.ActionStart:    start,
	consts.ActionDiscard:  discard,
	consts.ActionDing:     ding,
	consts.ActionPao:      pao,
	consts.ActionTestMode: testMode,
}

var readers = map[string]servlet{
	consts.ActionStatus: status,
}

var defaultStrategy = mconsts.Level1

// SetDefaultStrategy picks the robot used when add_robot names none.
func SetDefaultStrategy(strategy mconsts.Strategy) {
	defaultStrategy = strategy
}

// Handle runs one action for the named player and answers it.
func Handle(ctx context.Context, s *database.Session, name string, action model.Action) model.Resp {
	if h, ok := readers[action.Type]; ok {
		s.RLock()
		defer s.RUnlock()
		seat := s.Game.SeatIndex(name)
		if seat < 0 {
			return model.ErrResp(action.Type, consts.ErrorsPlayerNotFound)
		}
		data, err := h(s, seat, action)
		if err != nil {
			return model.ErrResp(action.Type, err)
		}
		return model.SucResp(action.Type, data)
	}
	h, ok := servlets[action.Type]
	if !ok {
		return model.ErrResp(action.Type, consts.ErrorsActionInvalid)
	}

	s.Lock()
	defer s.Unlock()
	seat := s.Game.SeatIndex(name)
	if seat < 0 {
		return model.ErrResp(action.Type, consts.ErrorsPlayerNotFound)
	}
	running := s.Game.Running()
	data, err := invoke(h, s, seat, action)
	if running && !s.Game.Running() {
		log.Infof("session %s hand over, winner %d\n%s\n", s.ID, s.Game.Winner(), s.Game.ExtractState(-1))
	}
	// misuse leaves the game untouched, an abort does not
	if err == nil || errors.Is(err, consts.ErrorsInternal) {
		if err := database.Save(ctx, s); err != nil {
			log.Errorf("session %s save failed: %v\n", s.ID, err)
		}
	}
	if err != nil {
		return model.ErrResp(action.Type, err)
	}
	return model.SucResp(action.Type, data)
}

// invoke turns an engine panic into a discarded hand instead of a dead server.
func invoke(h servlet, s *database.Session, seat int, action model.Action) (data interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("session %s action %s panic: %v\n", s.ID, action.Type, r)
			async.PrintStackTrace(r)
			s.Game.Abort()
			data, err = nil, consts.ErrorsInternal
		}
	}()
	return h(s, seat, action)
}

func ready(s *database.Session, seat int, _ model.Action) (interface{}, error) {
	return nil, s.Game.SetReady(seat)
}

func addRobot(s *database.Session, _ int, action model.Action) (interface{}, error) {
	strategy := defaultStrategy
	if action.Strategy != "" {
		var ok bool
		if strategy, ok = mconsts.ParseStrategy(action.Strategy); !ok {
			return nil, consts.ErrorsStrategyInvalid
		}
	}
	name, err := s.Game.AddRobot(strategy)
	if err != nil {
		return nil, err
	}
	log.Infof("session %s robot %s joined as %s\n", s.ID, name, strategy)
	return name, nil
}

func start(s *database.Session, _ int, _ model.Action) (interface{}, error) {
	if err := s.Game.Start(); err != nil {
		return nil, err
	}
	log.Infof("session %s hand started, wildcard %s\n", s.ID, s.Game.Wildcard())
	return nil, nil
}

func discard(s *database.Session, seat int, action model.Action) (interface{}, error) {
	if action.Tile == nil || *action.Tile < 0 || *action.Tile >= tile.Total {
		return nil, consts.ErrorsInputInvalid
	}
	return nil, s.Game.Discard(seat, tile.Tile(*action.Tile))
}

func ding(s *database.Session, seat int, action model.Action) (interface{}, error) {
	return nil, s.Game.RespondDing(seat, action.Confirm)
}

func pao(s *database.Session, seat int, action model.Action) (interface{}, error) {
	return nil, s.Game.RespondPao(seat, action.Confirm)
}

func testMode(s *database.Session, _ int, _ model.Action) (interface{}, error) {
	return nil, s.Game.EnableTestMode()
}

func status(s *database.Session, seat int, _ model.Action) (interface{}, error) {
	return s.Game.ExtractState(seat), nil
}

package service_test

import (
	"context"
	"testing"

	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/database"
	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/ratel-online/shangdaren/mahjong/game"
	"github.com/ratel-online/shangdaren/model"
	"github.com/ratel-online/shangdaren/service"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	listeners map[string]*event.DummyListener
}

func (r *recorder) Listener(sessionID string) event.Listener {
	l := event.NewDummyListener()
	r.listeners[sessionID] = l
	return l
}

func intPtr(v int) *int {
	return &v
}

func TestHandleActions(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{listeners: map[string]*event.DummyListener{}}
	service.AddObserver(rec)

	s, p, joined, err := service.Join(ctx, "", "alice", 64)
	require.NoError(t, err)
	defer database.DeleteSession(ctx, s)
	require.Equal(t, model.Joined{Session: s.ID, Name: "alice", Seat: 0}, joined)

	scenarios := []struct {
		description string
		action      model.Action
		code        int
	}{
		{description: "unknown action", action: model.Action{Type: "shout"}, code: consts.ErrorsActionInvalid.Code},
		{description: "start before seats are filled", action: model.Action{Type: consts.ActionStart}, code: consts.ErrorsGamePlayersInvalid.Code},
		{description: "unknown strategy", action: model.Action{Type: consts.ActionAddRobot, Strategy: "genius"}, code: consts.ErrorsStrategyInvalid.Code},
		{description: "first robot", action: model.Action{Type: consts.ActionAddRobot, Strategy: "random"}, code: model.CodeSuccess},
		{description: "second robot", action: model.Action{Type: consts.ActionAddRobot}, code: model.CodeSuccess},
		{description: "third robot", action: model.Action{Type: consts.ActionAddRobot}, code: consts.ErrorsSessionPlayersFull.Code},
		{description: "test mode", action: model.Action{Type: consts.ActionTestMode}, code: model.CodeSuccess},
		{description: "start before ready", action: model.Action{Type: consts.ActionStart}, code: consts.ErrorsPlayersNotReady.Code},
		{description: "ready", action: model.Action{Type: consts.ActionReady}, code: model.CodeSuccess},
		{description: "start", action: model.Action{Type: consts.ActionStart}, code: model.CodeSuccess},
		{description: "discard without tile", action: model.Action{Type: consts.ActionDiscard}, code: consts.ErrorsInputInvalid.Code},
		{description: "discard out of range", action: model.Action{Type: consts.ActionDiscard, Tile: intPtr(96)}, code: consts.ErrorsInputInvalid.Code},
		{description: "discard a tile held elsewhere", action: model.Action{Type: consts.ActionDiscard, Tile: intPtr(95)}, code: consts.ErrorsTileNotInHand.Code},
		{description: "ding without offer", action: model.Action{Type: consts.ActionDing, Confirm: true}, code: consts.ErrorsNoClaimOffered.Code},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			resp := service.Handle(ctx, s, "alice", scenario.action)
			require.Equal(t, scenario.code, resp.Code, resp.Msg)
			require.Equal(t, scenario.action.Type, resp.Type)
		})
	}

	resp := service.Handle(ctx, s, "alice", model.Action{Type: consts.ActionStatus})
	require.Equal(t, model.CodeSuccess, resp.Code)
	state := resp.Data.(game.State)
	require.True(t, state.Running)
	require.Equal(t, 0, state.Turn)
	require.Len(t, state.Hand, consts.HandSize+1)

	resp = service.Handle(ctx, s, "alice", model.Action{Type: consts.ActionDiscard, Tile: intPtr(state.Hand[0])})
	require.Equal(t, model.CodeSuccess, resp.Code, resp.Msg)

	require.NotEmpty(t, p.Outbound())
	require.Contains(t, rec.listeners[s.ID].Types(), event.HandDealt)
	require.Contains(t, rec.listeners[s.ID].Types(), event.TileDiscarded)

	record, err := database.GetStore().Load(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, s.Game.Record(), record)

	resp = service.Handle(ctx, s, "mallory", model.Action{Type: consts.ActionStatus})
	require.Equal(t, consts.ErrorsPlayerNotFound.Code, resp.Code)
}

func TestJoin(t *testing.T) {
	ctx := context.Background()

	_, _, _, err := service.Join(ctx, "no-such-session", "alice", 8)
	require.ErrorIs(t, err, consts.ErrorsSessionInvalid)

	s, _, _, err := service.Join(ctx, "", "alice", 8)
	require.NoError(t, err)
	defer database.DeleteSession(ctx, s)

	_, _, _, err = service.Join(ctx, s.ID, "alice", 8)
	require.ErrorIs(t, err, consts.ErrorsPlayerNameExist)

	_, _, joined, err := service.Join(ctx, s.ID, "bob", 8)
	require.NoError(t, err)
	require.Equal(t, 1, joined.Seat)

	service.Leave(ctx, s, "bob")
	_, _, joined, err = service.Join(ctx, s.ID, "bob", 8)
	require.NoError(t, err)
	require.Equal(t, 1, joined.Seat)
}

func TestLeaveDeletesEmptySession(t *testing.T) {
	ctx := context.Background()
	s, _, _, err := service.Join(ctx, "", "alice", 8)
	require.NoError(t, err)
	require.Equal(t, model.CodeSuccess, service.Handle(ctx, s, "alice", model.Action{Type: consts.ActionAddRobot}).Code)

	service.Leave(ctx, s, "alice")
	require.Nil(t, database.GetSession(s.ID))
	_, err = database.GetStore().Load(ctx, s.ID)
	require.ErrorIs(t, err, database.ErrRecordNotFound)
}

package event_test

import (
	"testing"

	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	emitter := event.NewEmitter()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	emitter.AddListener(listenerOne)
	emitter.AddListener(listenerTwo)

	payloads := []event.Payload{
		{Type: event.TileDrawn, Seat: 0, Tile: 57, Private: true},
		{Type: event.TileDiscarded, Seat: 0, Tile: 57},
		{Type: event.TurnChanged, Turn: 1, Mode: "normal"},
	}

	for _, payload := range payloads {
		emitter.Emit(payload)
	}

	require.Equal(t, payloads, listenerOne.ReceivedPayloads())
	require.Equal(t, payloads, listenerTwo.ReceivedPayloads())
	require.Equal(t, []event.Type{event.TileDrawn, event.TileDiscarded, event.TurnChanged}, listenerOne.Types())
}

func TestListenerFunc(t *testing.T) {
	var got []event.Type
	emitter := event.NewEmitter()
	emitter.AddListener(event.ListenerFunc(func(payload event.Payload) {
		got = append(got, payload.Type)
	}))

	emitter.Emit(event.Payload{Type: event.HandEnded})

	require.Equal(t, []event.Type{event.HandEnded}, got)
}

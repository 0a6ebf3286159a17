package network

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/shangdaren/config"
	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/ratel-online/shangdaren/model"
	"github.com/ratel-online/shangdaren/render"
	"github.com/stretchr/testify/require"
)

type message struct {
	Code  int            `json:"code"`
	Type  string         `json:"type"`
	Msg   string         `json:"msg"`
	Data  interface{}    `json:"data"`
	Event *event.Payload `json:"event"`
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?" + query
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return c
}

func read(t *testing.T, c *websocket.Conn) message {
	require.NoError(t, c.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := c.ReadMessage()
	require.NoError(t, err)
	msg := message{}
	require.NoError(t, render.Unmarshal(data, &msg))
	return msg
}

func send(t *testing.T, c *websocket.Conn, action model.Action) {
	data, err := render.Marshal(action)
	require.NoError(t, err)
	require.NoError(t, c.WriteMessage(websocket.TextMessage, data))
}

func TestWebsocketSession(t *testing.T) {
	w := NewWebsocketServer(config.ServerConfig{Path: "/ws", OutboundBuffer: 64})
	srv := httptest.NewServer(http.HandlerFunc(w.serveWs))
	defer srv.Close()

	c := dial(t, srv, "name=alice")
	defer c.Close()

	joined := read(t, c)
	require.Equal(t, model.CodeSuccess, joined.Code)
	require.Equal(t, model.TypeJoin, joined.Type)

	bad, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws?session=missing", nil)
	require.NoError(t, err)
	defer bad.Close()
	rejected := read(t, bad)
	require.Equal(t, consts.ErrorsSessionInvalid.Code, rejected.Code)
	require.Equal(t, model.TypeJoin, rejected.Type)

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("not json")))
	invalid := read(t, c)
	require.Equal(t, consts.ErrorsInputInvalid.Code, invalid.Code)

	for _, typ := range []string{consts.ActionAddRobot, consts.ActionAddRobot, consts.ActionTestMode, consts.ActionReady, consts.ActionStart} {
		send(t, c, model.Action{Type: typ})
	}

	var dealt *event.Payload
	for i := 0; i < 50 && dealt == nil; i++ {
		msg := read(t, c)
		if msg.Type != model.TypeEvent {
			require.Equal(t, model.CodeSuccess, msg.Code, msg.Msg)
			continue
		}
		if msg.Event.Type == event.HandDealt {
			dealt = msg.Event
		}
	}
	require.NotNil(t, dealt)
	require.Equal(t, 0, dealt.Seat)
	require.Len(t, dealt.Tiles, consts.HandSize)

	// misuse during a hand is answered and the seat is kept
	send(t, c, model.Action{Type: consts.ActionAddRobot})
	refused := await(t, c, consts.ActionAddRobot)
	require.Equal(t, consts.ErrorsJoinFailForRunning.Code, refused.Code)
	require.False(t, consts.ErrorsJoinFailForRunning.Exit)

	send(t, c, model.Action{Type: consts.ActionStatus})
	status := await(t, c, consts.ActionStatus)
	require.Equal(t, model.CodeSuccess, status.Code, status.Msg)
	state := status.Data.(map[string]interface{})
	require.Equal(t, true, state["running"])
	require.Len(t, state["seats"], consts.MaxPlayers)
}

// await skips events and other replies until the answer to typ arrives.
func await(t *testing.T, c *websocket.Conn, typ string) message {
	for i := 0; i < 50; i++ {
		msg := read(t, c)
		if msg.Type == typ {
			return msg
		}
	}
	require.FailNow(t, "no reply", typ)
	return message{}
}

type fakePublisher struct {
	subjects []string
	data     [][]byte
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.subjects = append(f.subjects, subject)
	f.data = append(f.data, data)
	return nil
}

func TestMirrorPublishesPublicEvents(t *testing.T) {
	pub := &fakePublisher{}
	listener := newMirror(pub, "shangdaren.session").Listener("abc")

	listener.OnEvent(event.Payload{Type: event.TileDrawn, Seat: 1, Tile: 7, Private: true})
	require.Empty(t, pub.subjects)

	listener.OnEvent(event.Payload{Type: event.TileDiscarded, Seat: 1, Turn: 1, Tile: 7})
	require.Equal(t, []string{"shangdaren.session.abc"}, pub.subjects)

	msg := message{}
	require.NoError(t, render.Unmarshal(pub.data[0], &msg))
	require.Equal(t, model.TypeEvent, msg.Type)
	require.Equal(t, event.TileDiscarded, msg.Event.Type)
	require.Equal(t, 7, msg.Event.Tile)
}

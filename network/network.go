package network

import (
	"context"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/shangdaren/model"
	"github.com/ratel-online/shangdaren/render"
	"github.com/ratel-online/shangdaren/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

type conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

func guestName() string {
	return "guest-" + uuid.NewString()[:8]
}

func handle(c conn, sessionID, name string, buffer int) error {
	defer func() {
		if err := c.Close(); err != nil {
			log.Error(err)
		}
	}()
	if name == "" {
		name = guestName()
	}
	ctx := context.Background()
	s, player, joined, err := service.Join(ctx, sessionID, name, buffer)
	if err != nil {
		_ = c.WriteMessage(websocket.TextMessage, render.Error(model.TypeJoin, err))
		return err
	}

	// 所有写操作都走 outbound，socket 只有这一个写者
	done := make(chan struct{})
	async.Async(func() {
		defer close(done)
		for data := range player.Outbound() {
			if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error(err)
				return
			}
		}
	})
	defer func() {
		service.Leave(ctx, s, name)
		<-done
	}()
	_ = player.WriteResp(model.SucResp(model.TypeJoin, joined))

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		action, err := render.DecodeAction(data)
		if err != nil {
			_ = player.WriteError(action.Type, err)
			continue
		}
		resp := service.Handle(ctx, s, name, action)
		_ = player.WriteResp(resp)
		if resp.Exit {
			return nil
		}
	}
}

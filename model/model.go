package model

import (
	"errors"

	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/mahjong/event"
)

const (
	CodeSuccess = 0
	CodeUnknown = 500

	TypeEvent = "event"
	TypeJoin  = "join"
)

// Action is one inbound message from a client.
type Action struct {
	Type     string `json:"type"`
	Tile     *int   `json:"tile,omitempty"`
	Confirm  bool   `json:"confirm,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

// Resp answers one action on the connection that sent it.
type Resp struct {
	Code int         `json:"code"`
	Type string      `json:"type"`
	Msg  string      `json:"msg,omitempty"`
	Exit bool        `json:"exit,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

// Notification wraps a game event for the outbound feed.
type Notification struct {
	Code  int           `json:"code"`
	Type  string        `json:"type"`
	Event event.Payload `json:"event"`
}

type Joined struct {
	Session string `json:"session"`
	Name    string `json:"name"`
	Seat    int    `json:"seat"`
}

func SucResp(typ string, data interface{}) Resp {
	return Resp{Code: CodeSuccess, Type: typ, Data: data}
}

func ErrResp(typ string, err error) Resp {
	var e consts.Error
	if errors.As(err, &e) {
		return Resp{Code: e.Code, Type: typ, Msg: e.Msg, Exit: e.Exit}
	}
	return Resp{Code: CodeUnknown, Type: typ, Msg: err.Error()}
}

func NewNotification(payload event.Payload) Notification {
	return Notification{Code: CodeSuccess, Type: TypeEvent, Event: payload}
}

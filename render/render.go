package render

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/mahjong/event"
	"github.com/ratel-online/shangdaren/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func Resp(resp model.Resp) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		data, _ = json.Marshal(model.ErrResp(resp.Type, err))
	}
	return data
}

func Error(typ string, err error) []byte {
	return Resp(model.ErrResp(typ, err))
}

func Event(payload event.Payload) []byte {
	data, _ := json.Marshal(model.NewNotification(payload))
	return data
}

// DecodeAction parses an inbound action. Anything unreadable is invalid input.
func DecodeAction(data []byte) (model.Action, error) {
	action := model.Action{}
	if err := json.Unmarshal(data, &action); err != nil || action.Type == "" {
		return action, consts.ErrorsInputInvalid
	}
	return action, nil
}

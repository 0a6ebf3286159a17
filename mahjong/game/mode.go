package game

import (
	mconsts "github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

// Mode is Normal, or a claim parked on the contested tile waiting for the seat at turn.
type Mode struct {
	Op   int       `json:"op"`
	Tile tile.Tile `json:"tile"`
}

var Normal = Mode{}

func (m Mode) IsNormal() bool {
	return m.Op == 0
}

func (m Mode) String() string {
	switch m.Op {
	case mconsts.DING:
		return "ding"
	case mconsts.PAO:
		return "pao"
	}
	return "normal"
}

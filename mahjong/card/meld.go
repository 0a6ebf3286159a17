package card

import (
	"fmt"

	"github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/tile"
)

// Meld 明牌，丁是三张，跑是四张
type Meld struct {
	Op   int       `json:"op"`   // 操作类型，consts.DING 或 consts.PAO
	Tile tile.Tile `json:"tile"` // 被认领的那张弃牌
}

func Triplet(t tile.Tile) Meld {
	return Meld{Op: consts.DING, Tile: t}
}

func Quadlet(t tile.Tile) Meld {
	return Meld{Op: consts.PAO, Tile: t}
}

func (m Meld) String() string {
	return fmt.Sprintf("[%v]%v", consts.OpCodeData[m.Op], m.Tile)
}

// Size 明牌中牌的数量
func (m Meld) Size() int {
	if m.Op == consts.PAO {
		return 4
	}
	return 3
}

// Owned 认领时从手牌中拿出的数量
func (m Meld) Owned() int {
	return m.Size() - 1
}

func (m Meld) Kind() int {
	return m.Tile.Kind()
}

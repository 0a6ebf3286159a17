package player

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/shangdaren/mahjong/util"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// BotName picks a name no seat at the table is using yet.
func BotName(taken []string, rng *rand.Rand) string {
	for _, i := range rng.Perm(len(botNames)) {
		if !util.InSlice(botNames[i], taken) {
			return botNames[i]
		}
	}
	return fmt.Sprintf("Bot-%d", len(taken)+1)
}

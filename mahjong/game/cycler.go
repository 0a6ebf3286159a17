package game

import "github.com/ratel-online/shangdaren/consts"

// Next 下家，也就是右手边的座位
func Next(seat int) int {
	return (seat + 1) % consts.MaxPlayers
}

// Prev 上家，也就是左手边的座位
func Prev(seat int) int {
	return (seat + consts.MaxPlayers - 1) % consts.MaxPlayers
}

package consts

import "time"

const (
	// MaxPlayers every hand is played by exactly three seats.
	MaxPlayers = 3

	HandSize = 19

	SessionSweepInterval = 30 * time.Second
)

// Inbound action types.
const (
	ActionReady    = "ready"
	ActionAddRobot = "add_robot"
	ActionStart    = "start"
	ActionDiscard  = "discard"
	ActionDing     = "ding"
	ActionPao      = "pao"
	ActionTestMode = "test_mode"
	ActionStatus   = "status"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsChanClosed         = NewErr(1, true, "Chan closed. ")
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
	ErrorsActionInvalid      = NewErr(1, false, "Action invalid. ")
	ErrorsSessionInvalid     = NewErr(1, true, "Session invalid. ")
	ErrorsSessionPlayersFull = NewErr(1, false, "Session players is full. ")
	ErrorsJoinFailForRunning = NewErr(1, false, "Join fail, session is running. ")
	ErrorsGamePlayersInvalid = NewErr(1, false, "Game players invalid. ")
	ErrorsPlayersNotReady    = NewErr(1, false, "Players not ready. ")
	ErrorsPlayerNameExist    = NewErr(1, false, "Player name exist. ")
	ErrorsPlayerNotFound     = NewErr(1, false, "Player not found. ")
	ErrorsGameRunning        = NewErr(1, false, "Game is running. ")
	ErrorsGameNotRunning     = NewErr(1, false, "Game is not running. ")
	ErrorsNotYourTurn        = NewErr(1, false, "Not your turn. ")
	ErrorsHaveToDraw         = NewErr(1, false, "Have to draw first. ")
	ErrorsClaimPending       = NewErr(1, false, "A claim is pending. ")
	ErrorsNoClaimOffered     = NewErr(1, false, "No claim offered. ")
	ErrorsTileNotInHand      = NewErr(1, false, "Tile not in hand. ")
	ErrorsStrategyInvalid    = NewErr(1, false, "Robot strategy invalid. ")
	ErrorsInternal           = NewErr(2, false, "Internal error, hand discarded. ")
)

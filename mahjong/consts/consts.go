package consts

const (
	_ int = iota
	DING
	PAO
)

var OpCodeData = map[int]string{
	DING: "丁",
	PAO:  "跑",
}

type Role int

const (
	Human Role = iota
	Robot
)

func (r Role) String() string {
	if r == Robot {
		return "robot"
	}
	return "human"
}

type Strategy int

const (
	Random Strategy = iota
	Level1
	Test
)

var StrategyNames = map[Strategy]string{
	Random: "random",
	Level1: "level1",
	Test:   "test",
}

func (s Strategy) String() string {
	return StrategyNames[s]
}

// ParseStrategy resolves a strategy by name, empty means Level1.
func ParseStrategy(name string) (Strategy, bool) {
	if name == "" {
		return Level1, true
	}
	for s, n := range StrategyNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

const (
	// NoWinner marks a hand that ended because the deck ran out.
	NoWinner = -1

	WinThreshold = 12
)

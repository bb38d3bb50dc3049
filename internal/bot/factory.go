package bot

import (
	"fmt"
)

// BotLevel selects a strategy tier.
type BotLevel int

const (
	BotLevelRookie BotLevel = iota
	BotLevelBalanced
	BotLevelTactician
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelRookie:
		return "rookie"
	case BotLevelBalanced:
		return "balanced"
	case BotLevelTactician:
		return "tactician"
	default:
		return "unknown"
	}
}

// ParseBotLevel maps a level name to its BotLevel.
func ParseBotLevel(name string) (BotLevel, error) {
	switch name {
	case "rookie":
		return BotLevelRookie, nil
	case "balanced":
		return BotLevelBalanced, nil
	case "tactician":
		return BotLevelTactician, nil
	default:
		return 0, fmt.Errorf("unknown bot level: %q", name)
	}
}

// NewBrain creates a strategy for the given tier.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelRookie:
		return &Rookie{}, nil
	case BotLevelBalanced:
		return &Balanced{}, nil
	case BotLevelTactician:
		return NewTactician(), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

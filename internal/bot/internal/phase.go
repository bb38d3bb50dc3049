package internal

import (
	"thirteen/internal/domain"
)

// GamePhase classifies how far a match has progressed.
type GamePhase int

const (
	PhaseOpening GamePhase = iota
	PhaseMid
	PhaseEnd
)

func (p GamePhase) String() string {
	switch p {
	case PhaseOpening:
		return "Opening"
	case PhaseMid:
		return "Mid"
	case PhaseEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// DetectPhase derives the phase from the players' remaining cards. End wins
// over everything: the moment any player has finished or an active player is
// down to five cards or fewer, endgame tactics apply. Opening holds only
// while every active player still has a full 13-card hand.
func DetectPhase(game *domain.Game) GamePhase {
	active := 0
	opening := true
	end := false

	for _, p := range game.Players {
		if p.Finished || len(p.Hand) == 0 {
			end = true
			continue
		}
		active++
		if len(p.Hand) != 13 {
			opening = false
		}
		if len(p.Hand) <= 5 {
			end = true
		}
	}

	switch {
	case active == 0 || end:
		return PhaseEnd
	case opening:
		return PhaseOpening
	default:
		return PhaseMid
	}
}

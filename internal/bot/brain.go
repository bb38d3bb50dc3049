package bot

import (
	"thirteen/internal/domain"
)

// Move is the decision a strategy hands back to the caller. The caller owns
// applying it to authoritative match state; strategies never touch the Game.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// Brain is the interface every bot strategy implements. CalculateMove is a
// synchronous, CPU-only call; OnEvent feeds match events to strategies that
// track state between turns.
type Brain interface {
	CalculateMove(game *domain.Game, player *domain.Player) (Move, error)
	OnEvent(event any)
}

// Match events delivered to OnEvent, in arrival order.

// GameStartedEvent carries the bot's own dealt hand.
type GameStartedEvent struct {
	Seat int
	Hand []domain.Card
}

// CardsPlayedEvent reports a play by any seat, the bot's own included.
type CardsPlayedEvent struct {
	Seat  int
	Cards []domain.Card
}

// TurnPassedEvent reports a pass against the current table combination.
type TurnPassedEvent struct {
	Seat int
}

// RoundClearedEvent signals everyone passed and the table is open again.
type RoundClearedEvent struct {
	LeadSeat int
}

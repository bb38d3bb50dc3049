package bot

import (
	"thirteen/internal/domain"
)

// Agent binds a strategy to a player identity.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent for its move in the given game.
func (a *Agent) Play(game *domain.Game) (Move, error) {
	player, ok := game.Players[a.ID]
	if !ok {
		return Move{Pass: true}, nil
	}
	return a.Strategy.CalculateMove(game, player)
}

// OnGameEvent forwards a match event to the strategy.
func (a *Agent) OnGameEvent(event any) {
	a.Strategy.OnEvent(event)
}

package bot

import (
	"sort"

	"thirteen/internal/bot/internal"
	"thirteen/internal/domain"
)

// Rookie always plays the lowest-value legal combination. No memory, no
// inference; the floor the other tiers are measured against.
type Rookie struct{}

func (b *Rookie) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	validMoves := internal.GetValidMoves(player.Hand, game.LastPlayedCombination)
	if len(validMoves) == 0 {
		return Move{Pass: true}, nil
	}

	sort.Slice(validMoves, func(i, j int) bool {
		comboI := domain.IdentifyCombination(validMoves[i].Cards)
		comboJ := domain.IdentifyCombination(validMoves[j].Cards)
		if comboI.Value != comboJ.Value {
			return comboI.Value < comboJ.Value
		}
		// Shed more cards when the top card ties.
		return comboI.Count > comboJ.Count
	})

	return Move{Cards: validMoves[0].Cards}, nil
}

func (b *Rookie) OnEvent(event any) {}

package bot

import (
	"sort"

	"thirteen/internal/bot/internal"
	"thirteen/internal/domain"
)

// Balanced scores every legal move by the hand it leaves behind, with
// weights tuned per game phase. It passes when every move damages the hand
// more than holding does.
type Balanced struct{}

func (b *Balanced) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	lastCombo := game.LastPlayedCombination
	validMoves := internal.GetValidMoves(player.Hand, lastCombo)
	if len(validMoves) == 0 {
		return Move{Pass: true}, nil
	}

	phase := internal.DetectPhase(game)
	weights := DefaultTuning.ForPhase(phase)
	threat := internal.DetectThreat(game, player.Seat, DefaultTuning.ThreatThreshold)
	scored := internal.BuildScoredMoves(player.Hand, validMoves, weights, threat)

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		// Save higher cards when scores tie.
		return scored[i].Combo.Value < scored[j].Combo.Value
	})

	if lastCombo.Type != domain.Invalid {
		currentScore := internal.ScoreHand(player.Hand, weights)
		if scored[0].Score < currentScore+DefaultTuning.PassThreshold {
			return Move{Pass: true}, nil
		}
	}

	return Move{Cards: scored[0].Move.Cards}, nil
}

func (b *Balanced) OnEvent(event any) {}

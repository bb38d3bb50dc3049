package brain

import (
	"thirteen/internal/domain"
)

// Estimator derives probabilistic reads from a GameMemory. All methods are
// pure over the memory; none mutate it.
type Estimator struct {
	Memory *GameMemory
}

// NewEstimator wraps a memory in a reasoning layer.
func NewEstimator(m *GameMemory) *Estimator {
	return &Estimator{Memory: m}
}

// GetBossCards filters the hand down to cards that cannot currently lose a
// lead.
func (e *Estimator) GetBossCards(hand []domain.Card) []domain.Card {
	var boss []domain.Card
	for _, c := range hand {
		if e.Memory.IsBoss(c) {
			boss = append(boss, c)
		}
	}
	return boss
}

// LeadTurnProbability estimates the chance that leading this single card
// wins the turn back. Boss cards are certain; otherwise the estimate decays
// uniformly with the number of unaccounted higher cards.
func (e *Estimator) LeadTurnProbability(c domain.Card) float64 {
	if e.Memory.IsBoss(c) {
		return 1.0
	}

	higherUnknown := 0
	for i := cardIndex(c) + 1; i < 52; i++ {
		status := e.Memory.DeckStatus[i]
		if status == StatusUnknown || status == StatusOpponent {
			higherUnknown++
		}
	}
	if higherUnknown == 0 {
		return 1.0
	}
	return 1.0 / float64(higherUnknown+1)
}

// CalculateDominance scores the hand's strength against everything not yet
// accounted for, as avgHand / (avgHand + avgUnknown) in [0,1].
func (e *Estimator) CalculateDominance(hand []domain.Card) float64 {
	if len(hand) == 0 {
		return 0.0
	}

	handPower := 0.0
	for _, c := range hand {
		handPower += float64(domain.CardPower(c))
	}
	avgHandPower := handPower / float64(len(hand))

	unknownPower := 0.0
	unknownCount := 0
	for i, status := range e.Memory.DeckStatus {
		if status == StatusUnknown || status == StatusOpponent {
			unknownPower += float64(i)
			unknownCount++
		}
	}
	if unknownCount == 0 {
		return 1.0
	}

	avgUnknownPower := unknownPower / float64(unknownCount)
	return avgHandPower / (avgHandPower + avgUnknownPower)
}

// IsSafeFromNextPlayers walks the three seats after mySeat in turn order and
// returns the fraction of profiled opponents known unable to beat the combo.
// Accumulation stops at the first opponent who still might; 0 when no seat
// has a profile yet.
func (e *Estimator) IsSafeFromNextPlayers(combo domain.CardCombination, mySeat int) float64 {
	if combo.Type == domain.Invalid {
		return 0.0
	}

	safety := 0.0
	checked := 0
	for i := 1; i < seatCount; i++ {
		profile := e.Memory.OpponentAt((mySeat + i) % seatCount)
		if profile == nil {
			continue
		}
		checked++
		if profile.CanPossiblyBeat(combo) {
			break
		}
		safety += 1.0
	}

	if checked == 0 {
		return 0.0
	}
	return safety / float64(checked)
}

// GetComboLikelihood estimates whether the seat can still produce a given
// combination type. Physical card-count limits hard-zero it; exhaustion of
// typical hand structure decays it; 0.7 is the optimistic default.
func (e *Estimator) GetComboLikelihood(seat int, comboType domain.CardCombinationType) float64 {
	p := e.Memory.OpponentAt(seat)
	if p == nil {
		return 0.5
	}

	switch comboType {
	case domain.Pair:
		if p.CardsRemaining < 2 {
			return 0.0
		}
	case domain.Triple, domain.Straight:
		if p.CardsRemaining < 3 {
			return 0.0
		}
	case domain.Bomb:
		if p.CardsRemaining < 4 {
			return 0.0
		}
	}

	played := p.PlayedStats[comboType]
	switch comboType {
	case domain.Straight:
		// Three straights in one 13-card deal is rare.
		if played >= 2 {
			return 0.1
		}
		if played == 1 {
			return 0.3
		}
	case domain.Pair:
		if played >= 4 {
			return 0.1
		}
		if played >= 3 {
			return 0.4
		}
	case domain.Bomb:
		if played >= 1 {
			return 0.05
		}
	}

	return 0.7
}

// GetDominanceScore rewards leading a high single strictly below the next
// opponent's recorded single weakness: the strongest card that still fits
// under a ceiling they already failed at. Applies to singles only.
func (e *Estimator) GetDominanceScore(combo domain.CardCombination, mySeat int) float64 {
	profile := e.Memory.OpponentAt((mySeat + 1) % seatCount)
	if profile == nil {
		return 0.0
	}
	maxFailed, isWeak := profile.Weaknesses[combo.Type]
	if !isWeak {
		return 0.0
	}

	// A high lead is a jack or above (power >= 32).
	if combo.Type == domain.Single && combo.Value >= 32 && maxFailed > combo.Value {
		return 1.0
	}
	return 0.0
}

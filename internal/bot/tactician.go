package bot

import (
	"sort"

	"thirteen/internal/bot/brain"
	"thirteen/internal/bot/internal"
	"thirteen/internal/domain"
)

// Tactician plays with a full card ledger: it counts every card it sees,
// profiles each opponent's passes, and spends its strong structures only
// when the inference layer says the moment is right.
type Tactician struct {
	seat      int
	memory    *brain.GameMemory
	estimator *brain.Estimator
}

func NewTactician() *Tactician {
	memory := brain.NewMemory()
	return &Tactician{
		seat:      -1,
		memory:    memory,
		estimator: brain.NewEstimator(memory),
	}
}

func (b *Tactician) OnEvent(event any) {
	switch e := event.(type) {
	case GameStartedEvent:
		b.seat = e.Seat
		b.memory.Reset()
		b.memory.UpdateHand(e.Hand)
	case CardsPlayedEvent:
		b.memory.UpdateTable(e.Cards)
		if e.Seat != b.seat {
			b.memory.RecordPlay(e.Seat, e.Cards)
		}
	case TurnPassedEvent:
		if e.Seat != b.seat {
			b.memory.RecordPass(e.Seat)
		}
	case RoundClearedEvent:
		b.memory.UpdateTable(nil)
	}
}

func (b *Tactician) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	b.seat = player.Seat
	b.memory.UpdateHand(player.Hand)

	// Resync the table from the snapshot so a missed event cannot leave the
	// ledger behind.
	last := game.LastPlayedCombination
	b.memory.UpdateTable(last.Cards)

	if last.Type == domain.Invalid || len(last.Cards) == 0 {
		return b.lead(player), nil
	}
	return b.respond(game, player, last), nil
}

// lead opens a round. First choice is a trash single sitting just under a
// demonstrated opponent weakness; failing that, the cheapest structure the
// organizer found, trash first.
func (b *Tactician) lead(player *domain.Player) Move {
	organized := internal.BestPartition(player.Hand)

	if exploit := b.weaknessExploit(organized.Trash, player.Seat); exploit != nil {
		return Move{Cards: exploit}
	}

	if len(organized.Trash) > 0 {
		return Move{Cards: []domain.Card{organized.Trash[0]}}
	}

	if combo := b.cheapestStructure(organized, player.Seat); combo != nil {
		return Move{Cards: combo.Cards}
	}

	if len(organized.Bombs) > 0 {
		return Move{Cards: organized.Bombs[0].Cards}
	}

	// Unreachable with a non-empty hand, but never return an empty play.
	return Move{Pass: true}
}

// weaknessExploit picks the highest trash single that a next-seat pass has
// already shown cannot be answered.
func (b *Tactician) weaknessExploit(trash []domain.Card, seat int) []domain.Card {
	var best []domain.Card
	for _, c := range trash {
		combo := domain.IdentifyCombination([]domain.Card{c})
		if b.estimator.GetDominanceScore(combo, seat) > 0 {
			best = combo.Cards
		}
	}
	return best
}

// cheapestStructure compares the lowest pair, triple and straight, biased
// toward the shape opponents are least likely to hold an answer for.
func (b *Tactician) cheapestStructure(organized internal.OrganizedHand, seat int) *domain.CardCombination {
	var candidates []domain.CardCombination
	if len(organized.Pairs) > 0 {
		candidates = append(candidates, organized.Pairs[0])
	}
	if len(organized.Triples) > 0 {
		candidates = append(candidates, organized.Triples[0])
	}
	if len(organized.Straights) > 0 {
		candidates = append(candidates, organized.Straights[0])
	}
	if len(candidates) == 0 {
		return nil
	}

	best := 0
	bestRisk := b.answerLikelihood(candidates[0].Type, seat)
	for i := 1; i < len(candidates); i++ {
		risk := b.answerLikelihood(candidates[i].Type, seat)
		if risk < bestRisk || (risk == bestRisk && candidates[i].Value < candidates[best].Value) {
			best, bestRisk = i, risk
		}
	}
	return &candidates[best]
}

// answerLikelihood is the most optimistic opponent's chance of holding the
// combination type.
func (b *Tactician) answerLikelihood(comboType domain.CardCombinationType, seat int) float64 {
	max := 0.0
	for offset := 1; offset <= 3; offset++ {
		if l := b.estimator.GetComboLikelihood((seat+offset)%4, comboType); l > max {
			max = l
		}
	}
	return max
}

// respond plays the weakest legal beat that does not dismantle a stronger
// structure. Structure-breaking beats are held back unless the table
// justifies the spend.
func (b *Tactician) respond(game *domain.Game, player *domain.Player, last domain.CardCombination) Move {
	validMoves := internal.GetValidMoves(player.Hand, last)
	if len(validMoves) == 0 {
		return Move{Pass: true}
	}

	sort.Slice(validMoves, func(i, j int) bool {
		return domain.IdentifyCombination(validMoves[i].Cards).Value <
			domain.IdentifyCombination(validMoves[j].Cards).Value
	})

	organized := internal.BestPartition(player.Hand)
	structureSize := structureSizes(organized)

	for _, m := range validMoves {
		combo := domain.IdentifyCombination(m.Cards)
		if combo.Type == domain.Bomb && last.Type != domain.Bomb {
			continue
		}
		if dismantles(m.Cards, structureSize) {
			continue
		}
		return Move{Cards: m.Cards}
	}

	if b.shouldSpendStructure(game, player, last) {
		return Move{Cards: validMoves[0].Cards}
	}
	return Move{Pass: true}
}

// shouldSpendStructure decides whether breaking into a bomb or run is worth
// it: bomb wars, chopping a 2, or an opponent about to go out.
func (b *Tactician) shouldSpendStructure(game *domain.Game, player *domain.Player, last domain.CardCombination) bool {
	if last.Type == domain.Bomb {
		return true
	}
	if last.Value >= 48 { // topped by a 2
		return true
	}
	return internal.DetectThreat(game, player.Seat, DefaultTuning.ThreatThreshold)
}

// structureSizes maps card power to the size of the organizer structure
// holding that card.
func structureSizes(organized internal.OrganizedHand) map[int32]int {
	sizes := map[int32]int{}
	record := func(combos []domain.CardCombination) {
		for _, combo := range combos {
			for _, c := range combo.Cards {
				sizes[domain.CardPower(c)] = int(combo.Count)
			}
		}
	}
	record(organized.Bombs)
	record(organized.Straights)
	record(organized.Triples)
	record(organized.Pairs)
	return sizes
}

// dismantles reports whether the play rips cards out of a larger structure
// instead of spending one whole.
func dismantles(cards []domain.Card, structureSize map[int32]int) bool {
	for _, c := range cards {
		if size, ok := structureSize[domain.CardPower(c)]; ok && size > len(cards) {
			return true
		}
	}
	return false
}

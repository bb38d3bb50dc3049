package internal

import (
	"testing"

	"thirteen/internal/domain"
)

var testWeights = PhaseWeights{
	HandScoreWeight:    1.0,
	StraightCardWeight: 0.5,
	PineCardWeight:     0.7,
	PairWeight:         0.6,
	TripleWeight:       0.8,
	QuadWeight:         1.0,
	SingleWeight:       -1.2,
	TotalCardWeight:    -0.3,
	UseTwoPenalty:      4.0,
	UseBombPenalty:     3.0,
	UseHighCardPenalty: 0.4,
	FinishBonus:        1000.0,
}

func TestScoreHand_StructureOverTrash(t *testing.T) {
	structured := []domain.Card{
		{Rank: 1, Suit: 0}, {Rank: 2, Suit: 0}, {Rank: 3, Suit: 0},
		{Rank: 7, Suit: 0}, {Rank: 7, Suit: 1},
	}
	scattered := []domain.Card{
		{Rank: 0, Suit: 0}, {Rank: 2, Suit: 1}, {Rank: 4, Suit: 0},
		{Rank: 6, Suit: 1}, {Rank: 1, Suit: 2},
	}

	if ScoreHand(structured, testWeights) <= ScoreHand(scattered, testWeights) {
		t.Errorf("structured hand should outscore scattered trash")
	}
}

func TestBuildScoredMoves_FinishBonus(t *testing.T) {
	hand := []domain.Card{{Rank: 3, Suit: 0}}
	moves := []ValidMove{{Cards: hand}}

	scored := BuildScoredMoves(hand, moves, testWeights, false)

	if len(scored) != 1 {
		t.Fatalf("expected 1 scored move, got %d", len(scored))
	}
	if scored[0].Score < 900.0 {
		t.Errorf("emptying the hand should earn the finish bonus, got %.1f", scored[0].Score)
	}
	if len(scored[0].Remaining) != 0 {
		t.Errorf("expected empty remainder, got %v", scored[0].Remaining)
	}
}

func TestBuildScoredMoves_TwoPenalty(t *testing.T) {
	hand := []domain.Card{
		{Rank: 12, Suit: 0},
		{Rank: 4, Suit: 0},
		{Rank: 0, Suit: 1},
	}
	moves := []ValidMove{
		{Cards: []domain.Card{{Rank: 12, Suit: 0}}},
		{Cards: []domain.Card{{Rank: 4, Suit: 0}}},
	}

	scored := BuildScoredMoves(hand, moves, testWeights, false)

	var pigScore, midScore float64
	for _, s := range scored {
		if s.Move.Cards[0].Rank == 12 {
			pigScore = s.Score
		} else {
			midScore = s.Score
		}
	}
	if pigScore >= midScore {
		t.Errorf("spending the 2 should be penalized: pig %.1f vs mid %.1f", pigScore, midScore)
	}
}

func TestBuildScoredMoves_BombPenalty(t *testing.T) {
	hand := []domain.Card{
		{Rank: 2, Suit: 0}, {Rank: 2, Suit: 1}, {Rank: 2, Suit: 2}, {Rank: 2, Suit: 3},
		{Rank: 6, Suit: 0},
		{Rank: 8, Suit: 1},
	}
	bomb := ValidMove{Cards: hand[:4]}
	single := ValidMove{Cards: []domain.Card{{Rank: 6, Suit: 0}}}

	scored := BuildScoredMoves(hand, []ValidMove{bomb, single}, testWeights, false)

	var bombScore, singleScore float64
	for _, s := range scored {
		if s.Combo.Type == domain.Bomb {
			bombScore = s.Score
		} else {
			singleScore = s.Score
		}
	}
	if bombScore >= singleScore {
		t.Errorf("breaking the bomb should score worse than a cheap single: %.1f vs %.1f", bombScore, singleScore)
	}
}

func TestBuildScoredMoves_ThreatBlockerBonus(t *testing.T) {
	hand := []domain.Card{
		{Rank: 11, Suit: 3},
		{Rank: 1, Suit: 0},
	}
	ace := ValidMove{Cards: []domain.Card{{Rank: 11, Suit: 3}}}

	calm := BuildScoredMoves(hand, []ValidMove{ace}, testWeights, false)
	threatened := BuildScoredMoves(hand, []ValidMove{ace}, withBlockerBonus(testWeights), true)

	if threatened[0].Score <= calm[0].Score {
		t.Errorf("a threat should raise the ace's score: %.1f vs %.1f", threatened[0].Score, calm[0].Score)
	}
}

func withBlockerBonus(w PhaseWeights) PhaseWeights {
	w.BlockerHighCardBonus = 0.8
	return w
}

func TestDetectThreat(t *testing.T) {
	game := gameWithHands([]int{10, 3, 12, 8}, []bool{false, false, false, false})

	if !DetectThreat(game, 0, 3) {
		t.Errorf("seat 1 holds 3 cards, threat expected")
	}
	if DetectThreat(game, 1, 3) {
		t.Errorf("a player is not their own threat")
	}
	if DetectThreat(game, 0, 2) {
		t.Errorf("no opponent at or below 2 cards")
	}
	if DetectThreat(nil, 0, 3) {
		t.Errorf("nil game cannot threaten")
	}
}

func TestProfileHand(t *testing.T) {
	hand := []domain.Card{
		{Rank: 0, Suit: 0}, {Rank: 0, Suit: 1}, {Rank: 0, Suit: 2}, {Rank: 0, Suit: 3},
		{Rank: 3, Suit: 0}, {Rank: 4, Suit: 1}, {Rank: 5, Suit: 2},
		{Rank: 8, Suit: 0}, {Rank: 8, Suit: 1}, {Rank: 8, Suit: 2},
		{Rank: 10, Suit: 0}, {Rank: 10, Suit: 3},
		{Rank: 12, Suit: 1},
	}

	profile := ProfileHand(hand)

	if profile.Quads != 1 {
		t.Errorf("Quads = %d, want 1", profile.Quads)
	}
	if profile.Straights != 1 || profile.StraightCards != 3 || profile.MaxStraightLen != 3 {
		t.Errorf("straight stats wrong: %+v", profile)
	}
	if profile.Triples != 1 || profile.Pairs != 1 {
		t.Errorf("set stats wrong: %+v", profile)
	}
	if profile.Singles != 1 || profile.Twos != 1 {
		t.Errorf("single stats wrong: %+v", profile)
	}
	if profile.TotalCards != 13 {
		t.Errorf("TotalCards = %d, want 13", profile.TotalCards)
	}
}

func TestProfileHand_Pine(t *testing.T) {
	hand := []domain.Card{
		{Rank: 2, Suit: 0}, {Rank: 2, Suit: 1},
		{Rank: 3, Suit: 0}, {Rank: 3, Suit: 1},
		{Rank: 4, Suit: 0}, {Rank: 4, Suit: 1},
	}

	profile := ProfileHand(hand)

	if profile.Pines != 1 || profile.PineCards != 6 || profile.MaxPinePairs != 3 {
		t.Errorf("pine stats wrong: %+v", profile)
	}
	if profile.Pairs != 0 {
		t.Errorf("pine pairs must not double-count as pairs: %+v", profile)
	}
}

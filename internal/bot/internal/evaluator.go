package internal

import (
	"thirteen/internal/domain"
)

// Fixed score table for hand strength.
const (
	ScoreBomb       = 30.0
	ScoreStraight   = 5.0 // per card
	ScoreTriple     = 10.0
	ScorePair       = 5.0
	ScoreHighSingle = 2.0
	ScoreLowSingle  = -2.0
	ScorePig        = 20.0
)

// EvaluateHand rates a hand by destructively extracting quads, straights,
// triples and pairs in that order, then scoring the leftover singles. Twos
// outside a quad always count as pig singles; their raw power outweighs any
// structure they could join.
func EvaluateHand(hand []domain.Card) float64 {
	if len(hand) == 0 {
		return 0.0
	}

	table := newRankTable(hand)
	score := 0.0

	for r := int32(0); r <= 12; r++ {
		if table.count(r) == 4 {
			table.takeLowest(r, 4)
			score += ScoreBomb
		}
	}

	if pigs := table.count(12); pigs > 0 {
		table.takeLowest(12, pigs)
		score += ScorePig * float64(pigs)
	}

	for {
		start, length := table.longestRun(1, 3)
		if length == 0 {
			break
		}
		for k := 0; k < length; k++ {
			table.takeLowest(start+int32(k), 1)
		}
		score += ScoreStraight * float64(length)
	}

	for r := int32(0); r <= 12; r++ {
		switch table.count(r) {
		case 3:
			table.takeLowest(r, 3)
			score += ScoreTriple
		case 2:
			table.takeLowest(r, 2)
			score += ScorePair
		}
	}

	for _, c := range table.remaining() {
		score += singleScore(c)
	}
	return score
}

func singleScore(c domain.Card) float64 {
	switch {
	case c.Rank == 12:
		return ScorePig
	case c.Rank >= 8:
		return ScoreHighSingle
	default:
		return ScoreLowSingle
	}
}

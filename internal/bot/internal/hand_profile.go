package internal

import "thirteen/internal/domain"

// HandProfile summarizes a hand's structure for phase-aware scoring.
type HandProfile struct {
	TotalCards     int
	Singles        int
	Pairs          int
	Triples        int
	Quads          int
	Straights      int
	StraightCards  int
	MaxStraightLen int
	Pines          int
	PineCards      int
	MaxPinePairs   int
	Twos           int
}

// ProfileHand counts the structures a straights-first partition finds in the
// hand. Quads and pines are told apart by shape: a quad bomb is four cards of
// one rank.
func ProfileHand(hand []domain.Card) HandProfile {
	profile := HandProfile{TotalCards: len(hand)}
	if len(hand) == 0 {
		return profile
	}

	for _, c := range hand {
		if c.Rank == 12 {
			profile.Twos++
		}
	}

	organized := Partition(hand, StraightsFirst)

	for _, b := range organized.Bombs {
		if isQuad(b) {
			profile.Quads++
			continue
		}
		profile.Pines++
		profile.PineCards += int(b.Count)
		if pairs := int(b.Count) / 2; pairs > profile.MaxPinePairs {
			profile.MaxPinePairs = pairs
		}
	}

	for _, s := range organized.Straights {
		profile.Straights++
		profile.StraightCards += int(s.Count)
		if int(s.Count) > profile.MaxStraightLen {
			profile.MaxStraightLen = int(s.Count)
		}
	}

	profile.Triples = len(organized.Triples)
	profile.Pairs = len(organized.Pairs)
	profile.Singles = len(organized.Trash)

	return profile
}

func isQuad(combo domain.CardCombination) bool {
	return combo.Count == 4 && combo.Cards[0].Rank == combo.Cards[3].Rank
}

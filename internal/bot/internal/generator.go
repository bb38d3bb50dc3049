package internal

import (
	"thirteen/internal/domain"
)

// ValidMove is one playable card set drawn from a hand.
type ValidMove struct {
	Cards []domain.Card
}

// GetValidMoves enumerates every legal play from hand against the table.
// With nothing on the table it returns all lead candidates; otherwise only
// sets that beat the last combination, bombs included. Moves come out
// weakest first within each shape.
func GetValidMoves(hand []domain.Card, last domain.CardCombination) []ValidMove {
	table := newRankTable(hand)

	if last.Type == domain.Invalid || len(last.Cards) == 0 {
		return leadCandidates(table)
	}

	var candidates []ValidMove
	switch last.Type {
	case domain.Single:
		candidates = singleCandidates(table)
	case domain.Pair:
		candidates = tupleCandidates(table, 2)
	case domain.Triple:
		candidates = tupleCandidates(table, 3)
	case domain.Straight:
		candidates = straightCandidates(table, int32(last.Count))
	case domain.Bomb:
		candidates = bombCandidates(table)
	}
	if last.Type != domain.Bomb {
		// Bombs are always on the table as chop attempts; CanBeat decides
		// whether this particular one is allowed to interrupt.
		candidates = append(candidates, bombCandidates(table)...)
	}

	var moves []ValidMove
	for _, cand := range candidates {
		if domain.CanBeat(last.Cards, cand.Cards) {
			moves = append(moves, cand)
		}
	}
	return moves
}

func leadCandidates(table *rankTable) []ValidMove {
	var moves []ValidMove
	moves = append(moves, singleCandidates(table)...)
	moves = append(moves, tupleCandidates(table, 2)...)
	moves = append(moves, tupleCandidates(table, 3)...)
	for length := int32(3); length <= 12; length++ {
		moves = append(moves, straightCandidates(table, length)...)
	}
	moves = append(moves, bombCandidates(table)...)
	return moves
}

func singleCandidates(table *rankTable) []ValidMove {
	var moves []ValidMove
	for r := int32(0); r <= 12; r++ {
		for _, c := range table.cards[r] {
			moves = append(moves, ValidMove{Cards: []domain.Card{c}})
		}
	}
	return moves
}

// tupleCandidates yields every same-rank subset of the given size. Suit
// choice matters when beating, so all subsets are produced, not just the
// lowest.
func tupleCandidates(table *rankTable, size int) []ValidMove {
	var moves []ValidMove
	for r := int32(0); r <= 12; r++ {
		moves = append(moves, rankSubsets(table.cards[r], size)...)
	}
	return moves
}

func rankSubsets(cards []domain.Card, size int) []ValidMove {
	if len(cards) < size {
		return nil
	}
	var moves []ValidMove
	var pick func(start int, chosen []domain.Card)
	pick = func(start int, chosen []domain.Card) {
		if len(chosen) == size {
			moves = append(moves, ValidMove{Cards: append([]domain.Card(nil), chosen...)})
			return
		}
		for i := start; i < len(cards); i++ {
			pick(i+1, append(chosen, cards[i]))
		}
	}
	pick(0, nil)
	return moves
}

// straightCandidates yields runs of the exact length. Lower ranks use their
// lowest suit; the top rank, which decides the beat, gets one variant per
// suit held.
func straightCandidates(table *rankTable, length int32) []ValidMove {
	if length < 3 {
		return nil
	}
	var moves []ValidMove
	for start := int32(0); start+length <= 12; start++ {
		ok := true
		for k := int32(0); k < length; k++ {
			if table.count(start+k) == 0 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		base := make([]domain.Card, 0, length-1)
		for k := int32(0); k < length-1; k++ {
			base = append(base, table.cards[start+k][0])
		}
		for _, top := range table.cards[start+length-1] {
			run := append(append([]domain.Card(nil), base...), top)
			moves = append(moves, ValidMove{Cards: run})
		}
	}
	return moves
}

// bombCandidates yields quads plus every consecutive-pair run of 3 to 5
// pairs, using the two lowest suits per rank.
func bombCandidates(table *rankTable) []ValidMove {
	var moves []ValidMove
	for r := int32(0); r <= 12; r++ {
		if table.count(r) == 4 {
			moves = append(moves, ValidMove{Cards: append([]domain.Card(nil), table.cards[r]...)})
		}
	}
	for pairs := int32(3); pairs <= 5; pairs++ {
		for start := int32(0); start+pairs <= 12; start++ {
			ok := true
			for k := int32(0); k < pairs; k++ {
				if table.count(start+k) < 2 {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			pine := make([]domain.Card, 0, pairs*2)
			for k := int32(0); k < pairs; k++ {
				pine = append(pine, table.cards[start+k][0], table.cards[start+k][1])
			}
			moves = append(moves, ValidMove{Cards: pine})
		}
	}
	return moves
}

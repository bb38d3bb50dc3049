package internal

import (
	"thirteen/internal/domain"
)

// OrganizedHand is a disjoint, exhaustive partition of a hand into tactical
// structures. Trash holds the leftover singles.
type OrganizedHand struct {
	Bombs     []domain.CardCombination
	Straights []domain.CardCombination
	Triples   []domain.CardCombination
	Pairs     []domain.CardCombination
	Trash     []domain.Card
}

// PartitionStrategy selects the greedy extraction order. Greedy extraction
// is order-dependent, so the two strategies give alternative framings of the
// same hand.
type PartitionStrategy int

const (
	// StraightsFirst extracts bombs, then straights, then sets.
	StraightsFirst PartitionStrategy = iota
	// PairsFirst extracts bombs, then sets, then straights.
	PairsFirst
)

// Partition splits a hand under the given strategy. Bombs always come out
// first.
func Partition(hand []domain.Card, strategy PartitionStrategy) OrganizedHand {
	organized := OrganizedHand{}
	if len(hand) == 0 {
		return organized
	}

	table := newRankTable(hand)
	organized.Bombs = table.extractBombs()

	if strategy == PairsFirst {
		organized.Triples, organized.Pairs = table.extractSets()
		organized.Straights = table.extractStraights()
	} else {
		organized.Straights = table.extractStraights()
		organized.Triples, organized.Pairs = table.extractSets()
	}

	organized.Trash = table.remaining()
	return organized
}

// BestPartition partitions the hand under both strategies and keeps the one
// the score table likes better.
func BestPartition(hand []domain.Card) OrganizedHand {
	straightsFirst := Partition(hand, StraightsFirst)
	pairsFirst := Partition(hand, PairsFirst)
	if pairsFirst.Score() > straightsFirst.Score() {
		return pairsFirst
	}
	return straightsFirst
}

// Score rates the partition using the evaluator's fixed table.
func (o OrganizedHand) Score() float64 {
	score := 0.0
	for range o.Bombs {
		score += ScoreBomb
	}
	for _, s := range o.Straights {
		score += ScoreStraight * float64(s.Count)
	}
	score += ScoreTriple * float64(len(o.Triples))
	score += ScorePair * float64(len(o.Pairs))
	for _, c := range o.Trash {
		score += singleScore(c)
	}
	return score
}

// Cards returns every card of the partition, useful for disjointness checks.
func (o OrganizedHand) Cards() []domain.Card {
	var all []domain.Card
	for _, b := range o.Bombs {
		all = append(all, b.Cards...)
	}
	for _, s := range o.Straights {
		all = append(all, s.Cards...)
	}
	for _, t := range o.Triples {
		all = append(all, t.Cards...)
	}
	for _, p := range o.Pairs {
		all = append(all, p.Cards...)
	}
	all = append(all, o.Trash...)
	return all
}

// ExtractBombs removes quads and consecutive-pair runs from the hand,
// returning the bombs and the rest.
func ExtractBombs(hand []domain.Card) ([]domain.CardCombination, []domain.Card) {
	table := newRankTable(hand)
	bombs := table.extractBombs()
	return bombs, table.remaining()
}

// ExtractStraights removes runs of 3+ distinct consecutive ranks (one card
// per rank, longest first) until none remain.
func ExtractStraights(hand []domain.Card) ([]domain.CardCombination, []domain.Card) {
	table := newRankTable(hand)
	straights := table.extractStraights()
	return straights, table.remaining()
}

// ExtractSets groups the remainder by rank into triples and pairs; singles
// stay behind.
func ExtractSets(hand []domain.Card) ([]domain.CardCombination, []domain.CardCombination, []domain.Card) {
	table := newRankTable(hand)
	triples, pairs := table.extractSets()
	return triples, pairs, table.remaining()
}

// rankTable buckets a hand by rank with suits ascending, so every extraction
// is a scan over 13 counters instead of a remove-and-rescan of the slice.
// Tie-breaks are fixed: lowest rank first, lowest suit within a rank.
type rankTable struct {
	cards [13][]domain.Card
}

func newRankTable(hand []domain.Card) *rankTable {
	sorted := make([]domain.Card, len(hand))
	copy(sorted, hand)
	domain.SortHand(sorted)

	t := &rankTable{}
	for _, c := range sorted {
		if c.Rank >= 0 && c.Rank <= 12 {
			t.cards[c.Rank] = append(t.cards[c.Rank], c)
		}
	}
	return t
}

func (t *rankTable) count(r int32) int {
	return len(t.cards[r])
}

// takeLowest removes and returns the n lowest-suited cards of a rank.
func (t *rankTable) takeLowest(r int32, n int) []domain.Card {
	taken := t.cards[r][:n:n]
	t.cards[r] = t.cards[r][n:]
	return taken
}

// remaining drains the table in power order.
func (t *rankTable) remaining() []domain.Card {
	var out []domain.Card
	for r := int32(0); r <= 12; r++ {
		out = append(out, t.cards[r]...)
	}
	return out
}

// longestRun finds the longest run of consecutive ranks below 12 holding at
// least minCount cards each. Ties go to the lowest starting rank. Returns
// length 0 when no run reaches minLen.
func (t *rankTable) longestRun(minCount, minLen int) (start int32, length int) {
	bestStart, bestLen := int32(-1), 0
	run := 0
	for r := int32(0); r < 12; r++ {
		if t.count(r) >= minCount {
			run++
		} else {
			run = 0
		}
		if run >= minLen && run > bestLen {
			bestLen = run
			bestStart = r - int32(run) + 1
		}
	}
	return bestStart, bestLen
}

func (t *rankTable) extractBombs() []domain.CardCombination {
	var bombs []domain.CardCombination

	// Quads first; removing one cannot create another.
	for r := int32(0); r <= 12; r++ {
		if t.count(r) == 4 {
			bombs = append(bombs, domain.IdentifyCombination(t.takeLowest(r, 4)))
		}
	}

	// Then consecutive-pair runs, longest first.
	for {
		start, length := t.longestRun(2, 3)
		if length == 0 {
			break
		}
		pine := make([]domain.Card, 0, length*2)
		for k := 0; k < length; k++ {
			pine = append(pine, t.takeLowest(start+int32(k), 2)...)
		}
		bombs = append(bombs, domain.IdentifyCombination(pine))
	}

	return bombs
}

func (t *rankTable) extractStraights() []domain.CardCombination {
	var straights []domain.CardCombination
	for {
		start, length := t.longestRun(1, 3)
		if length == 0 {
			break
		}
		run := make([]domain.Card, 0, length)
		for k := 0; k < length; k++ {
			run = append(run, t.takeLowest(start+int32(k), 1)...)
		}
		straights = append(straights, domain.IdentifyCombination(run))
	}
	return straights
}

func (t *rankTable) extractSets() (triples, pairs []domain.CardCombination) {
	for r := int32(0); r <= 12; r++ {
		switch t.count(r) {
		case 3:
			triples = append(triples, domain.IdentifyCombination(t.takeLowest(r, 3)))
		case 2:
			pairs = append(pairs, domain.IdentifyCombination(t.takeLowest(r, 2)))
		}
	}
	return triples, pairs
}

package domain

// CardCombinationType is the category a set of cards resolves to.
type CardCombinationType int

const (
	Invalid CardCombinationType = iota
	Single
	Pair
	Triple
	Bomb     // quad or run of consecutive pairs ("pine")
	Straight // run of 3+ consecutive ranks
)

func (t CardCombinationType) String() string {
	switch t {
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Triple:
		return "triple"
	case Bomb:
		return "bomb"
	case Straight:
		return "straight"
	default:
		return "invalid"
	}
}

// CardCombination is a validated set of cards. Value and Count are only
// meaningful when Type is not Invalid; callers branch on Type first.
type CardCombination struct {
	Type  CardCombinationType
	Cards []Card // sorted by power
	Value int32  // power of the highest card
	Count int
}

// comboShape is the exact structural form of a card set. It is finer-grained
// than CardCombinationType: quads and pines both surface as Bomb but beat
// differently.
type comboShape int

const (
	shapeNone comboShape = iota
	shapeSingle
	shapePair
	shapeTriple
	shapeQuad
	shapeStraight
	shapePine
)

// classify resolves a card set to its shape and top power in one pass over a
// rank-count table. shapeNone means the set is not a legal combination.
func classify(cards []Card) (comboShape, int32) {
	n := len(cards)
	if n == 0 {
		return shapeNone, 0
	}

	var counts [13]int
	maxPower := int32(-1)
	for _, c := range cards {
		if c.Rank < 0 || c.Rank > 12 || c.Suit < 0 || c.Suit > 3 {
			return shapeNone, 0
		}
		counts[c.Rank]++
		if p := CardPower(c); p > maxPower {
			maxPower = p
		}
	}

	distinct := 0
	minRank, maxRank := int32(-1), int32(-1)
	contiguous := true
	uniform := true
	for r := int32(0); r <= 12; r++ {
		if counts[r] == 0 {
			continue
		}
		distinct++
		if minRank < 0 {
			minRank = r
		} else if r != maxRank+1 {
			contiguous = false
		}
		if counts[r] != counts[minRank] {
			uniform = false
		}
		maxRank = r
	}

	if distinct == 1 {
		switch n {
		case 1:
			return shapeSingle, maxPower
		case 2:
			return shapePair, maxPower
		case 3:
			return shapeTriple, maxPower
		case 4:
			return shapeQuad, maxPower
		}
		return shapeNone, 0
	}

	// Runs cannot skip a rank, repeat a rank unevenly, or include the 2
	// (rank 12).
	if !contiguous || !uniform || maxRank == 12 {
		return shapeNone, 0
	}
	if counts[minRank] == 1 && distinct >= 3 {
		return shapeStraight, maxPower
	}
	if counts[minRank] == 2 && distinct >= 3 {
		return shapePine, maxPower
	}
	return shapeNone, 0
}

// Bomb tiers order the chop ladder: 3-pine < quad < 4-pine < 5-pine.
const (
	tierNone = iota
	tierPine3
	tierQuad
	tierPine4
	tierPine5
)

func bombTier(shape comboShape, cardCount int) int {
	switch shape {
	case shapeQuad:
		return tierQuad
	case shapePine:
		switch cardCount / 2 {
		case 3:
			return tierPine3
		case 4:
			return tierPine4
		default:
			return tierPine5
		}
	default:
		return tierNone
	}
}

// IsValidSet reports whether the cards form a legal Tien Len combination.
func IsValidSet(cards []Card) bool {
	shape, _ := classify(cards)
	return shape != shapeNone
}

// IdentifyCombination resolves a card set into a CardCombination. Illegal
// sets yield the Invalid sentinel rather than an error.
func IdentifyCombination(cards []Card) CardCombination {
	shape, top := classify(cards)
	if shape == shapeNone {
		return CardCombination{Type: Invalid}
	}

	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	SortHand(sorted)

	combo := CardCombination{Cards: sorted, Value: top, Count: len(sorted)}
	switch shape {
	case shapeSingle:
		combo.Type = Single
	case shapePair:
		combo.Type = Pair
	case shapeTriple:
		combo.Type = Triple
	case shapeQuad, shapePine:
		combo.Type = Bomb
	case shapeStraight:
		combo.Type = Straight
	}
	return combo
}

// CanBeat reports whether newCards beat prevCards. Bomb-class combinations
// may chop a lone 2, a pair of 2s, or a weaker bomb; everything else needs
// the same shape and length with a higher top card.
func CanBeat(prevCards, newCards []Card) bool {
	newShape, newTop := classify(newCards)
	if newShape == shapeNone {
		return false
	}
	prevShape, prevTop := classify(prevCards)

	if newTier := bombTier(newShape, len(newCards)); newTier != tierNone {
		// A lone 2 falls to any bomb; a pair of 2s needs at least a quad.
		if prevShape == shapeSingle && prevCards[0].Rank == 12 {
			return true
		}
		if prevShape == shapePair && prevCards[0].Rank == 12 && newTier >= tierQuad {
			return true
		}
		if prevTier := bombTier(prevShape, len(prevCards)); prevTier != tierNone {
			if newTier != prevTier {
				return newTier > prevTier
			}
			return newTop > prevTop
		}
	}

	if prevShape != newShape || len(prevCards) != len(newCards) {
		return false
	}
	return newTop > prevTop
}

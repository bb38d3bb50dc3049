package domain

import (
	"fmt"
	"math/rand"
	"sort"
)

// Card is a single playing card. Rank runs 0..12 in Tien Len order
// (3=0, 4=1, ... A=11, 2=12); Suit runs 0..3 (spades lowest, hearts highest).
type Card struct {
	Rank int32
	Suit int32
}

// CardPower is the strict total order over cards. The rank*4+suit mapping is
// load-bearing: the bot's 52-slot card ledger is indexed by it.
func CardPower(c Card) int32 {
	return c.Rank*4 + c.Suit
}

var rankNames = [13]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}
var suitNames = [4]string{"s", "c", "d", "h"}

func (c Card) String() string {
	if c.Rank < 0 || c.Rank > 12 || c.Suit < 0 || c.Suit > 3 {
		return fmt.Sprintf("?(%d,%d)", c.Rank, c.Suit)
	}
	return rankNames[c.Rank] + suitNames[c.Suit]
}

// NewDeck returns the 52-card deck in power order.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for r := int32(0); r <= 12; r++ {
		for s := int32(0); s <= 3; s++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the deck using the supplied source,
// so deals are reproducible under a fixed seed.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SortHand orders a hand by ascending power in place.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return CardPower(cards[i]) < CardPower(cards[j])
	})
}

package domain

import "fmt"

// Phase is the lifecycle stage of a match.
type Phase string

const (
	PhaseLobby   Phase = "lobby"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

// Player holds the state for one seat in a match. Seats are 0-based, 0..3.
type Player struct {
	UserID    string
	Seat      int
	Hand      []Card
	HasPassed bool
	Finished  bool
}

// Game is the authoritative match state. Bots receive it read-only and must
// not mutate it.
type Game struct {
	Phase   Phase
	Players map[string]*Player // userID -> player

	// LastPlayedCombination is the combination currently holding the table.
	// Type Invalid means a fresh round: the current player leads.
	LastPlayedCombination CardCombination
	// LastPlaySeat is the seat that played LastPlayedCombination, -1 if none.
	LastPlaySeat int

	CurrentTurn string   // userID whose turn it is
	Discards    []Card   // every card played so far, in play order
	FinishOrder []string // userIDs in the order they emptied their hands
}

// PlayerAtSeat returns the player seated at the given seat, or nil.
func (g *Game) PlayerAtSeat(seat int) *Player {
	for _, p := range g.Players {
		if p.Seat == seat {
			return p
		}
	}
	return nil
}

// CountPlayersWithCards returns the number of unfinished players still
// holding cards.
func CountPlayersWithCards(g *Game) int {
	n := 0
	for _, p := range g.Players {
		if !p.Finished && len(p.Hand) > 0 {
			n++
		}
	}
	return n
}

// TakeCards removes played cards from a hand, failing if any card is not
// actually held. A play claiming cards the player does not hold must be
// rejected, not silently shrunk.
func TakeCards(hand []Card, played []Card) ([]Card, error) {
	remaining := make([]Card, len(hand))
	copy(remaining, hand)

	for _, pc := range played {
		found := -1
		for i, hc := range remaining {
			if hc == pc {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("card %v not in hand", pc)
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return remaining, nil
}

// RemoveCards removes cards from a hand with multiset semantics, skipping
// cards that are absent. Only for speculative what-if copies; authoritative
// state goes through TakeCards.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, c := range toRemove {
		removeCounts[c]++
	}

	updated := make([]Card, 0, len(hand))
	for _, c := range hand {
		if removeCounts[c] > 0 {
			removeCounts[c]--
			continue
		}
		updated = append(updated, c)
	}
	return updated
}

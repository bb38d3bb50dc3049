package brain

import (
	"thirteen/internal/domain"
)

// CardStatus is what the bot knows about one specific card.
type CardStatus int

const (
	StatusUnknown  CardStatus = iota // unaccounted for
	StatusMine                       // in the bot's hand
	StatusPlayed                     // on the table, out of the game
	StatusOpponent                   // known to sit in a specific opponent's hand
)

// seatCount bounds the table; profiles live in a fixed array indexed by seat.
const seatCount = 4

// GameMemory is one bot seat's private view of the 52-card universe and the
// combination currently holding the table. One instance exists per bot seat
// per match; the owning match loop mutates it serially.
type GameMemory struct {
	// DeckStatus tracks all 52 cards, indexed by rank*4+suit.
	DeckStatus [52]CardStatus
	// Opponents holds behavioral profiles by seat. A nil entry means that
	// seat has not been observed yet.
	Opponents [seatCount]*OpponentProfile
	// CurrentCombo is the table combination to beat; Invalid means a fresh
	// round.
	CurrentCombo domain.CardCombination
}

// NewMemory returns a memory with every card unknown.
func NewMemory() *GameMemory {
	return &GameMemory{CurrentCombo: domain.CardCombination{Type: domain.Invalid}}
}

// Reset clears the memory for a new game: all statuses to unknown, all
// profile counters cleared, no table combination.
func (m *GameMemory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnknown
	}
	for _, p := range m.Opponents {
		if p != nil {
			p.reset()
		}
	}
	m.CurrentCombo = domain.CardCombination{Type: domain.Invalid}
}

// MarkMine records cards held by the bot.
func (m *GameMemory) MarkMine(cards []domain.Card) {
	m.mark(cards, StatusMine)
}

// MarkPlayed records cards that are out of the game.
func (m *GameMemory) MarkPlayed(cards []domain.Card) {
	m.mark(cards, StatusPlayed)
}

// MarkOpponent records cards known to be in opponent hands.
func (m *GameMemory) MarkOpponent(cards []domain.Card) {
	m.mark(cards, StatusOpponent)
}

func (m *GameMemory) mark(cards []domain.Card, status CardStatus) {
	for _, c := range cards {
		if idx := cardIndex(c); idx >= 0 {
			m.DeckStatus[idx] = status
		}
	}
}

// UpdateHand resynchronizes the bot's own cards: stale Mine entries revert
// to Unknown before the new hand is marked.
func (m *GameMemory) UpdateHand(hand []domain.Card) {
	for i, status := range m.DeckStatus {
		if status == StatusMine {
			m.DeckStatus[i] = StatusUnknown
		}
	}
	m.MarkMine(hand)
}

// UpdateTable records the combination now holding the table and retires its
// cards. An empty play clears the table for a fresh round.
func (m *GameMemory) UpdateTable(cards []domain.Card) {
	if len(cards) == 0 {
		m.CurrentCombo = domain.CardCombination{Type: domain.Invalid}
		return
	}
	m.CurrentCombo = domain.IdentifyCombination(cards)
	m.MarkPlayed(cards)
}

// RecordPlay logs that a seat played the current table combination. Call
// after UpdateTable so the play is counted under the right type.
func (m *GameMemory) RecordPlay(seat int, cards []domain.Card) {
	if len(cards) == 0 {
		return
	}
	p := m.profileAt(seat)
	if p == nil {
		return
	}
	p.RecordPlay(m.CurrentCombo)
	p.CardsRemaining -= len(cards)
	if p.CardsRemaining < 0 {
		p.CardsRemaining = 0
	}
}

// RecordPass notes that a seat declined (or was unable) to beat the current
// table combination.
func (m *GameMemory) RecordPass(seat int) {
	if m.CurrentCombo.Type == domain.Invalid {
		return
	}
	if p := m.profileAt(seat); p != nil {
		p.RecordFailure(m.CurrentCombo)
	}
}

// OpponentAt returns the profile observed for a seat, nil if none.
func (m *GameMemory) OpponentAt(seat int) *OpponentProfile {
	if seat < 0 || seat >= seatCount {
		return nil
	}
	return m.Opponents[seat]
}

func (m *GameMemory) profileAt(seat int) *OpponentProfile {
	if seat < 0 || seat >= seatCount {
		return nil
	}
	if m.Opponents[seat] == nil {
		m.Opponents[seat] = NewOpponentProfile(seat)
	}
	return m.Opponents[seat]
}

// IsBoss reports whether no strictly higher card is unaccounted for or held
// by an opponent: led, the card cannot lose.
func (m *GameMemory) IsBoss(c domain.Card) bool {
	for i := cardIndex(c) + 1; i < 52; i++ {
		if m.DeckStatus[i] == StatusUnknown || m.DeckStatus[i] == StatusOpponent {
			return false
		}
	}
	return true
}

// IsPlayed reports whether the card is already out of the game.
func (m *GameMemory) IsPlayed(c domain.Card) bool {
	idx := cardIndex(c)
	return idx >= 0 && m.DeckStatus[idx] == StatusPlayed
}

func cardIndex(c domain.Card) int {
	if c.Rank < 0 || c.Rank > 12 || c.Suit < 0 || c.Suit > 3 {
		return -1
	}
	return int(domain.CardPower(c))
}

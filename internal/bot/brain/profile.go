package brain

import (
	"thirteen/internal/domain"
)

// startingHandSize is the deal size per seat.
const startingHandSize = 13

// OpponentProfile records what one seat has revealed through play: how many
// cards they still hold, how often they play each combination type, and the
// strongest value of each type they have been seen failing to beat.
type OpponentProfile struct {
	Seat           int
	CardsRemaining int
	// Weaknesses maps a combination type to the highest value that seat
	// failed to beat. The ceiling only ever rises.
	Weaknesses map[domain.CardCombinationType]int32
	// PlayedStats counts combinations played, by type.
	PlayedStats map[domain.CardCombinationType]int
}

// NewOpponentProfile returns a fresh profile for a seat.
func NewOpponentProfile(seat int) *OpponentProfile {
	p := &OpponentProfile{Seat: seat}
	p.reset()
	return p
}

func (p *OpponentProfile) reset() {
	p.CardsRemaining = startingHandSize
	p.Weaknesses = make(map[domain.CardCombinationType]int32)
	p.PlayedStats = make(map[domain.CardCombinationType]int)
}

// RecordPlay counts a combination played by this seat.
func (p *OpponentProfile) RecordPlay(combo domain.CardCombination) {
	if combo.Type == domain.Invalid {
		return
	}
	p.PlayedStats[combo.Type]++
}

// RecordFailure raises the weakness ceiling for a combination type this seat
// could not (or chose not to) beat. The ceiling never lowers.
func (p *OpponentProfile) RecordFailure(combo domain.CardCombination) {
	if combo.Type == domain.Invalid {
		return
	}
	if max, ok := p.Weaknesses[combo.Type]; !ok || combo.Value > max {
		p.Weaknesses[combo.Type] = combo.Value
	}
}

// CanPossiblyBeat reports whether there is no evidence this seat cannot beat
// the combo. Having failed against some value, they cannot beat anything at
// or above it (assuming rational play).
func (p *OpponentProfile) CanPossiblyBeat(combo domain.CardCombination) bool {
	maxFailed, ok := p.Weaknesses[combo.Type]
	if !ok {
		return true
	}
	return combo.Value < maxFailed
}

package app

import (
	"errors"
	"math/rand"
	"time"

	"thirteen/internal/domain"
)

// Service contains the match use-cases operating on domain state.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default. Passing a seeded rng makes deals reproducible.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrNotPlaying         = errors.New("match not in playing phase")
	ErrTooFewPlayers      = errors.New("not enough players to start")
	ErrUnknownPlayer      = errors.New("player not found")
	ErrPlayerFinished     = errors.New("player already finished")
	ErrNotYourTurn        = errors.New("not this player's turn")
	ErrInvalidCombination = errors.New("cards do not form a valid combination")
	ErrCannotBeat         = errors.New("combination does not beat the table")
	ErrMustLead           = errors.New("round leader must play")
	ErrCardsNotHeld       = errors.New("play claims cards not in hand")
)

// StartGame deals a fresh match for the given players. playerIDs are in seat
// order; empty strings mark empty seats. The holder of the lowest dealt card
// leads the first round.
func (s *Service) StartGame(playerIDs []string) (*domain.Game, []Event, error) {
	players := make(map[string]*domain.Player)
	var seatOrder []string

	for seat, userID := range playerIDs {
		if userID == "" {
			continue
		}
		players[userID] = &domain.Player{
			UserID: userID,
			Seat:   seat,
		}
		seatOrder = append(seatOrder, userID)
	}

	if len(players) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}

	deck := domain.ShuffleDeck(s.rng, domain.NewDeck())

	game := &domain.Game{
		Phase:        domain.PhasePlaying,
		Players:      players,
		LastPlaySeat: -1,
	}

	events := make([]Event, 0, len(players)+1)

	cardIdx := 0
	for _, userID := range seatOrder {
		pl := players[userID]
		pl.Hand = append([]domain.Card{}, deck[cardIdx:cardIdx+13]...)
		domain.SortHand(pl.Hand)
		cardIdx += 13

		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				UserID: pl.UserID,
				Hand:   pl.Hand,
			},
			Recipients: []string{pl.UserID},
		})
	}

	game.CurrentTurn = firstLeader(players)

	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			Phase:           game.Phase,
			FirstTurnUserID: game.CurrentTurn,
		},
	})

	return game, events, nil
}

// firstLeader is the holder of the lowest dealt card; with all four seats
// filled that is always the 3 of spades.
func firstLeader(players map[string]*domain.Player) string {
	lowest := int32(1<<31 - 1)
	leader := ""
	for _, pl := range players {
		for _, c := range pl.Hand {
			if p := domain.CardPower(c); p < lowest {
				lowest = p
				leader = pl.UserID
			}
		}
	}
	return leader
}

// PlayCards validates and applies a play, emitting the resulting events.
func (s *Service) PlayCards(game *domain.Game, actorUserID string, cards []domain.Card) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	pl, ok := game.Players[actorUserID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if pl.Finished {
		return nil, ErrPlayerFinished
	}
	if game.CurrentTurn != actorUserID {
		return nil, ErrNotYourTurn
	}

	combo := domain.IdentifyCombination(cards)
	if combo.Type == domain.Invalid {
		return nil, ErrInvalidCombination
	}
	if game.LastPlayedCombination.Type != domain.Invalid {
		if !domain.CanBeat(game.LastPlayedCombination.Cards, cards) {
			return nil, ErrCannotBeat
		}
	}

	remaining, err := domain.TakeCards(pl.Hand, cards)
	if err != nil {
		return nil, ErrCardsNotHeld
	}
	pl.Hand = remaining

	game.LastPlayedCombination = combo
	game.LastPlaySeat = pl.Seat
	game.Discards = append(game.Discards, combo.Cards...)

	if len(pl.Hand) == 0 {
		pl.Finished = true
		game.FinishOrder = append(game.FinishOrder, actorUserID)
	}

	events := []Event{}

	if domain.CountPlayersWithCards(game) <= 1 {
		s.endGame(game)
		events = append(events, Event{
			Kind: EventCardPlayed,
			Payload: CardPlayedPayload{
				UserID: actorUserID,
				Cards:  combo.Cards,
			},
		}, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{FinishOrder: game.FinishOrder},
		})
		return events, nil
	}

	next := s.advanceTurn(game, pl.Seat)
	events = append(events, Event{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			UserID:         actorUserID,
			Cards:          combo.Cards,
			NextTurnUserID: game.CurrentTurn,
		},
	})
	if next == nil {
		// Everyone else already passed or finished; the table clears and
		// the turn stays with the lead.
		events = append(events, Event{
			Kind:    EventRoundCleared,
			Payload: RoundClearedPayload{LeadUserID: game.CurrentTurn},
		})
	}

	return events, nil
}

// PassTurn applies a pass. The round leader on an open table must play.
func (s *Service) PassTurn(game *domain.Game, actorUserID string) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	pl, ok := game.Players[actorUserID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if pl.Finished {
		return nil, ErrPlayerFinished
	}
	if game.CurrentTurn != actorUserID {
		return nil, ErrNotYourTurn
	}
	if game.LastPlayedCombination.Type == domain.Invalid {
		return nil, ErrMustLead
	}

	pl.HasPassed = true

	events := []Event{}
	next := s.advanceTurn(game, pl.Seat)
	events = append(events, Event{
		Kind: EventTurnPassed,
		Payload: TurnPassedPayload{
			UserID:         actorUserID,
			NextTurnUserID: game.CurrentTurn,
		},
	})
	if next == nil {
		events = append(events, Event{
			Kind:    EventRoundCleared,
			Payload: RoundClearedPayload{LeadUserID: game.CurrentTurn},
		})
	}

	return events, nil
}

// advanceTurn moves CurrentTurn to the next active player who has not passed
// this round. When none remains besides the round owner, the round is over:
// passes reset, the table clears, and the lead goes to the owner — or, if
// the owner finished, to the next active seat after them. Returns the player
// the turn moved to, or nil when the round was cleared.
func (s *Service) advanceTurn(game *domain.Game, fromSeat int) *domain.Player {
	owner := game.PlayerAtSeat(game.LastPlaySeat)

	for i := 1; i <= 3; i++ {
		p := game.PlayerAtSeat((fromSeat + i) % 4)
		if p == nil || p.Finished || len(p.Hand) == 0 || p.HasPassed {
			continue
		}
		if owner != nil && p.Seat == owner.Seat {
			break
		}
		game.CurrentTurn = p.UserID
		return p
	}

	s.clearRound(game)
	return nil
}

// clearRound resets per-round state and hands the lead to the round owner,
// falling back to the next active seat when the owner has finished.
func (s *Service) clearRound(game *domain.Game) {
	for _, p := range game.Players {
		p.HasPassed = false
	}

	leadSeat := game.LastPlaySeat
	if leadSeat < 0 {
		leadSeat = 0
	}
	for i := 0; i <= 3; i++ {
		p := game.PlayerAtSeat((leadSeat + i) % 4)
		if p != nil && !p.Finished && len(p.Hand) > 0 {
			game.CurrentTurn = p.UserID
			break
		}
	}

	game.LastPlayedCombination = domain.CardCombination{}
	game.LastPlaySeat = -1
}

func (s *Service) endGame(game *domain.Game) {
	// The last player holding cards takes the final slot.
	for _, p := range game.Players {
		if !p.Finished && len(p.Hand) > 0 {
			game.FinishOrder = append(game.FinishOrder, p.UserID)
			p.Finished = true
		}
	}
	game.Phase = domain.PhaseEnded
}

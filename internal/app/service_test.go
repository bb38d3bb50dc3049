package app

import (
	"math/rand"
	"testing"

	"thirteen/internal/domain"
)

func TestStartGameDealsHands(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(42)))

	game, evs, err := svc.StartGame([]string{"u1", "u2", "u3", "u4"})
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}
	if game.Phase != domain.PhasePlaying {
		t.Fatalf("phase = %s, want playing", game.Phase)
	}

	handEvents := 0
	for _, ev := range evs {
		if ev.Kind == EventHandDealt {
			handEvents++
			payload := ev.Payload.(HandDealtPayload)
			if len(payload.Hand) != 13 {
				t.Fatalf("hand size = %d, want 13", len(payload.Hand))
			}
			if len(ev.Recipients) != 1 {
				t.Fatalf("hand dealt must be targeted, got %v", ev.Recipients)
			}
		}
	}
	if handEvents != 4 {
		t.Fatalf("hand events = %d, want 4", handEvents)
	}
}

func TestStartGameFirstLeadHoldsThreeOfSpades(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(7)))

	game, _, err := svc.StartGame([]string{"u1", "u2", "u3", "u4"})
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}

	leader := game.Players[game.CurrentTurn]
	found := false
	for _, c := range leader.Hand {
		if c.Rank == 0 && c.Suit == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("first lead %q does not hold the 3 of spades", game.CurrentTurn)
	}
}

func TestStartGameRejectsSinglePlayer(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	if _, _, err := svc.StartGame([]string{"u1", "", "", ""}); err != ErrTooFewPlayers {
		t.Fatalf("err = %v, want ErrTooFewPlayers", err)
	}
}

// twoPlayerGame builds a playing state with fixed small hands, u1 to move.
func twoPlayerGame() *domain.Game {
	return &domain.Game{
		Phase: domain.PhasePlaying,
		Players: map[string]*domain.Player{
			"u1": {UserID: "u1", Seat: 0, Hand: []domain.Card{
				{Rank: 0, Suit: 0}, {Rank: 5, Suit: 1},
			}},
			"u2": {UserID: "u2", Seat: 1, Hand: []domain.Card{
				{Rank: 2, Suit: 2}, {Rank: 9, Suit: 3},
			}},
		},
		LastPlaySeat: -1,
		CurrentTurn:  "u1",
	}
}

func TestPlayCardsValidation(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))

	game := twoPlayerGame()
	if _, err := svc.PlayCards(game, "u2", []domain.Card{{Rank: 2, Suit: 2}}); err != ErrNotYourTurn {
		t.Fatalf("err = %v, want ErrNotYourTurn", err)
	}
	if _, err := svc.PlayCards(game, "ghost", nil); err != ErrUnknownPlayer {
		t.Fatalf("err = %v, want ErrUnknownPlayer", err)
	}
	if _, err := svc.PlayCards(game, "u1", []domain.Card{{Rank: 0, Suit: 0}, {Rank: 5, Suit: 1}}); err != ErrInvalidCombination {
		t.Fatalf("err = %v, want ErrInvalidCombination", err)
	}
	if _, err := svc.PlayCards(game, "u1", []domain.Card{{Rank: 12, Suit: 3}}); err != ErrCardsNotHeld {
		t.Fatalf("err = %v, want ErrCardsNotHeld", err)
	}
}

func TestPlayCardsMustBeatTable(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	game := twoPlayerGame()

	if _, err := svc.PlayCards(game, "u1", []domain.Card{{Rank: 5, Suit: 1}}); err != nil {
		t.Fatalf("lead error: %v", err)
	}
	if game.CurrentTurn != "u2" {
		t.Fatalf("turn = %q, want u2", game.CurrentTurn)
	}

	// The 5 of diamonds does not beat the 8 of clubs.
	if _, err := svc.PlayCards(game, "u2", []domain.Card{{Rank: 2, Suit: 2}}); err != ErrCannotBeat {
		t.Fatalf("err = %v, want ErrCannotBeat", err)
	}
	if _, err := svc.PlayCards(game, "u2", []domain.Card{{Rank: 9, Suit: 3}}); err != nil {
		t.Fatalf("beat error: %v", err)
	}
}

func TestPassTurnClearsRound(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	game := twoPlayerGame()

	if _, err := svc.PassTurn(game, "u1"); err != ErrMustLead {
		t.Fatalf("err = %v, want ErrMustLead", err)
	}

	if _, err := svc.PlayCards(game, "u1", []domain.Card{{Rank: 5, Suit: 1}}); err != nil {
		t.Fatalf("lead error: %v", err)
	}

	evs, err := svc.PassTurn(game, "u2")
	if err != nil {
		t.Fatalf("pass error: %v", err)
	}

	cleared := false
	for _, ev := range evs {
		if ev.Kind == EventRoundCleared {
			cleared = true
			if ev.Payload.(RoundClearedPayload).LeadUserID != "u1" {
				t.Fatalf("lead should return to u1")
			}
		}
	}
	if !cleared {
		t.Fatalf("expected round cleared event")
	}
	if game.LastPlayedCombination.Type != domain.Invalid {
		t.Fatalf("table should be clear, got %+v", game.LastPlayedCombination)
	}
	if game.Players["u2"].HasPassed {
		t.Fatalf("passes should reset on a new round")
	}
	if game.CurrentTurn != "u1" {
		t.Fatalf("turn = %q, want u1", game.CurrentTurn)
	}
}

func TestFourPlayerRoundRotation(t *testing.T) {
	game := &domain.Game{
		Phase:        domain.PhasePlaying,
		Players:      map[string]*domain.Player{},
		LastPlaySeat: -1,
		CurrentTurn:  "u0",
	}
	for seat, id := range []string{"u0", "u1", "u2", "u3"} {
		game.Players[id] = &domain.Player{UserID: id, Seat: seat, Hand: []domain.Card{
			{Rank: int32(seat), Suit: 0}, {Rank: int32(seat), Suit: 1},
		}}
	}
	svc := NewService(rand.New(rand.NewSource(1)))

	if _, err := svc.PlayCards(game, "u0", []domain.Card{{Rank: 0, Suit: 0}}); err != nil {
		t.Fatalf("lead error: %v", err)
	}
	if _, err := svc.PlayCards(game, "u1", []domain.Card{{Rank: 1, Suit: 0}}); err != nil {
		t.Fatalf("u1 beat error: %v", err)
	}
	if _, err := svc.PassTurn(game, "u2"); err != nil {
		t.Fatalf("u2 pass error: %v", err)
	}
	if _, err := svc.PlayCards(game, "u3", []domain.Card{{Rank: 3, Suit: 0}}); err != nil {
		t.Fatalf("u3 beat error: %v", err)
	}

	// u0 passes; u1 is the only unpassed player left besides... u1 already
	// played but can still answer. Turn order skips the passed u2.
	if game.CurrentTurn != "u0" {
		t.Fatalf("turn = %q, want u0", game.CurrentTurn)
	}
	if _, err := svc.PassTurn(game, "u0"); err != nil {
		t.Fatalf("u0 pass error: %v", err)
	}
	if game.CurrentTurn != "u1" {
		t.Fatalf("turn = %q, want u1 (u2 passed)", game.CurrentTurn)
	}

	// u1 passes too; round clears back to u3.
	if _, err := svc.PassTurn(game, "u1"); err != nil {
		t.Fatalf("u1 pass error: %v", err)
	}
	if game.CurrentTurn != "u3" {
		t.Fatalf("turn = %q, want u3 as round winner", game.CurrentTurn)
	}
	if game.LastPlayedCombination.Type != domain.Invalid {
		t.Fatalf("table should be clear for the new round")
	}
}

func TestFinishAndGameEnd(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	game := twoPlayerGame()
	game.Players["u1"].Hand = []domain.Card{{Rank: 0, Suit: 0}}

	evs, err := svc.PlayCards(game, "u1", []domain.Card{{Rank: 0, Suit: 0}})
	if err != nil {
		t.Fatalf("play error: %v", err)
	}

	if !game.Players["u1"].Finished {
		t.Fatalf("u1 should be finished")
	}
	if game.Phase != domain.PhaseEnded {
		t.Fatalf("game should end when one player holds cards")
	}
	if len(game.FinishOrder) != 2 || game.FinishOrder[0] != "u1" || game.FinishOrder[1] != "u2" {
		t.Fatalf("finish order = %v", game.FinishOrder)
	}

	foundEnd := false
	for _, ev := range evs {
		if ev.Kind == EventGameEnded {
			foundEnd = true
		}
	}
	if !foundEnd {
		t.Fatalf("expected game ended event")
	}
}

func TestFinisherCombinationStaysOnTable(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	game := &domain.Game{
		Phase:        domain.PhasePlaying,
		Players:      map[string]*domain.Player{},
		LastPlaySeat: -1,
		CurrentTurn:  "u0",
	}
	for seat, id := range []string{"u0", "u1", "u2"} {
		game.Players[id] = &domain.Player{UserID: id, Seat: seat, Hand: []domain.Card{
			{Rank: int32(seat + 1), Suit: 0}, {Rank: int32(seat + 1), Suit: 1},
		}}
	}
	game.Players["u0"].Hand = game.Players["u0"].Hand[:1]

	if _, err := svc.PlayCards(game, "u0", []domain.Card{{Rank: 1, Suit: 0}}); err != nil {
		t.Fatalf("play error: %v", err)
	}

	if !game.Players["u0"].Finished {
		t.Fatalf("u0 should be finished")
	}
	if game.Phase != domain.PhasePlaying {
		t.Fatalf("two players still hold cards; game must continue")
	}
	if game.LastPlayedCombination.Type != domain.Single {
		t.Fatalf("the finisher's single must stay on the table")
	}
	if game.CurrentTurn != "u1" {
		t.Fatalf("turn = %q, want u1", game.CurrentTurn)
	}
}

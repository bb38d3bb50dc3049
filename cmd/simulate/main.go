package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"thirteen/internal/app"
	"thirteen/internal/bot"
	"thirteen/internal/config"
	"thirteen/internal/domain"
)

type CLI struct {
	Config  string `default:"simulate.hcl" help:"HCL configuration file"`
	Matches int    `default:"0" help:"Number of matches (overrides config)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

// maxTurnsPerMatch bounds a match against strategy deadlock.
const maxTurnsPerMatch = 2000

type seatAgent struct {
	name  string
	level bot.BotLevel
	brain bot.Brain
	seat  int

	wins        int
	finishSlots int // sum of finish positions, 1-based
	matches     int
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("simulate"),
		kong.Description("Pit bot tiers against each other over repeated matches"),
		kong.UsageOnError(),
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("config load failed", "err", err)
	}
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else if lvl, err := log.ParseLevel(cfg.Simulation.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	if cli.Matches > 0 {
		cfg.Simulation.Matches = cli.Matches
	}
	if cli.Seed != 0 {
		cfg.Simulation.Seed = cli.Seed
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("config invalid", "err", err)
	}

	bot.DefaultTuning = cfg.BotTuning()

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("starting simulation",
		"matches", cfg.Simulation.Matches,
		"seats", len(cfg.Seats),
		"seed", seed)

	agents := make([]*seatAgent, 0, len(cfg.Seats))
	for seat, sc := range cfg.Seats {
		lvl, err := bot.ParseBotLevel(sc.Level)
		if err != nil {
			logger.Fatal("bad seat level", "seat", sc.Name, "err", err)
		}
		agents = append(agents, &seatAgent{name: sc.Name, level: lvl, seat: seat})
	}

	svc := app.NewService(rng)
	for i := 0; i < cfg.Simulation.Matches; i++ {
		if err := runMatch(svc, agents, logger); err != nil {
			logger.Error("match aborted", "match", i, "err", err)
		}
	}

	printResults(agents, cfg.Simulation.Matches)
}

func runMatch(svc *app.Service, agents []*seatAgent, logger *log.Logger) error {
	ids := make([]string, len(agents))
	byID := make(map[string]*seatAgent, len(agents))
	for i, a := range agents {
		// Fresh brains each match; the tactician's ledger must not leak
		// between deals.
		brain, err := bot.NewBrain(a.level)
		if err != nil {
			return err
		}
		a.brain = brain
		ids[i] = fmt.Sprintf("seat-%d-%s", i, a.name)
		byID[ids[i]] = a
	}

	game, events, err := svc.StartGame(ids)
	if err != nil {
		return err
	}
	dispatch(events, game, agents, byID)

	for turns := 0; game.Phase == domain.PhasePlaying; turns++ {
		if turns >= maxTurnsPerMatch {
			return fmt.Errorf("match exceeded %d turns", maxTurnsPerMatch)
		}

		actorID := game.CurrentTurn
		agent := byID[actorID]
		player := game.Players[actorID]

		move, err := agent.brain.CalculateMove(game, player)
		if err != nil {
			logger.Debug("brain error, passing", "seat", agent.name, "err", err)
			move = bot.Move{Pass: true}
		}

		var evs []app.Event
		if move.Pass {
			evs, err = svc.PassTurn(game, actorID)
			if err == app.ErrMustLead {
				// A leader cannot pass; shed the lowest card.
				evs, err = svc.PlayCards(game, actorID, player.Hand[:1])
			}
		} else {
			evs, err = svc.PlayCards(game, actorID, move.Cards)
			if err != nil {
				logger.Debug("illegal play, passing", "seat", agent.name, "err", err)
				evs, err = svc.PassTurn(game, actorID)
				if err == app.ErrMustLead {
					evs, err = svc.PlayCards(game, actorID, player.Hand[:1])
				}
			}
		}
		if err != nil {
			return err
		}
		dispatch(evs, game, agents, byID)
	}

	for slot, userID := range game.FinishOrder {
		a := byID[userID]
		a.matches++
		a.finishSlots += slot + 1
		if slot == 0 {
			a.wins++
		}
	}
	return nil
}

// dispatch translates app events into the bot event vocabulary and fans them
// out to every brain.
func dispatch(events []app.Event, game *domain.Game, agents []*seatAgent, byID map[string]*seatAgent) {
	for _, ev := range events {
		switch payload := ev.Payload.(type) {
		case app.HandDealtPayload:
			if a, ok := byID[payload.UserID]; ok {
				a.brain.OnEvent(bot.GameStartedEvent{Seat: a.seat, Hand: payload.Hand})
			}
		case app.CardPlayedPayload:
			seat := seatOf(game, payload.UserID)
			for _, a := range agents {
				a.brain.OnEvent(bot.CardsPlayedEvent{Seat: seat, Cards: payload.Cards})
			}
		case app.TurnPassedPayload:
			seat := seatOf(game, payload.UserID)
			for _, a := range agents {
				a.brain.OnEvent(bot.TurnPassedEvent{Seat: seat})
			}
		case app.RoundClearedPayload:
			seat := seatOf(game, payload.LeadUserID)
			for _, a := range agents {
				a.brain.OnEvent(bot.RoundClearedEvent{LeadSeat: seat})
			}
		}
	}
}

func seatOf(game *domain.Game, userID string) int {
	if p, ok := game.Players[userID]; ok {
		return p.Seat
	}
	return -1
}

func printResults(agents []*seatAgent, matches int) {
	fmt.Printf("\nResults over %d matches:\n\n", matches)
	fmt.Printf("%-12s %-10s %8s %8s %12s\n", "SEAT", "TIER", "WINS", "WIN%", "AVG FINISH")
	for _, a := range agents {
		winRate := 0.0
		avgFinish := 0.0
		if a.matches > 0 {
			winRate = float64(a.wins) / float64(a.matches) * 100
			avgFinish = float64(a.finishSlots) / float64(a.matches)
		}
		fmt.Printf("%-12s %-10s %8d %7.1f%% %12.2f\n",
			a.name, a.level, a.wins, winRate, avgFinish)
	}
}

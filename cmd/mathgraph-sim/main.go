package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/mathgraph/assets"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/core"
	"github.com/automoto/mathgraph/persist"
	"github.com/automoto/mathgraph/shared/messages"
	"github.com/yohamta/donburi"
)

func main() {
	configPath := flag.String("config", "", "YAML or TOML config file")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	tps := flag.Int("tps", 0, "Simulation tick rate (0 = config value)")
	rounds := flag.Int("rounds", 3, "Rounds to play before exiting")
	rosterFlag := flag.String("roster", "ada:left,bob:right", "Comma separated name:team bots")
	preset := flag.String("preset", "", "Preset field name (empty = random)")
	think := flag.Duration("think", 0, "Maximum bot thinking time (0 = config value)")
	tty := flag.Bool("tty", false, "Draw the match in the terminal")
	saveStats := flag.Bool("stats", false, "Add the results to the saved statistics")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *tps <= 0 {
		*tps = cfg.C.TPS
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	roster, err := parseRoster(*rosterFlag)
	if err != nil {
		log.Fatalf("Invalid roster: %v", err)
	}

	opts := core.OptionsFromConfig()
	if *preset != "" {
		field, err := assets.LoadPreset(*preset)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
		opts = opts.WithPreset(field)
	}
	if *think > 0 {
		opts.BotMaxDelay = *think
		if opts.BotMinDelay > *think {
			opts.BotMinDelay = *think / 2
		}
	}

	var view *ttyView
	if *tty {
		view, err = newTTYView()
		if err != nil {
			log.Fatalf("Failed to open terminal: %v", err)
		}
		// the screen owns stdout while the match runs
		log.SetOutput(io.Discard)
	}

	world := donburi.NewWorld()
	subscribeLog(world)
	if view != nil {
		view.Subscribe(world)
	}

	match, err := core.NewMatch(world, roster, opts, *seed)
	if err != nil {
		if view != nil {
			view.Close()
		}
		log.Fatalf("Failed to start match: %v", err)
	}

	loop := core.NewGameLoop(match, *tps)
	endTicks := int(math.Ceil(cfg.Match.EndDelay * float64(*tps)))
	waited := 0
	loop.OnTick = func(m *core.Match) {
		if view != nil {
			view.Draw(m)
		}
		if !m.Finished() {
			return
		}
		waited++
		if waited < endTicks {
			return
		}
		waited = 0
		if m.Stats().Rounds >= *rounds {
			loop.Stop()
			return
		}
		if err := m.NewRound(); err != nil {
			log.Printf("Failed to start round: %v", err)
			loop.Stop()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		loop.Stop()
	}()
	if view != nil {
		go view.PollQuit(loop.Stop)
	}

	log.Printf("Simulating %d rounds (seed %d, %d players)", *rounds, *seed, len(roster))
	loop.Run()
	match.Close()

	if view != nil {
		view.Close()
		log.SetOutput(os.Stderr)
	}

	printSummary(os.Stdout, match)

	if *saveStats {
		store, err := persist.Open("mathgraph")
		if err != nil {
			log.Fatalf("Failed to open save data: %v", err)
		}
		if _, err := store.RecordMatch(match.Stats()); err != nil {
			log.Fatalf("Failed to save stats: %v", err)
		}
	}
}

// parseRoster reads "name:team" entries. Every simulated player is a bot.
func parseRoster(s string) ([]core.PlayerSpec, error) {
	var roster []core.PlayerSpec
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, teamName, ok := strings.Cut(entry, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("entry %q is not name:team", entry)
		}
		team, ok := core.ParseTeam(strings.ToLower(teamName))
		if !ok {
			return nil, fmt.Errorf("entry %q: unknown team %q", entry, teamName)
		}
		roster = append(roster, core.PlayerSpec{Name: name, Team: team, Bot: true})
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("no players")
	}
	return roster, nil
}

func subscribeLog(w donburi.World) {
	messages.SubscribeTurns(w, func(w donburi.World, e messages.TurnEvent) {
		if end, ok := e.(messages.GameEnd); ok {
			if end.WinningTeam < 0 {
				log.Println("Round drawn")
				return
			}
			log.Printf("Round won by %s", teamName(end.WinningTeam))
		}
	})
}

func teamName(team int) string {
	if team == 0 {
		return "left"
	}
	return "right"
}

func printSummary(w io.Writer, m *core.Match) {
	stats := m.Stats()
	fmt.Fprintf(w, "rounds %d  left %d  right %d  draws %d\n",
		stats.Rounds, stats.TeamWins[0], stats.TeamWins[1], stats.Draws)
	for _, s := range stats.Scores {
		fmt.Fprintf(w, "  %-12s %-5s kills %d  deaths %d  shots %d\n",
			s.Name, teamName(s.Team), s.Kills, s.Deaths, s.Shots)
	}
}

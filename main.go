package main

import (
	"flag"
	"fmt"
	"loa/agent"
	"loa/engine"
	"loa/experiments"
	"loa/game"
	"loa/meta"
	"loa/searcher"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	white      string
	black      string
	depth      int
	moveLimit  int
	seed       uint64
	experiment bool
	games      int
	outDir     string
	logLevel   string
}

func main() {
	cfg := parseFlags()

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", cfg.logLevel)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if cfg.experiment {
		if err := experiments.RunDepthExperiment(cfg.outDir, cfg.games, cfg.moveLimit); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := play(cfg); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.white, "white", "human", "White player: machine, human or random")
	flag.StringVar(&cfg.black, "black", "machine", "Black player: machine, human or random")
	flag.IntVar(&cfg.depth, "depth", meta.DEFAULT_DEPTH, "Search depth of machine players")
	flag.IntVar(&cfg.moveLimit, "limit", meta.DEFAULT_MOVE_LIMIT, "Moves per side before the game is drawn")
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "Seed for random players")
	flag.BoolVar(&cfg.experiment, "experiment", false, "Run the depth experiment instead of a game")
	flag.IntVar(&cfg.games, "games", meta.NUM_GAMES, "Games per experiment match up")
	flag.StringVar(&cfg.outDir, "out", "experiments", "Directory for experiment results")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	return cfg
}

func play(cfg config) error {
	board := game.NewBoard()
	if err := board.SetMoveLimit(cfg.moveLimit); err != nil {
		return err
	}

	white, err := newAgent(cfg.white, cfg, cfg.seed)
	if err != nil {
		return err
	}
	black, err := newAgent(cfg.black, cfg, cfg.seed+1)
	if err != nil {
		return err
	}

	result, err := engine.NewLocalEngine(board, white, black).Run()
	if err != nil {
		return err
	}

	fmt.Println(board)
	switch {
	case !result.Finished:
		fmt.Println("Game stopped without a result.")
	case result.Winner == game.Empty:
		fmt.Println("Tie game.")
	default:
		fmt.Printf("%s wins.\n", result.Winner.FullName())
	}
	return nil
}

func newAgent(kind string, cfg config, seed uint64) (agent.Agent, error) {
	switch kind {
	case "machine":
		return agent.NewMachineAgent(searcher.NewSearcher(searcher.WithDepth(cfg.depth), searcher.WithMetrics())), nil
	case "human":
		return agent.NewHumanAgent(os.Stdin, os.Stdout), nil
	case "random":
		return agent.NewRandomAgent(seed), nil
	}
	return nil, fmt.Errorf("unknown player kind %q", kind)
}

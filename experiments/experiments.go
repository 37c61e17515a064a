package experiments

import (
	"fmt"
	"loa/agent"
	"loa/engine"
	"loa/experiments/metrics"
	"loa/game"
	"loa/searcher"

	"github.com/rs/zerolog/log"
)

const (
	KindMachine = "machine"
	KindRandom  = "random"
)

var baseline = metrics.AgentConfig{ID: 0, Kind: KindRandom, Seed: 1}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: KindMachine, Depth: 1},
	{ID: 2, Kind: KindMachine, Depth: 2},
	{ID: 3, Kind: KindMachine, Depth: 3},
}

// RunDepthExperiment pairs machine agents of increasing depth against the random baseline.
func RunDepthExperiment(root string, numGames, moveLimit int) error {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Run(root, "depth", append([]metrics.AgentConfig{baseline}, depthConfigs...), matchUps, numGames, moveLimit)
}

// Run plays numGames games per match up, alternating colors between games,
// and stores configs, game records and move records under root.
func Run(root, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, numGames, moveLimit int) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < numGames; i++ {
			white, black := matchUp[0], matchUp[1]
			if i%2 == 1 {
				white, black = black, white
			}
			count++

			result, err := runGame(white, black, moveLimit, count)
			if err != nil {
				return fmt.Errorf("game %d of matchup %d: %w", i+1, mi+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, result.Game.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}

func runGame(white, black metrics.AgentConfig, moveLimit, gameID int) (engine.Result, error) {
	board := game.NewBoard()
	if moveLimit > 0 {
		if err := board.SetMoveLimit(moveLimit); err != nil {
			return engine.Result{}, err
		}
	}
	e := engine.NewLocalEngine(board, createAgent(white, gameID), createAgent(black, gameID))
	return e.Run()
}

func createAgent(config metrics.AgentConfig, gameID int) agent.Agent {
	if config.Kind == KindRandom {
		return agent.NewRandomAgent(config.Seed + uint64(gameID))
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	return agent.NewMachineAgent(searcher.NewSearcher(options...))
}

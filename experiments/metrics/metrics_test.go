package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counting", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, true)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()

		got := c.Complete(42)

		require.Equal(t, 3, got.Depth)
		require.True(t, got.Pruning)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Leaves)
		require.Equal(t, 1, got.Cutoffs)
		require.Equal(t, 42, got.Score)
	})

	t.Run("start resets counts", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, false)
		c.AddNode()
		c.Start(2, false)

		require.Equal(t, 0, c.Complete(0).Nodes)
	})

	t.Run("dummy", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, true)
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete(7))
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 0, Kind: "random", Seed: 7},
		{ID: 1, Kind: "machine", Depth: 2},
	}))
	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "kind", "depth", "seed"},
		{"0", "random", "0", "7"},
		{"1", "machine", "2", "0"},
	}, rows)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, White: 1, Black: 0,
		GameMetric: GameMetric{
			StartingPlayer: "black",
			Winner:         "white",
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     17,
		},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "0", "black", "white", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "17"}, rows[1])

	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{
			Step:         1,
			Player:       "black",
			Move:         "b1-b3",
			SearchMetric: SearchMetric{Depth: 3, Pruning: true, Nodes: 10, Leaves: 8, Cutoffs: 2, Score: -5},
		},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "black", "b1-b3", "3", "true", "0s", "10", "8", "2", "-5"}, rows[1])
}

package metrics

import (
	"time"
)

type AgentConfig struct {
	ID    int
	Kind  string // "machine" or "random"
	Depth int    // Search depth for machine agents, 0 for the default
	Seed  uint64 // Random source seed for random agents
}

type SearchMetric struct {
	Depth    int
	Pruning  bool
	Duration time.Duration
	Nodes    int // Positions visited, root included
	Leaves   int // Positions scored statically or as terminal
	Cutoffs  int // Move lists abandoned by alpha-beta
	Score    int
}

type MoveMetric struct {
	Step   int
	Player string // Side that moved
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Side name, "empty" for a draw, "" if unfinished
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers search statistics. The search is sequential, so
// implementations are not safe for concurrent use.
type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete(score int) SearchMetric
}

type collector struct {
	depth     int
	pruning   bool
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	*m = collector{depth: depth, pruning: pruning, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Pruning:  m.pruning,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
		Score:    score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool)   {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{} }

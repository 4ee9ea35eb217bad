package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	maxPanels     = 10000
	panelIdleTime = 30 * time.Minute
)

// generations tracks the latest fetch started by each panel. A fetch is stale once
// a newer one for the same panel has begun.
type generations struct {
	mu     sync.Mutex
	seq    uint64
	latest *expirable.LRU[string, uint64]
}

func newGenerations() *generations {
	return &generations{
		latest: expirable.NewLRU[string, uint64](maxPanels, nil, panelIdleTime),
	}
}

// begin records a new fetch for key and returns its generation. Generations are
// drawn from one sequence so they never repeat after an eviction.
func (g *generations) begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	g.latest.Add(key, g.seq)
	return g.seq
}

// current reports whether gen is still the newest fetch for key.
func (g *generations) current(key string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	latest, ok := g.latest.Get(key)
	return !ok || latest == gen
}

package cues

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultFallback is played when a directory entry has no cue of its own
const DefaultFallback = "Random_Curler.mp4"

// Picker chooses a fallback entry cue at random
type Picker struct {
	mu     sync.Mutex
	random *rand.Rand
	pool   []string
}

// Config for the fallback cue picker
type Config struct {
	// Optional seed for testing
	Seed int64

	// Pool of fallback cue references; DefaultFallback when empty
	Pool []string
}

// New creates a new cue picker
func New(cfg *Config) *Picker {
	var seed int64
	var pool []string
	if cfg != nil {
		seed = cfg.Seed
		pool = append(pool, cfg.Pool...)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if len(pool) == 0 {
		pool = []string{DefaultFallback}
	}

	return &Picker{
		random: rand.New(rand.NewSource(seed)),
		pool:   pool,
	}
}

// Pick returns one cue reference from the pool
func (p *Picker) Pick() string {
	return p.pool[p.Intn(len(p.pool))]
}

// Resolve returns ref unless it is empty, in which case a fallback is picked
func (p *Picker) Resolve(ref string) string {
	if ref != "" {
		return ref
	}
	return p.Pick()
}

// Intn returns a number in [0, n); n below 1 yields 0
func (p *Picker) Intn(n int) int {
	if n < 1 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.random.Intn(n)
}

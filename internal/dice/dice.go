package dice

import (
	"math/rand"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/moundworks/diceball/internal/dice Roller

// Roller is the source of randomness for move resolution: a pair of
// six-sided dice plus a uniform draw for weighted outcome selection.
type Roller interface {
	// RollPair rolls two six-sided dice
	RollPair() (int, int)

	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}

// Config for the dice roller
type Config struct {
	// Seed pins the random sequence for reproducible simulation. An
	// empty seed selects a non-deterministic source.
	Seed string
}

// roller implements Roller over a single rand.Rand. The mutex makes it
// safe to share one roller across sessions.
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a roller. With an empty seed the sequence is
// time-seeded; otherwise the seed string is hashed so any label
// ("replay-42", a session ID) selects a stable sequence.
func New(cfg *Config) *roller {
	var seed int64
	if cfg != nil && cfg.Seed != "" {
		seed = int64(xxhash.Sum64String(cfg.Seed))
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// RollPair rolls two six-sided dice.
func (r *roller) RollPair() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(6) + 1, r.random.Intn(6) + 1
}

// Float64 returns a uniform value in [0, 1).
func (r *roller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

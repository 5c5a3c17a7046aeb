package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/gkha/league/internal/dice Roller

// Roller is the randomness source for the simulator. Every game
// outcome, event, injury and suspension draws through it so a seeded
// roller reproduces a full season.
type Roller interface {
	// Roll generates a dice roll with the specified number of sides
	Roll(sides int) int

	// Intn returns a value in [0, n)
	Intn(n int) int

	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultRoller implements Roller on math/rand
type DefaultRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *DefaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &DefaultRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *DefaultRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Intn returns a random value in [0, n)
func (r *DefaultRoller) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}

// Float64 returns a random value in [0.0, 1.0)
func (r *DefaultRoller) Float64() float64 {
	return r.random.Float64()
}

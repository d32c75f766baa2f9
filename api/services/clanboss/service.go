package clanboss

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultActions is used when the request doesn't set a action count.
	DefaultActions = 50
	// MaxActions bounds the simulation size per request.
	MaxActions = 500
)

// ClanBossService runs the encounter simulations. Stateless, every call
// produces a fresh independent result.
type ClanBossService struct {
	// newRng builds the random source per estimation. Swapped on tests
	// for a seeded one.
	newRng func() *rand.Rand
}

// NewClanBossService creates a clan boss service.
func NewClanBossService() *ClanBossService {
	return &ClanBossService{}
}

// TurnOrder simulates the action sequence for the given team and difficulty.
func (cs *ClanBossService) TurnOrder(slots []Slot, difficultyName string, totalActions int) ([]TurnEntry, error) {
	difficulty, ok := DifficultyByName(difficultyName)
	if !ok {
		return nil, fmt.Errorf("unknown clan boss difficulty %q", difficultyName)
	}

	return SimulateTurnOrder(slots, difficulty.Speed, clampActions(totalActions))
}

// Estimate runs the damage estimation for the given team and difficulty.
func (cs *ClanBossService) Estimate(slots []Slot, difficultyName string, totalActions int) (*Estimate, error) {
	difficulty, ok := DifficultyByName(difficultyName)
	if !ok {
		return nil, fmt.Errorf("unknown clan boss difficulty %q", difficultyName)
	}

	var rng *rand.Rand
	if cs.newRng != nil {
		rng = cs.newRng()
	}

	return EstimateDamage(slots, difficulty, clampActions(totalActions), rng)
}

// clampActions applies the default and the upper bound.
func clampActions(totalActions int) int {
	if totalActions <= 0 {
		return DefaultActions
	}
	if totalActions > MaxActions {
		return MaxActions
	}
	return totalActions
}

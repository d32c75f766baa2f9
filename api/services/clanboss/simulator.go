// Package clanboss simulates the discrete turn order of a clan boss
// encounter with the speed bar accumulation model, and estimates the
// cumulative damage including the poison mechanic.
package clanboss

import (
	"fmt"
	"math"
	"math/rand"
	"raidbook/pkg/messages"
	"sort"
	"time"
)

// The turn meter threshold to take a action.
const actionThreshold = 1000

// Poison ticks for 2.5% of the boss max HP per boss turn.
const poisonTickFraction = 0.025

// Difficulty is a fixed boss difficulty row.
type Difficulty struct {
	Name  string  `json:"name"`
	Speed int     `json:"speed"`
	HP    float64 `json:"hp"`
}

// Difficulties lists the boss difficulties, easiest first.
var Difficulties = []Difficulty{
	{Name: "Normal", Speed: 130, HP: 7_500_000},
	{Name: "Hard", Speed: 150, HP: 18_000_000},
	{Name: "Brutal", Speed: 160, HP: 35_000_000},
	{Name: "Nightmare", Speed: 170, HP: 50_000_000},
	{Name: "Ultra-Nightmare", Speed: 190, HP: 75_000_000},
}

// DifficultyByName resolves a difficulty row.
func DifficultyByName(name string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Slot is one team member of the encounter.
type Slot struct {
	Name         string  `json:"name"`
	Speed        int     `json:"speed"`
	Role         string  `json:"role"`
	DamagePerHit float64 `json:"damage_per_hit"`
	HitsPerTurn  int     `json:"hits_per_turn"`
	PoisonChance float64 `json:"poison_chance"` // 0-100
	PoisonCount  int     `json:"poison_count"`  // stacks per proc
}

// TurnEntry is one action of the simulated sequence.
type TurnEntry struct {
	Turn      int    `json:"turn"`
	Actor     string `json:"actor"`
	SlotIndex int    `json:"slot_index"` // -1 for the boss
	IsBoss    bool   `json:"is_boss"`
}

// SlotDamage is the damage attributed to one slot.
type SlotDamage struct {
	Name         string  `json:"name"`
	DirectDamage float64 `json:"direct_damage"`
	PoisonDamage float64 `json:"poison_damage"`
	Total        float64 `json:"total"`
}

// Estimate is the result of a damage estimation run.
type Estimate struct {
	TotalDamage   float64      `json:"total_damage"`
	PerSlot       []SlotDamage `json:"per_slot"`
	BossTurns     int          `json:"boss_turns"`
	EstimatedKeys int          `json:"estimated_keys"`
	Turns         []TurnEntry  `json:"turns"`
}

// Internal per entity simulation state.
type entity struct {
	name   string
	speed  int
	meter  int
	index  int
	isBoss bool
}

// SimulateTurnOrder runs the speed bar model until the requested number of
// total actions is reached. Every entity advances its meter by speed per
// tick, the tick count per round is the minimal integer that brings at
// least one entity to the threshold. Acting decrements the meter by exactly
// the threshold, carrying the remainder so fractional speed advantage
// persists across turns.
func SimulateTurnOrder(slots []Slot, bossSpeed int, totalActions int) ([]TurnEntry, error) {
	if bossSpeed <= 0 {
		return nil, fmt.Errorf("boss has a non positive speed %d", bossSpeed)
	}
	for _, s := range slots {
		// A non positive speed would never fill the meter and stall the
		// simulation, so it is a precondition violation.
		if s.Speed <= 0 {
			return nil, fmt.Errorf(messages.InvalidSlotSpeed, s.Name, s.Speed)
		}
	}

	entities := make([]*entity, 0, len(slots)+1)
	for i, s := range slots {
		entities = append(entities, &entity{name: s.Name, speed: s.Speed, index: i})
	}
	entities = append(entities, &entity{name: "Clan Boss", speed: bossSpeed, index: -1, isBoss: true})

	turns := make([]TurnEntry, 0, totalActions)
	actionCount := 0

	for actionCount < totalActions {
		// Minimal ticks until someone reaches the threshold. Zero when a
		// entity kept a full meter from the previous round.
		minTicks := math.MaxInt
		for _, e := range entities {
			need := actionThreshold - e.meter
			ticks := 0
			if need > 0 {
				ticks = (need + e.speed - 1) / e.speed
			}
			if ticks < minTicks {
				minTicks = ticks
			}
		}

		for _, e := range entities {
			e.meter += e.speed * minTicks
		}

		// Everyone at the threshold acts, ordered by meter then speed.
		// Slice order itself is the final deterministic tie break.
		ready := make([]*entity, 0, len(entities))
		for _, e := range entities {
			if e.meter >= actionThreshold {
				ready = append(ready, e)
			}
		}
		sort.SliceStable(ready, func(i, j int) bool {
			if ready[i].meter != ready[j].meter {
				return ready[i].meter > ready[j].meter
			}
			return ready[i].speed > ready[j].speed
		})

		for _, actor := range ready {
			if actionCount >= totalActions {
				break
			}
			turns = append(turns, TurnEntry{
				Turn:      actionCount + 1,
				Actor:     actor.name,
				SlotIndex: actor.index,
				IsBoss:    actor.isBoss,
			})
			actor.meter -= actionThreshold
			actionCount++
		}
	}

	return turns, nil
}

// EstimateDamage walks a simulated turn sequence and accumulates direct and
// poison damage per slot. The poison proc draw is the single stochastic
// part, so the random source is injected to keep tests deterministic. A nil
// rng falls back to a time seeded source.
func EstimateDamage(slots []Slot, difficulty Difficulty, totalActions int, rng *rand.Rand) (*Estimate, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	turns, err := SimulateTurnOrder(slots, difficulty.Speed, totalActions)
	if err != nil {
		return nil, err
	}

	poisonTick := difficulty.HP * poisonTickFraction
	perSlot := make([]SlotDamage, len(slots))
	for i, s := range slots {
		perSlot[i].Name = s.Name
	}

	// Indices of the slot that placed each active poison stack.
	var activePoisonOwners []int
	bossTurns := 0

	for _, turn := range turns {
		if turn.IsBoss {
			bossTurns++
			for _, owner := range activePoisonOwners {
				perSlot[owner].PoisonDamage += poisonTick
			}
			// Simplified duration model: every stack expires after two
			// boss turns, not per stack.
			if bossTurns%2 == 0 {
				activePoisonOwners = activePoisonOwners[:0]
			}
			continue
		}

		slot := slots[turn.SlotIndex]
		perSlot[turn.SlotIndex].DirectDamage += slot.DamagePerHit * float64(slot.HitsPerTurn)

		if slot.PoisonChance > 0 && rng.Float64()*100 < slot.PoisonChance {
			for i := 0; i < slot.PoisonCount; i++ {
				activePoisonOwners = append(activePoisonOwners, turn.SlotIndex)
			}
		}
	}

	var totalDamage float64
	for i := range perSlot {
		perSlot[i].Total = perSlot[i].DirectDamage + perSlot[i].PoisonDamage
		totalDamage += perSlot[i].Total
	}

	// Guard the division so a zero damage team still reports one key.
	estimatedKeys := int(math.Ceil(difficulty.HP / math.Max(totalDamage, 1)))
	if estimatedKeys < 1 {
		estimatedKeys = 1
	}

	return &Estimate{
		TotalDamage:   totalDamage,
		PerSlot:       perSlot,
		BossTurns:     bossTurns,
		EstimatedKeys: estimatedKeys,
		Turns:         turns,
	}, nil
}

package filters

import clanbossservice "raidbook/api/services/clanboss"

// Body of one team slot on the clan boss routes.
type ClanBossSlotParams struct {
	Name         string  `json:"name" binding:"required"`
	Speed        int     `json:"speed" binding:"required"`
	Role         string  `json:"role"`
	DamagePerHit float64 `json:"damage_per_hit" binding:"omitempty,min=0"`
	HitsPerTurn  int     `json:"hits_per_turn" binding:"omitempty,min=0"`
	PoisonChance float64 `json:"poison_chance" binding:"omitempty,min=0,max=100"`
	PoisonCount  int     `json:"poison_count" binding:"omitempty,min=0"`
}

// Body of the clan boss simulation routes.
type ClanBossParams struct {
	Difficulty   string               `json:"difficulty" binding:"required"`
	TotalActions int                  `json:"total_actions" binding:"omitempty,min=1"`
	Slots        []ClanBossSlotParams `json:"slots" binding:"required,min=1,max=5,dive"`
}

// AsSlots converts the request slots to the service type.
func (p *ClanBossParams) AsSlots() []clanbossservice.Slot {
	slots := make([]clanbossservice.Slot, 0, len(p.Slots))
	for _, s := range p.Slots {
		hits := s.HitsPerTurn
		if hits == 0 {
			hits = 1
		}
		slots = append(slots, clanbossservice.Slot{
			Name:         s.Name,
			Speed:        s.Speed,
			Role:         s.Role,
			DamagePerHit: s.DamagePerHit,
			HitsPerTurn:  hits,
			PoisonChance: s.PoisonChance,
			PoisonCount:  s.PoisonCount,
		})
	}
	return slots
}

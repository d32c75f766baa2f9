package models

import (
	"time"

	"gorm.io/datatypes"
)

// GuideEntry is the stored form of a synthesized build guide.
// One champion has a General entry plus zero or more content area entries.
type GuideEntry struct {
	ID uint `gorm:"primaryKey"`

	ChampionSlug string         `gorm:"type:varchar(120);index:idx_guide_slug_area,priority:1"`
	Champion     ChampionRecord `gorm:"foreignKey:ChampionSlug"`

	ContentArea string `gorm:"type:varchar(40);index:idx_guide_slug_area,priority:2"`

	// The full guide payload, including the mechanical fields.
	Guide datatypes.JSON `gorm:"type:jsonb"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChampionRecord is the stored form of the canonical champion catalog.
// Stats, skills and ratings are kept as JSONB since they are only ever
// read back whole.
type ChampionRecord struct {
	Slug      string `gorm:"primaryKey;type:varchar(120)"`
	Name      string `gorm:"type:varchar(120);index"`
	Faction   string `gorm:"type:varchar(60)"`
	Affinity  string `gorm:"type:affinity_type"`
	Rarity    string `gorm:"type:rarity_type"`
	Role      string `gorm:"type:role_type"`
	AvatarURL string

	Stats   datatypes.JSON `gorm:"type:jsonb"`
	Skills  datatypes.JSON `gorm:"type:jsonb"`
	Ratings datatypes.JSON `gorm:"type:jsonb"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

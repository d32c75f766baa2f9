package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"raidbook/pkg/database/models"
	"raidbook/pkg/models/guide"

	"gorm.io/gorm"
)

// GuideRepository is the read side of the stored guides.
type GuideRepository interface {
	GetForChampion(ctx context.Context, slug string) ([]guide.ChampionGuide, error)
}

// guideRepository is the repository instance.
type guideRepository struct {
	db *gorm.DB
}

// NewGuideRepository creates a new repository and return it.
func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{db: db}
}

// GetForChampion returns the guides of a champion, General first.
// A champion without guides returns a empty slice, not a error.
func (gr *guideRepository) GetForChampion(ctx context.Context, slug string) ([]guide.ChampionGuide, error) {
	var entries []models.GuideEntry
	if err := gr.db.WithContext(ctx).Where("champion_slug = ?", slug).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}

	guides := make([]guide.ChampionGuide, 0, len(entries))
	for i := range entries {
		var g guide.ChampionGuide
		if err := json.Unmarshal(entries[i].Guide, &g); err != nil {
			return nil, fmt.Errorf("couldn't deserialize guide %d: %w", entries[i].ID, err)
		}
		guides = append(guides, g)
	}
	return guides, nil
}

package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"raidbook/pkg/database/models"
	"raidbook/pkg/models/champion"

	"gorm.io/gorm"
)

// ChampionRepository is the read side of the stored catalog.
type ChampionRepository interface {
	GetAll(ctx context.Context) ([]*champion.Champion, error)
	GetBySlug(ctx context.Context, slug string) (*champion.Champion, error)
}

// championRepository is the repository instance.
type championRepository struct {
	db *gorm.DB
}

// NewChampionRepository creates a new repository and return it.
func NewChampionRepository(db *gorm.DB) ChampionRepository {
	return &championRepository{db: db}
}

// GetAll returns the whole catalog ordered by slug.
func (cr *championRepository) GetAll(ctx context.Context) ([]*champion.Champion, error) {
	var records []models.ChampionRecord
	if err := cr.db.WithContext(ctx).Order("slug").Find(&records).Error; err != nil {
		return nil, err
	}

	champions := make([]*champion.Champion, 0, len(records))
	for i := range records {
		champ, err := championFromRecord(&records[i])
		if err != nil {
			return nil, fmt.Errorf("couldn't deserialize champion %s: %w", records[i].Slug, err)
		}
		champions = append(champions, champ)
	}
	return champions, nil
}

// GetBySlug returns a single champion or gorm.ErrRecordNotFound.
func (cr *championRepository) GetBySlug(ctx context.Context, slug string) (*champion.Champion, error) {
	var record models.ChampionRecord
	if err := cr.db.WithContext(ctx).First(&record, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return championFromRecord(&record)
}

// championFromRecord converts a stored record back to the domain champion.
func championFromRecord(record *models.ChampionRecord) (*champion.Champion, error) {
	champ := &champion.Champion{
		ID:        record.Slug,
		Name:      record.Name,
		Slug:      record.Slug,
		Faction:   record.Faction,
		Affinity:  record.Affinity,
		Rarity:    record.Rarity,
		Role:      record.Role,
		AvatarURL: record.AvatarURL,
	}

	if len(record.Stats) > 0 {
		if err := json.Unmarshal(record.Stats, &champ.Stats); err != nil {
			return nil, err
		}
	}
	if len(record.Skills) > 0 {
		if err := json.Unmarshal(record.Skills, &champ.Skills); err != nil {
			return nil, err
		}
	}
	if len(record.Ratings) > 0 {
		if err := json.Unmarshal(record.Ratings, &champ.Ratings); err != nil {
			return nil, err
		}
	}

	return champ, nil
}

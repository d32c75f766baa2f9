package repositories

import (
	"encoding/json"
	"fmt"

	"raidbook/pkg/database"
	"raidbook/pkg/database/models"
	"raidbook/pkg/models/guide"

	"gorm.io/gorm"
)

// GuideRepository is the public interface for the stored guides.
type GuideRepository interface {
	ReplaceForChampion(slug string, guides []guide.ChampionGuide) error
	GetForChampion(slug string) ([]guide.ChampionGuide, error)
	GetAll() (map[string][]guide.ChampionGuide, error)
}

// guideRepository is the repository instance.
type guideRepository struct {
	db *gorm.DB
}

// NewGuideRepository creates a new repository and return it.
func NewGuideRepository() (GuideRepository, error) {
	db, err := database.GetConnection()
	if err != nil {
		return nil, fmt.Errorf("couldn't get database connection: %w", err)
	}
	return &guideRepository{db: db}, nil
}

// NewGuideRepositoryWithDB creates the repository on a explicit connection.
func NewGuideRepositoryWithDB(db *gorm.DB) GuideRepository {
	return &guideRepository{db: db}
}

// ReplaceForChampion swaps the stored guides of a champion for the given
// set, inside a single transaction. Guides are derived data, so a full
// replace is simpler and safer than diffing.
func (gr *guideRepository) ReplaceForChampion(slug string, guides []guide.ChampionGuide) error {
	return gr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("champion_slug = ?", slug).Delete(&models.GuideEntry{}).Error; err != nil {
			return err
		}

		if len(guides) == 0 {
			return nil
		}

		entries := make([]models.GuideEntry, 0, len(guides))
		for i := range guides {
			payload, err := json.Marshal(&guides[i])
			if err != nil {
				return fmt.Errorf("couldn't serialize guide for %s: %w", slug, err)
			}
			entries = append(entries, models.GuideEntry{
				ChampionSlug: slug,
				ContentArea:  guides[i].ContentArea,
				Guide:        payload,
			})
		}

		return tx.Create(&entries).Error
	})
}

// GetForChampion returns the guides of a champion, General first.
// A champion without guides returns a empty slice, not a error.
func (gr *guideRepository) GetForChampion(slug string) ([]guide.ChampionGuide, error) {
	var entries []models.GuideEntry
	if err := gr.db.Where("champion_slug = ?", slug).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entriesToGuides(entries)
}

// GetAll returns every stored guide keyed by champion slug.
// Used by the snapshot writer.
func (gr *guideRepository) GetAll() (map[string][]guide.ChampionGuide, error) {
	var entries []models.GuideEntry
	if err := gr.db.Order("champion_slug, id").Find(&entries).Error; err != nil {
		return nil, err
	}

	all := make(map[string][]guide.ChampionGuide)
	for i := range entries {
		var g guide.ChampionGuide
		if err := json.Unmarshal(entries[i].Guide, &g); err != nil {
			return nil, fmt.Errorf("couldn't deserialize guide %d: %w", entries[i].ID, err)
		}
		all[entries[i].ChampionSlug] = append(all[entries[i].ChampionSlug], g)
	}
	return all, nil
}

func entriesToGuides(entries []models.GuideEntry) ([]guide.ChampionGuide, error) {
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

package repositories

import (
	"encoding/json"
	"fmt"

	"raidbook/pkg/database"
	"raidbook/pkg/database/models"
	"raidbook/pkg/models/champion"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChampionRepository is the public interface for the stored catalog.
type ChampionRepository interface {
	UpsertBatch(champions []*champion.Champion) error
	GetAll() ([]*champion.Champion, error)
	GetBySlug(slug string) (*champion.Champion, error)
}

// championRepository is the repository instance.
type championRepository struct {
	db *gorm.DB
}

// NewChampionRepository creates a new repository and return it.
func NewChampionRepository() (ChampionRepository, error) {
	db, err := database.GetConnection()
	if err != nil {
		return nil, fmt.Errorf("couldn't get database connection: %w", err)
	}
	return &championRepository{db: db}, nil
}

// NewChampionRepositoryWithDB creates the repository on a explicit connection.
func NewChampionRepositoryWithDB(db *gorm.DB) ChampionRepository {
	return &championRepository{db: db}
}

// UpsertBatch writes the full catalog, updating records that already exist.
func (cr *championRepository) UpsertBatch(champions []*champion.Champion) error {
	if len(champions) == 0 {
		return nil
	}

	records := make([]models.ChampionRecord, 0, len(champions))
	for _, champ := range champions {
		record, err := toRecord(champ)
		if err != nil {
			return fmt.Errorf("couldn't serialize champion %s: %w", champ.Slug, err)
		}
		records = append(records, record)
	}

	return cr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).CreateInBatches(&records, 500).Error
}

// GetAll returns the whole catalog.
func (cr *championRepository) GetAll() ([]*champion.Champion, error) {
	var records []models.ChampionRecord
	if err := cr.db.Order("slug").Find(&records).Error; err != nil {
		return nil, err
	}

	champions := make([]*champion.Champion, 0, len(records))
	for i := range records {
		champ, err := fromRecord(&records[i])
		if err != nil {
			return nil, fmt.Errorf("couldn't deserialize champion %s: %w", records[i].Slug, err)
		}
		champions = append(champions, champ)
	}
	return champions, nil
}

// GetBySlug returns a single champion or gorm.ErrRecordNotFound.
func (cr *championRepository) GetBySlug(slug string) (*champion.Champion, error) {
	var record models.ChampionRecord
	if err := cr.db.First(&record, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return fromRecord(&record)
}

// toRecord converts the domain champion to its stored form.
func toRecord(champ *champion.Champion) (models.ChampionRecord, error) {
	stats, err := json.Marshal(champ.Stats)
	if err != nil {
		return models.ChampionRecord{}, err
	}
	skills, err := json.Marshal(champ.Skills)
	if err != nil {
		return models.ChampionRecord{}, err
	}
	ratings, err := json.Marshal(champ.Ratings)
	if err != nil {
		return models.ChampionRecord{}, err
	}

	return models.ChampionRecord{
		Slug:      champ.Slug,
		Name:      champ.Name,
		Faction:   champ.Faction,
		Affinity:  champ.Affinity,
		Rarity:    champ.Rarity,
		Role:      champ.Role,
		AvatarURL: champ.AvatarURL,
		Stats:     stats,
		Skills:    skills,
		Ratings:   ratings,
	}, nil
}

// fromRecord converts a stored record back to the domain champion.
func fromRecord(record *models.ChampionRecord) (*champion.Champion, error) {
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

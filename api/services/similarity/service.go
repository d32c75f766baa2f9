package similarity

import (
	"context"
	"fmt"

	"raidbook/api/cache"
	"raidbook/api/repositories"
	"raidbook/pkg/messages"

	"gorm.io/gorm"
)

// SimilarityService ranks champions against the cached catalog.
type SimilarityService struct {
	catalog            *cache.CatalogCache
	ChampionRepository repositories.ChampionRepository
}

// SimilarityServiceDeps is the dependency list for the similarity service.
type SimilarityServiceDeps struct {
	DB      *gorm.DB
	Catalog *cache.CatalogCache
}

// NewSimilarityService creates a similarity service.
func NewSimilarityService(deps *SimilarityServiceDeps) *SimilarityService {
	return &SimilarityService{
		catalog:            deps.Catalog,
		ChampionRepository: repositories.NewChampionRepository(deps.DB),
	}
}

// GetSimilar ranks the count most similar champions to the given slug.
func (ss *SimilarityService) GetSimilar(ctx context.Context, slug string, count int) ([]Result, error) {
	target, err := ss.catalog.GetChampion(ctx, slug, ss.ChampionRepository)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf(messages.ChampionNotFound+": %w", slug, gorm.ErrRecordNotFound)
	}

	catalog, err := ss.catalog.GetCatalog(ctx, ss.ChampionRepository)
	if err != nil {
		return nil, err
	}

	return Rank(target, catalog, count), nil
}

package handlers

import (
	"errors"
	"net/http"

	"raidbook/api/dto"
	"raidbook/api/filters"
	"raidbook/api/services/similarity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Similarity handler.
type SimilarityHandler struct {
	similarityService *similarity.SimilarityService
}

type SimilarityHandlerDependencies struct {
	SimilarityService *similarity.SimilarityService
}

// Create a new instance of the similarity handler.
func NewSimilarityHandler(deps *SimilarityHandlerDependencies) *SimilarityHandler {
	return &SimilarityHandler{
		similarityService: deps.SimilarityService,
	}
}

// Handler for getting the champions similar to a given one.
func (h *SimilarityHandler) GetSimilar(c *gin.Context) {
	var up filters.ChampionURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.SimilarityQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.similarityService.GetSimilar(c.Request.Context(), up.Slug, qp.Count)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": dto.FromRankResults(results)})
}

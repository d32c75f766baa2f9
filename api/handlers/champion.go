package handlers

import (
	"errors"
	"net/http"

	"raidbook/api/filters"
	championservice "raidbook/api/services/champion"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Champion handler.
type ChampionHandler struct {
	championService *championservice.ChampionService
}

type ChampionHandlerDependencies struct {
	ChampionService *championservice.ChampionService
}

// Create a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		championService: deps.ChampionService,
	}
}

// Handler for listing the whole catalog.
func (h *ChampionHandler) GetChampions(c *gin.Context) {
	result, err := h.championService.GetChampions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Handler for getting a single champion by slug.
func (h *ChampionHandler) GetChampion(c *gin.Context) {
	var up filters.ChampionURIParams

	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.championService.GetChampion(c.Request.Context(), up.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

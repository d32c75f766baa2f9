package handlers

import (
	"net/http"

	"raidbook/api/filters"
	guideservice "raidbook/api/services/guide"

	"github.com/gin-gonic/gin"
)

// Guide handler.
type GuideHandler struct {
	guideService *guideservice.GuideService
}

type GuideHandlerDependencies struct {
	GuideService *guideservice.GuideService
}

// Create a new instance of the guide handler.
func NewGuideHandler(deps *GuideHandlerDependencies) *GuideHandler {
	return &GuideHandler{
		guideService: deps.GuideService,
	}
}

// Handler for getting the guides of a champion.
func (h *GuideHandler) GetGuides(c *gin.Context) {
	var up filters.ChampionURIParams

	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.guideService.GetGuides(c.Request.Context(), up.Slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

package handlers

import (
	"net/http"

	"raidbook/api/filters"
	clanbossservice "raidbook/api/services/clanboss"

	"github.com/gin-gonic/gin"
)

// Clan boss handler.
type ClanBossHandler struct {
	clanBossService *clanbossservice.ClanBossService
}

type ClanBossHandlerDependencies struct {
	ClanBossService *clanbossservice.ClanBossService
}

// Create a new instance of the clan boss handler.
func NewClanBossHandler(deps *ClanBossHandlerDependencies) *ClanBossHandler {
	return &ClanBossHandler{
		clanBossService: deps.ClanBossService,
	}
}

// Handler for simulating the turn order.
func (h *ClanBossHandler) SimulateTurnOrder(c *gin.Context) {
	var params filters.ClanBossParams

	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	turns, err := h.clanBossService.TurnOrder(params.AsSlots(), params.Difficulty, params.TotalActions)
	if err != nil {
		// Any error here is a bad input, the simulation itself can't fail.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": turns})
}

// Handler for estimating the damage of a team.
func (h *ClanBossHandler) EstimateDamage(c *gin.Context) {
	var params filters.ClanBossParams

	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.clanBossService.Estimate(params.AsSlots(), params.Difficulty, params.TotalActions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": estimate})
}

// Handler for listing the difficulties.
func (h *ClanBossHandler) GetDifficulties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": clanbossservice.Difficulties})
}

package routes

import (
	"raidbook/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		case *handlers.GuideHandler:
			r.registerGuideHandler(handler)
		case *handlers.SimilarityHandler:
			r.registerSimilarityHandler(handler)
		case *handlers.ClanBossHandler:
			r.registerClanBossHandler(handler)
		}
	}
}

// Register the champion handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("", handler.GetChampions)
		champions.GET("/:slug", handler.GetChampion)
	}
}

// Register the guide handler.
func (r *Router) registerGuideHandler(handler *handlers.GuideHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("/:slug/guides", handler.GetGuides)
	}
}

// Register the similarity handler.
func (r *Router) registerSimilarityHandler(handler *handlers.SimilarityHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("/:slug/similar", handler.GetSimilar)
	}
}

// Register the clan boss handler.
func (r *Router) registerClanBossHandler(handler *handlers.ClanBossHandler) {
	clanboss := r.api.Group("/clanboss")
	{
		clanboss.GET("/difficulties", handler.GetDifficulties)
		clanboss.POST("/turn-order", handler.SimulateTurnOrder)
		clanboss.POST("/estimate", handler.EstimateDamage)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

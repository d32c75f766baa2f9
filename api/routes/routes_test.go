package routes

import (
	"testing"

	"raidbook/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	championHandler := &handlers.ChampionHandler{}
	guideHandler := &handlers.GuideHandler{}
	similarityHandler := &handlers.SimilarityHandler{}
	clanBossHandler := &handlers.ClanBossHandler{}

	router.SetupRoutes(championHandler, guideHandler, similarityHandler, clanBossHandler)

	routes := router.engine.Routes()

	registered := make(map[string]bool, len(routes))
	for _, route := range routes {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered["GET /api/v1/champions"])
	assert.True(t, registered["GET /api/v1/champions/:slug"])
	assert.True(t, registered["GET /api/v1/champions/:slug/guides"])
	assert.True(t, registered["GET /api/v1/champions/:slug/similar"])
	assert.True(t, registered["GET /api/v1/clanboss/difficulties"])
	assert.True(t, registered["POST /api/v1/clanboss/turn-order"])
	assert.True(t, registered["POST /api/v1/clanboss/estimate"])
}

package modules

import (
	"raidbook/api/handlers"
	clanbossservice "raidbook/api/services/clanboss"
)

func initializeClanBossHandler() *handlers.ClanBossHandler {
	// The clan boss service is stateless, no shared dependencies.
	clanBossHandlerDeps := &handlers.ClanBossHandlerDependencies{
		ClanBossService: clanbossservice.NewClanBossService(),
	}

	return handlers.NewClanBossHandler(clanBossHandlerDeps)
}

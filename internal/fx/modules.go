package fx

import (
	"pubg-tracker/internal/api"
	"pubg-tracker/internal/command"
	"pubg-tracker/internal/config"
	"pubg-tracker/internal/database"
	"pubg-tracker/internal/logger"
	"pubg-tracker/internal/repository"
	"pubg-tracker/internal/server"
	"pubg-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewBindingRepository),
	// api client
	fx.Provide(api.NewClient),
	// svc
	fx.Provide(service.NewMatchStatsService),
	fx.Provide(service.NewPlayerService),
	// command router
	fx.Provide(command.NewRouter),
	// server
	fx.Provide(server.NewTrackerServer),
)

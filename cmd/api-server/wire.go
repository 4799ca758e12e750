//go:build wireinject
// +build wireinject

package main

import (
	"Verity/config"
	"Verity/dao"
	"Verity/dao/cache"
	"Verity/handler"
	"Verity/pkg/client"
	"Verity/pkg/database"
	"Verity/pkg/llm"
	"Verity/pkg/oss"
	"Verity/pkg/server"
	"Verity/service"
	"Verity/socket"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		oss.GetOssClient,
		config.ProvideLLMConfig,
		llm.NewProviders,

		socket.NewHub,
		socket.NewPublisher,
		socket.NewEventSubscribe,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Vote), "*"),
		wire.Struct(new(handler.Analysis), "*"),
		wire.Struct(new(handler.WebSocket), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}

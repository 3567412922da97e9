//go:build wireinject
// +build wireinject

package di

import (
	"AgriChain/pkg/config"
	"AgriChain/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Data and messaging backends
		ProvidePriceStore,
		ProvideWeatherProvider,
		ProvidePublisher,
		ProvideCache,

		// Pipeline and HTTP surface
		ProvideAdvisor,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

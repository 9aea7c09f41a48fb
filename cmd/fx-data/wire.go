//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"fx-data/internal/app"
)

// InitializeApp builds App (Config + Fetcher + savers) via Wire.
// Caller must call a.Fetcher.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideFetcher,
		app.ProvideBarSaver,
		app.ProvideTickSaver,
		wire.Struct(new(App), "Config", "Fetcher", "Bars", "Ticks"),
	)
	return nil, nil
}

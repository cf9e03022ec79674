//go:build wireinject
// +build wireinject

package main

import (
	"time"

	"tv-import/internal/app"
	"tv-import/internal/merge"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Loc    *time.Location
	Merger *merge.Merger
}

// InitializeApp builds App (Config + reference zone + Merger) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideLocation,
		app.ProvideTableStore,
		app.ProvideMerger,
		wire.Struct(new(App), "Config", "Loc", "Merger"),
	)
	return nil, nil
}

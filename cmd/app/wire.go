//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/astriva/astroday/internal/bootstrap"
	"github.com/astriva/astroday/internal/domain/chart"
	"github.com/astriva/astroday/internal/domain/horoscope"
	"github.com/astriva/astroday/internal/infra/config"
	"github.com/astriva/astroday/internal/infra/ephemeris/astroapi"
	httpiface "github.com/astriva/astroday/internal/interface/http"
	"github.com/astriva/astroday/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideEphemerisClient,
		provideUserRepository,
		provideUserSource,
		provideDailyStore,
		provideListProvider,
		chart.NewService,
		horoscope.NewService,
		wire.Bind(new(chart.Ephemeris), new(*astroapi.Client)),
		wire.Bind(new(horoscope.TransitSource), new(*astroapi.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

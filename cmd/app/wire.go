//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"business-days-api/internal/bootstrap"
	"business-days-api/internal/domain/businessday"
	"business-days-api/internal/infra/config"
	"business-days-api/internal/infra/holidays"
	httpiface "business-days-api/internal/interface/http"
	"business-days-api/pkg/logger"
	"business-days-api/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.New,
		provideProfile,
		businessday.NewCalendar,
		provideHolidayClient,
		provideHolidayCache,
		businessday.NewService,
		wire.Bind(new(businessday.HolidayProvider), new(*holidays.Cache)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

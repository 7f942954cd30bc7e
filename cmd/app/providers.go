package main

import (
	"fmt"
	"log/slog"
	"time"

	"business-days-api/internal/domain/businessday"
	"business-days-api/internal/infra/config"
	"business-days-api/internal/infra/holidays"
	"business-days-api/pkg/metrics"
)

func provideProfile(cfg *config.Config) (businessday.Profile, error) {
	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		return businessday.Profile{}, fmt.Errorf("load timezone %q: %w", cfg.Calendar.Timezone, err)
	}
	weekdays := make(map[time.Weekday]bool, len(cfg.Calendar.BusinessWeekdays))
	for _, day := range cfg.Calendar.BusinessWeekdays {
		weekdays[time.Weekday(day)] = true
	}
	return businessday.Profile{
		Location:       loc,
		WorkStartHour:  cfg.Calendar.WorkStartHour,
		LunchStartHour: cfg.Calendar.LunchStartHour,
		LunchEndHour:   cfg.Calendar.LunchEndHour,
		WorkEndHour:    cfg.Calendar.WorkEndHour,
		Weekdays:       weekdays,
		Snap:           businessday.SnapPolicy(cfg.Calendar.SnapPolicy),
	}, nil
}

func provideHolidayClient(cfg *config.Config) *holidays.Client {
	return holidays.NewClient(cfg.Holidays.SourceURL, cfg.Holidays.FetchTimeout)
}

func provideHolidayCache(cfg *config.Config, client *holidays.Client, reg *metrics.Registry, logger *slog.Logger) *holidays.Cache {
	return holidays.NewCache(client, cfg.Holidays.CacheTTL, cfg.Holidays.FetchTimeout, reg, logger)
}

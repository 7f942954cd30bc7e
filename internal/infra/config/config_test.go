package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "America/Bogota", cfg.Calendar.Timezone)
	require.Equal(t, 8, cfg.Calendar.WorkStartHour)
	require.Equal(t, 17, cfg.Calendar.WorkEndHour)
	require.Equal(t, "backward", cfg.Calendar.SnapPolicy)
	require.Equal(t, 24*time.Hour, cfg.Holidays.CacheTTL)
	require.Equal(t, 5*time.Second, cfg.Holidays.FetchTimeout)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty address", mutate: func(c *Config) { c.HTTP.Address = "" }},
		{name: "unknown timezone", mutate: func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" }},
		{name: "work start after lunch start", mutate: func(c *Config) { c.Calendar.WorkStartHour = 13 }},
		{name: "lunch end before lunch start", mutate: func(c *Config) { c.Calendar.LunchEndHour = 11 }},
		{name: "work end past midnight", mutate: func(c *Config) { c.Calendar.WorkEndHour = 25 }},
		{name: "no business weekdays", mutate: func(c *Config) { c.Calendar.BusinessWeekdays = nil }},
		{name: "weekday out of range", mutate: func(c *Config) { c.Calendar.BusinessWeekdays = []int{7} }},
		{name: "unknown snap policy", mutate: func(c *Config) { c.Calendar.SnapPolicy = "sideways" }},
		{name: "empty source url", mutate: func(c *Config) { c.Holidays.SourceURL = "  " }},
		{name: "zero cache ttl", mutate: func(c *Config) { c.Holidays.CacheTTL = 0 }},
		{name: "zero fetch timeout", mutate: func(c *Config) { c.Holidays.FetchTimeout = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
http:
  address: ":9090"
calendar:
  workEndHour: 18
holidays:
  cacheTtl: 1h
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HOLIDAYS_SOURCE_URL", "https://example.com/holidays.json")
	t.Setenv("CALENDAR_SNAP_POLICY", "forward")

	cfg, err := Load()
	require.NoError(t, err)

	// File overrides defaults, env overrides file.
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 18, cfg.Calendar.WorkEndHour)
	require.Equal(t, time.Hour, cfg.Holidays.CacheTTL)
	require.Equal(t, "https://example.com/holidays.json", cfg.Holidays.SourceURL)
	require.Equal(t, "forward", cfg.Calendar.SnapPolicy)

	// Untouched fields keep their defaults.
	require.Equal(t, "America/Bogota", cfg.Calendar.Timezone)
	require.Equal(t, 8, cfg.Calendar.WorkStartHour)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`calendar: {workStartHour: 20}`), 0o644))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err, "hours violating the ordering invariant must fail validation")
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitList("a, b,"))
	require.Empty(t, splitList(" , "))
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Calendar CalendarConfig `yaml:"calendar"`
	Holidays HolidaysConfig `yaml:"holidays"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// CalendarConfig describes the working-hours profile used for every
// computation. Hours are local hours of day in the configured timezone;
// weekdays use Go numbering (0=Sunday .. 6=Saturday).
type CalendarConfig struct {
	Timezone         string `yaml:"timezone"`
	WorkStartHour    int    `yaml:"workStartHour"`
	LunchStartHour   int    `yaml:"lunchStartHour"`
	LunchEndHour     int    `yaml:"lunchEndHour"`
	WorkEndHour      int    `yaml:"workEndHour"`
	BusinessWeekdays []int  `yaml:"businessWeekdays"`
	SnapPolicy       string `yaml:"snapPolicy"`
}

// HolidaysConfig points at the upstream holiday feed and tunes the cache.
type HolidaysConfig struct {
	SourceURL    string        `yaml:"sourceUrl"`
	CacheTTL     time.Duration `yaml:"cacheTtl"`
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_READ_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ReadTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_WRITE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.WriteTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("CALENDAR_TIMEZONE"); v != "" {
		cfg.Calendar.Timezone = v
	}
	if v := os.Getenv("CALENDAR_WORK_START_HOUR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Calendar.WorkStartHour = parsed
		}
	}
	if v := os.Getenv("CALENDAR_LUNCH_START_HOUR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Calendar.LunchStartHour = parsed
		}
	}
	if v := os.Getenv("CALENDAR_LUNCH_END_HOUR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Calendar.LunchEndHour = parsed
		}
	}
	if v := os.Getenv("CALENDAR_WORK_END_HOUR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Calendar.WorkEndHour = parsed
		}
	}
	if v := os.Getenv("CALENDAR_SNAP_POLICY"); v != "" {
		cfg.Calendar.SnapPolicy = v
	}
	if v := os.Getenv("HOLIDAYS_SOURCE_URL"); v != "" {
		cfg.Holidays.SourceURL = v
	}
	if v := os.Getenv("HOLIDAYS_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Holidays.CacheTTL = parsed
		}
	}
	if v := os.Getenv("HOLIDAYS_FETCH_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Holidays.FetchTimeout = parsed
		}
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		Calendar: CalendarConfig{
			Timezone:         "America/Bogota",
			WorkStartHour:    8,
			LunchStartHour:   12,
			LunchEndHour:     13,
			WorkEndHour:      17,
			BusinessWeekdays: []int{1, 2, 3, 4, 5},
			SnapPolicy:       "backward",
		},
		Holidays: HolidaysConfig{
			SourceURL:    "https://content.capta.co/Recruitment/WorkingDays.json",
			CacheTTL:     24 * time.Hour,
			FetchTimeout: 5 * time.Second,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout <= 0 {
		return errors.New("http.readTimeout must be positive")
	}
	if c.HTTP.WriteTimeout <= 0 {
		return errors.New("http.writeTimeout must be positive")
	}
	if strings.TrimSpace(c.Calendar.Timezone) == "" {
		return errors.New("calendar.timezone cannot be empty")
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("calendar.timezone is not a valid IANA zone: %w", err)
	}
	cal := c.Calendar
	if !(0 <= cal.WorkStartHour && cal.WorkStartHour < cal.LunchStartHour &&
		cal.LunchStartHour < cal.LunchEndHour &&
		cal.LunchEndHour < cal.WorkEndHour && cal.WorkEndHour <= 24) {
		return errors.New("calendar hours must satisfy 0 <= workStart < lunchStart < lunchEnd < workEnd <= 24")
	}
	if len(cal.BusinessWeekdays) == 0 {
		return errors.New("calendar.businessWeekdays cannot be empty")
	}
	for _, day := range cal.BusinessWeekdays {
		if day < 0 || day > 6 {
			return fmt.Errorf("calendar.businessWeekdays entry %d out of range 0..6", day)
		}
	}
	switch cal.SnapPolicy {
	case "backward", "forward":
	default:
		return fmt.Errorf("calendar.snapPolicy must be backward or forward, got %q", cal.SnapPolicy)
	}
	if strings.TrimSpace(c.Holidays.SourceURL) == "" {
		return errors.New("holidays.sourceUrl cannot be empty")
	}
	if c.Holidays.CacheTTL <= 0 {
		return errors.New("holidays.cacheTtl must be positive")
	}
	if c.Holidays.FetchTimeout <= 0 {
		return errors.New("holidays.fetchTimeout must be positive")
	}
	return nil
}

package holidays

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"business-days-api/internal/domain/businessday"
	apperrors "business-days-api/pkg/errors"
	"business-days-api/pkg/metrics"
)

// Fetcher retrieves the full holiday set from the upstream source.
type Fetcher interface {
	FetchHolidays(ctx context.Context) (businessday.HolidaySet, error)
}

// Cache keeps the holiday set in memory and refreshes it when older than
// its TTL. Concurrent callers that observe stale data share a single
// in-flight fetch; a failed refresh serves the previous set when one
// exists. Published sets are never mutated, so readers may keep using a
// returned set while a refresh replaces the cached one.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	timeout time.Duration
	logger  *slog.Logger
	metrics *metrics.Registry
	now     func() time.Time

	flight singleflight.Group

	mu        sync.RWMutex
	holidays  businessday.HolidaySet
	fetchedAt time.Time
}

// NewCache builds an empty cache; the first read triggers a fetch.
func NewCache(fetcher Fetcher, ttl, fetchTimeout time.Duration, reg *metrics.Registry, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 5 * time.Second
	}
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		timeout: fetchTimeout,
		logger:  logger.With("component", "holidays.cache"),
		metrics: reg,
		now:     time.Now,
	}
}

// Holidays implements businessday.HolidayProvider. It fails only when no
// fetch has ever succeeded and a fresh attempt also fails.
func (c *Cache) Holidays(ctx context.Context) (businessday.HolidaySet, error) {
	if set, ok := c.fresh(); ok {
		return set, nil
	}

	result, err, _ := c.flight.Do("refresh", c.refresh)
	if err != nil {
		return nil, err
	}
	return result.(businessday.HolidaySet), nil
}

func (c *Cache) fresh() (businessday.HolidaySet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fetchedAt.IsZero() || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.holidays, true
}

func (c *Cache) refresh() (interface{}, error) {
	// A flight that completed a moment before we joined the queue may have
	// already freshened the data.
	if set, ok := c.fresh(); ok {
		return set, nil
	}

	// Detached from the caller so one cancelled request cannot fail every
	// waiter sharing this flight.
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	set, err := c.fetcher.FetchHolidays(ctx)
	if err != nil {
		c.mu.RLock()
		stale, fetchedAt := c.holidays, c.fetchedAt
		c.mu.RUnlock()
		if !fetchedAt.IsZero() {
			c.metrics.HolidayRefresh.WithLabelValues(metrics.RefreshStale).Inc()
			c.logger.Warn("holiday refresh failed, serving cached data", "error", err)
			return stale, nil
		}
		c.metrics.HolidayRefresh.WithLabelValues(metrics.RefreshFailure).Inc()
		c.logger.Error("holiday refresh failed with no cached data", "error", err)
		return nil, apperrors.Wrap(apperrors.CodeServiceUnavailable,
			"unable to fetch holiday data, please try again later", err)
	}

	c.mu.Lock()
	c.holidays = set
	c.fetchedAt = c.now()
	c.mu.Unlock()

	c.metrics.HolidayRefresh.WithLabelValues(metrics.RefreshSuccess).Inc()
	c.metrics.CachedHolidays.Set(float64(len(set)))
	c.logger.Info("holiday cache refreshed", "count", len(set))
	return set, nil
}

var _ businessday.HolidayProvider = (*Cache)(nil)

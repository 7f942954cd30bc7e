package businessday

import (
	"context"
	"log/slog"
	"time"

	apperrors "business-days-api/pkg/errors"
)

// Service exposes the business-date computation.
type Service interface {
	Calculate(ctx context.Context, req Request) (Response, error)
}

// HolidayProvider supplies the current holiday snapshot. The returned set
// must not be mutated by the caller.
type HolidayProvider interface {
	Holidays(ctx context.Context) (HolidaySet, error)
}

type service struct {
	cal      *Calendar
	holidays HolidayProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires up the business-day domain.
func NewService(cal *Calendar, holidays HolidayProvider, logger *slog.Logger) Service {
	return &service{
		cal:      cal,
		holidays: holidays,
		logger:   logger.With("component", "businessday.service"),
		now:      time.Now,
	}
}

func (s *service) Calculate(ctx context.Context, req Request) (Response, error) {
	if req.Days <= 0 && req.Hours <= 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidParameters,
			"at least one parameter (days or hours) must be provided", nil)
	}

	// One snapshot for the whole computation, even if the cache refreshes
	// mid-flight elsewhere.
	holidays, err := s.holidays.Holidays(ctx)
	if err != nil {
		return Response{}, err
	}

	start := s.now()
	if req.Start != nil {
		start = *req.Start
	}

	current := s.cal.Snap(start.In(s.cal.Location()), holidays)
	s.logger.Info("starting calculation",
		"start", current.Format(time.RFC3339), "days", req.Days, "hours", req.Hours)

	if req.Days > 0 {
		current = s.cal.AddBusinessDays(current, req.Days, holidays)
	}
	if req.Hours > 0 {
		current = s.cal.AddBusinessHours(current, req.Hours, holidays)
	}

	result := current.UTC().Format(time.RFC3339)
	s.logger.Info("calculation finished", "result", result)
	return Response{Date: result}, nil
}

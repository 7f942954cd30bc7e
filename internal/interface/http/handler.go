package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"business-days-api/internal/domain/businessday"
	apperrors "business-days-api/pkg/errors"
)

// A start date may not sit further than this from the current time.
const maxStartDateWindow = 10 * 365 * 24 * time.Hour

// Handler wires the HTTP transport to the business-day domain.
type Handler struct {
	businessDays businessday.Service
	logger       *slog.Logger
	now          func() time.Time
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc businessday.Service, logger *slog.Logger) *Handler {
	return &Handler{
		businessDays: svc,
		logger:       logger.With("component", "http.handler"),
		now:          time.Now,
	}
}

type calculateQuery struct {
	Days  *int   `form:"days" binding:"omitempty,min=1,max=365"`
	Hours *int   `form:"hours" binding:"omitempty,min=1,max=2920"`
	Date  string `form:"date"`
}

// Calculate handles GET /business-days/calculate.
func (h *Handler) Calculate(c *gin.Context) {
	var query calculateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidParameters,
			"days must be an integer between 1 and 365; hours must be an integer between 1 and 2920", err))
		return
	}
	if query.Days == nil && query.Hours == nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidParameters,
			"at least one parameter (days or hours) must be provided", nil))
		return
	}

	req := businessday.Request{}
	if query.Days != nil {
		req.Days = *query.Days
	}
	if query.Hours != nil {
		req.Hours = *query.Hours
	}
	if query.Date != "" {
		start, err := parseStartDate(query.Date, h.now())
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidParameters,
				err.Error(), err))
			return
		}
		req.Start = &start
	}

	h.logger.Info("calculating business date",
		"days", req.Days, "hours", req.Hours, "date", query.Date,
		"request_id", c.GetString("request_id"))

	resp, err := h.businessDays.Calculate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health reports process liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseStartDate accepts only ISO 8601 UTC timestamps with an explicit Z
// suffix, within ten years of now in either direction.
func parseStartDate(value string, now time.Time) (time.Time, error) {
	if !strings.HasSuffix(value, "Z") {
		return time.Time{}, errors.New("date must be an ISO 8601 UTC timestamp with Z suffix (e.g. 2025-08-01T14:00:00Z)")
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.New("date must be an ISO 8601 UTC timestamp with Z suffix (e.g. 2025-08-01T14:00:00Z)")
	}
	if diff := ts.Sub(now); diff > maxStartDateWindow || diff < -maxStartDateWindow {
		return time.Time{}, errors.New("date must be within ten years of the current time")
	}
	return ts, nil
}

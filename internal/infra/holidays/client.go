package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"business-days-api/internal/domain/businessday"
)

const defaultSourceURL = "https://content.capta.co/Recruitment/WorkingDays.json"

// Client fetches the holiday feed over HTTP. The feed is a JSON array of
// either bare "YYYY-MM-DD" strings or objects carrying a "date" field in
// that or a longer ISO form.
type Client struct {
	sourceURL  string
	httpClient *http.Client
}

// NewClient builds a feed client with a bounded request timeout.
func NewClient(sourceURL string, timeout time.Duration) *Client {
	url := strings.TrimSpace(sourceURL)
	if url == "" {
		url = defaultSourceURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		sourceURL:  url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchHolidays retrieves and normalizes the full holiday set. Any payload
// that cannot be interpreted as a set of dates is a fetch failure, never a
// partial success.
func (c *Client) FetchHolidays(ctx context.Context) (businessday.HolidaySet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build holiday request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holiday request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("holiday request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read holiday response: %w", err)
	}

	return decodeHolidayDates(body)
}

func decodeHolidayDates(payload []byte) (businessday.HolidaySet, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("decode holiday response: %w", err)
	}
	if len(entries) == 0 {
		return nil, errors.New("holiday response contained no dates")
	}

	set := make(businessday.HolidaySet, len(entries))
	for _, entry := range entries {
		date, err := normalizeEntry(entry)
		if err != nil {
			return nil, err
		}
		set[date] = struct{}{}
	}
	return set, nil
}

func normalizeEntry(raw json.RawMessage) (string, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return normalizeDate(asString)
	}

	var asObject struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(raw, &asObject); err == nil && asObject.Date != "" {
		return normalizeDate(asObject.Date)
	}

	return "", fmt.Errorf("unsupported holiday entry: %s", string(raw))
}

// normalizeDate reduces a date or timestamp string to YYYY-MM-DD.
func normalizeDate(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < len(businessday.DateLayout) {
		return "", fmt.Errorf("malformed holiday date %q", value)
	}
	day := trimmed[:len(businessday.DateLayout)]
	if _, err := time.Parse(businessday.DateLayout, day); err != nil {
		return "", fmt.Errorf("malformed holiday date %q: %w", value, err)
	}
	return day, nil
}

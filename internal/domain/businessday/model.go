package businessday

import "time"

// DateLayout is the canonical representation of a holiday date.
const DateLayout = "2006-01-02"

// SnapPolicy picks the direction an out-of-window start instant is moved:
// backward lands on the most recent valid business instant, forward on the
// next one.
type SnapPolicy string

const (
	SnapBackward SnapPolicy = "backward"
	SnapForward  SnapPolicy = "forward"
)

// Profile is the immutable working-hours configuration a Calendar operates
// on. Hour fields are local hours of day and must satisfy
// 0 <= WorkStartHour < LunchStartHour < LunchEndHour < WorkEndHour <= 24.
type Profile struct {
	Location       *time.Location
	WorkStartHour  int
	LunchStartHour int
	LunchEndHour   int
	WorkEndHour    int
	Weekdays       map[time.Weekday]bool
	Snap           SnapPolicy
}

// DefaultWeekdays returns the Monday-Friday business week.
func DefaultWeekdays() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}
}

// HolidaySet holds non-working dates keyed by DateLayout. Sets are never
// mutated after publication; each refresh builds a new one.
type HolidaySet map[string]struct{}

// Contains reports whether the date of t (in t's location) is a holiday.
func (s HolidaySet) Contains(t time.Time) bool {
	_, ok := s[t.Format(DateLayout)]
	return ok
}

// Request carries validated computation inputs. A nil Start means "now".
// Zero increments perform no corresponding phase.
type Request struct {
	Days  int
	Hours int
	Start *time.Time
}

// Response is the computation result as an ISO 8601 UTC timestamp.
type Response struct {
	Date string `json:"date"`
}

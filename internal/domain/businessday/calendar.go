package businessday

import (
	"errors"
	"fmt"
	"time"
)

// Calendar performs pure business-calendar arithmetic over a Profile. It
// holds no I/O and never consults the wall clock; holiday data is passed in
// per call so every phase of one computation observes the same snapshot.
type Calendar struct {
	profile Profile
}

// NewCalendar validates the profile and returns an engine bound to it.
func NewCalendar(profile Profile) (*Calendar, error) {
	if profile.Location == nil {
		return nil, errors.New("calendar profile requires a location")
	}
	if !(0 <= profile.WorkStartHour && profile.WorkStartHour < profile.LunchStartHour &&
		profile.LunchStartHour < profile.LunchEndHour &&
		profile.LunchEndHour < profile.WorkEndHour && profile.WorkEndHour <= 24) {
		return nil, fmt.Errorf("calendar hours %d/%d/%d/%d violate 0 <= workStart < lunchStart < lunchEnd < workEnd <= 24",
			profile.WorkStartHour, profile.LunchStartHour, profile.LunchEndHour, profile.WorkEndHour)
	}
	if len(profile.Weekdays) == 0 {
		profile.Weekdays = DefaultWeekdays()
	}
	switch profile.Snap {
	case "":
		profile.Snap = SnapBackward
	case SnapBackward, SnapForward:
	default:
		return nil, fmt.Errorf("unknown snap policy %q", profile.Snap)
	}
	return &Calendar{profile: profile}, nil
}

// Location returns the zone all arithmetic happens in.
func (c *Calendar) Location() *time.Location {
	return c.profile.Location
}

// IsBusinessDay reports whether t falls on a business weekday that is not a
// holiday.
func (c *Calendar) IsBusinessDay(t time.Time, holidays HolidaySet) bool {
	return c.profile.Weekdays[t.Weekday()] && !holidays.Contains(t)
}

// Snap moves t to the nearest valid business instant per the profile's snap
// policy. Instants already strictly inside a work segment are unchanged.
func (c *Calendar) Snap(t time.Time, holidays HolidaySet) time.Time {
	if c.profile.Snap == SnapForward {
		return c.snapForward(t, holidays)
	}
	return c.snapBackward(t, holidays)
}

func (c *Calendar) snapBackward(t time.Time, holidays HolidaySet) time.Time {
	for !c.IsBusinessDay(t, holidays) {
		t = c.at(t.AddDate(0, 0, -1), c.profile.WorkEndHour)
	}
	switch hour := t.Hour(); {
	case hour < c.profile.WorkStartHour:
		t = c.at(t.AddDate(0, 0, -1), c.profile.WorkEndHour)
		for !c.IsBusinessDay(t, holidays) {
			t = c.at(t.AddDate(0, 0, -1), c.profile.WorkEndHour)
		}
		return t
	case hour >= c.profile.WorkEndHour:
		return c.at(t, c.profile.WorkEndHour)
	case hour >= c.profile.LunchStartHour && hour < c.profile.LunchEndHour:
		return c.at(t, c.profile.LunchStartHour)
	default:
		return t
	}
}

func (c *Calendar) snapForward(t time.Time, holidays HolidaySet) time.Time {
	for !c.IsBusinessDay(t, holidays) {
		t = c.at(t.AddDate(0, 0, 1), c.profile.WorkStartHour)
	}
	switch hour := t.Hour(); {
	case hour < c.profile.WorkStartHour:
		return c.at(t, c.profile.WorkStartHour)
	case hour >= c.profile.WorkEndHour:
		t = c.at(t.AddDate(0, 0, 1), c.profile.WorkStartHour)
		for !c.IsBusinessDay(t, holidays) {
			t = c.at(t.AddDate(0, 0, 1), c.profile.WorkStartHour)
		}
		return t
	case hour >= c.profile.LunchStartHour && hour < c.profile.LunchEndHour:
		return c.at(t, c.profile.LunchEndHour)
	default:
		return t
	}
}

// AddBusinessDays advances t by whole business days, stepping one calendar
// day at a time and counting only steps that land on a business day. The
// time of day is preserved.
func (c *Calendar) AddBusinessDays(t time.Time, days int, holidays HolidaySet) time.Time {
	for remaining := days; remaining > 0; {
		t = t.AddDate(0, 0, 1)
		if c.IsBusinessDay(t, holidays) {
			remaining--
		}
	}
	return t
}

// AddBusinessHours advances t by working time, consuming only the morning
// and afternoon segments. Exhausting a segment jumps to the start of the
// next one: lunch to the afternoon, end of day to the next business day's
// morning.
func (c *Calendar) AddBusinessHours(t time.Time, hours int, holidays HolidaySet) time.Time {
	remaining := time.Duration(hours) * time.Hour
	for remaining > 0 {
		for !c.IsBusinessDay(t, holidays) {
			t = c.at(t.AddDate(0, 0, 1), c.profile.WorkStartHour)
		}
		switch hour := t.Hour(); {
		case hour < c.profile.LunchStartHour:
			left := c.at(t, c.profile.LunchStartHour).Sub(t)
			if remaining <= left {
				return t.Add(remaining)
			}
			remaining -= left
			t = c.at(t, c.profile.LunchEndHour)
		case hour >= c.profile.LunchEndHour:
			segmentEnd := c.at(t, c.profile.WorkEndHour)
			if left := segmentEnd.Sub(t); left > 0 {
				if remaining <= left {
					return t.Add(remaining)
				}
				remaining -= left
			}
			t = c.at(t.AddDate(0, 0, 1), c.profile.WorkStartHour)
		default:
			t = c.at(t, c.profile.LunchEndHour)
		}
	}
	return t
}

// at pins t's date to the given local hour with minutes and smaller units
// zeroed.
func (c *Calendar) at(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, c.profile.Location)
}

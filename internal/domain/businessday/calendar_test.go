package businessday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 2025-08-04 is a Monday; 2025-08-01 the Friday before it.

func TestSnapBackward(t *testing.T) {
	cal := newTestCalendar(t, SnapBackward)

	cases := []struct {
		name     string
		start    string
		holidays HolidaySet
		want     string
	}{
		{name: "inside morning unchanged", start: "2025-08-04T10:30:00", want: "2025-08-04T10:30:00"},
		{name: "inside afternoon unchanged", start: "2025-08-04T15:45:12", want: "2025-08-04T15:45:12"},
		{name: "lunch moves to lunch start", start: "2025-08-04T12:30:00", want: "2025-08-04T12:00:00"},
		{name: "after close moves to close", start: "2025-08-04T18:30:00", want: "2025-08-04T17:00:00"},
		{name: "before open moves to previous close", start: "2025-08-04T07:15:00", want: "2025-08-01T17:00:00"},
		{name: "saturday moves to friday close", start: "2025-08-02T14:00:00", want: "2025-08-01T17:00:00"},
		{name: "sunday moves to friday close", start: "2025-08-03T09:00:00", want: "2025-08-01T17:00:00"},
		{
			name:     "holiday moves to previous business close",
			start:    "2025-08-04T10:00:00",
			holidays: holidaySet("2025-08-04"),
			want:     "2025-08-01T17:00:00",
		},
		{
			name:     "weekend plus holiday friday skips to thursday",
			start:    "2025-08-03T09:00:00",
			holidays: holidaySet("2025-08-01"),
			want:     "2025-07-31T17:00:00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cal.Snap(localTime(t, cal, tc.start), tc.holidays)
			require.Equal(t, localTime(t, cal, tc.want), got)
		})
	}
}

func TestSnapForward(t *testing.T) {
	cal := newTestCalendar(t, SnapForward)

	cases := []struct {
		name     string
		start    string
		holidays HolidaySet
		want     string
	}{
		{name: "inside window unchanged", start: "2025-08-04T10:30:00", want: "2025-08-04T10:30:00"},
		{name: "before open moves to open", start: "2025-08-04T07:15:00", want: "2025-08-04T08:00:00"},
		{name: "lunch moves to lunch end", start: "2025-08-04T12:30:00", want: "2025-08-04T13:00:00"},
		{name: "after close moves to next open", start: "2025-08-01T18:00:00", want: "2025-08-04T08:00:00"},
		{name: "saturday moves to monday open", start: "2025-08-02T14:00:00", want: "2025-08-04T08:00:00"},
		{
			name:     "after close skips holiday monday",
			start:    "2025-08-01T18:00:00",
			holidays: holidaySet("2025-08-04"),
			want:     "2025-08-05T08:00:00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cal.Snap(localTime(t, cal, tc.start), tc.holidays)
			require.Equal(t, localTime(t, cal, tc.want), got)
		})
	}
}

func TestAddBusinessDays(t *testing.T) {
	cal := newTestCalendar(t, SnapBackward)

	cases := []struct {
		name     string
		start    string
		days     int
		holidays HolidaySet
		want     string
	}{
		{name: "five days lands next monday", start: "2025-08-04T10:00:00", days: 5, want: "2025-08-11T10:00:00"},
		{name: "friday plus one skips weekend", start: "2025-08-01T10:00:00", days: 1, want: "2025-08-04T10:00:00"},
		{
			name:     "holiday on the next day is skipped",
			start:    "2025-08-04T10:00:00",
			days:     1,
			holidays: holidaySet("2025-08-05"),
			want:     "2025-08-06T10:00:00",
		},
		{name: "time of day preserved", start: "2025-08-04T11:37:21", days: 2, want: "2025-08-06T11:37:21"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cal.AddBusinessDays(localTime(t, cal, tc.start), tc.days, tc.holidays)
			require.Equal(t, localTime(t, cal, tc.want), got)
		})
	}
}

func TestAddBusinessHours(t *testing.T) {
	cal := newTestCalendar(t, SnapBackward)

	cases := []struct {
		name     string
		start    string
		hours    int
		holidays HolidaySet
		want     string
	}{
		{name: "two hours within morning", start: "2025-08-04T10:00:00", hours: 2, want: "2025-08-04T12:00:00"},
		{name: "two hours across lunch", start: "2025-08-04T11:30:00", hours: 2, want: "2025-08-04T14:30:00"},
		{name: "morning remainder plus leftover after lunch", start: "2025-08-04T11:00:00", hours: 2, want: "2025-08-04T14:00:00"},
		{name: "full working day rolls over", start: "2025-08-04T10:00:00", hours: 8, want: "2025-08-05T10:00:00"},
		{name: "friday evening crosses the weekend", start: "2025-08-01T16:00:00", hours: 2, want: "2025-08-04T09:00:00"},
		{
			name:     "holiday monday pushes to tuesday",
			start:    "2025-08-01T16:00:00",
			hours:    2,
			holidays: holidaySet("2025-08-04"),
			want:     "2025-08-05T09:00:00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cal.AddBusinessHours(localTime(t, cal, tc.start), tc.hours, tc.holidays)
			require.Equal(t, localTime(t, cal, tc.want), got)
		})
	}
}

func TestAddBusinessHoursNeverLandsInLunch(t *testing.T) {
	cal := newTestCalendar(t, SnapBackward)
	start := localTime(t, cal, "2025-08-04T08:00:00")

	for hours := 1; hours <= 20; hours++ {
		got := cal.AddBusinessHours(start, hours, nil)
		hour := got.Hour()
		inLunch := hour >= 12 && hour < 13 && !(hour == 12 && got.Minute() == 0 && got.Second() == 0)
		require.False(t, inLunch, "adding %d hours landed at %s", hours, got)
		require.True(t, cal.IsBusinessDay(got, nil), "adding %d hours landed on %s", hours, got.Weekday())
	}
}

func TestNewCalendarValidation(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	_, err = NewCalendar(Profile{WorkStartHour: 8, LunchStartHour: 12, LunchEndHour: 13, WorkEndHour: 17})
	require.Error(t, err, "missing location must be rejected")

	_, err = NewCalendar(Profile{Location: loc, WorkStartHour: 13, LunchStartHour: 12, LunchEndHour: 13, WorkEndHour: 17})
	require.Error(t, err, "inverted hours must be rejected")

	_, err = NewCalendar(Profile{Location: loc, WorkStartHour: 8, LunchStartHour: 12, LunchEndHour: 13, WorkEndHour: 17, Snap: "sideways"})
	require.Error(t, err, "unknown snap policy must be rejected")

	cal, err := NewCalendar(Profile{Location: loc, WorkStartHour: 8, LunchStartHour: 12, LunchEndHour: 13, WorkEndHour: 17})
	require.NoError(t, err)
	monday := localTime(t, cal, "2025-08-04T10:00:00")
	require.True(t, cal.IsBusinessDay(monday, nil), "empty weekdays default to monday-friday")
	saturday := localTime(t, cal, "2025-08-02T10:00:00")
	require.False(t, cal.IsBusinessDay(saturday, nil))
}

func TestHolidaySetContains(t *testing.T) {
	cal := newTestCalendar(t, SnapBackward)
	set := holidaySet("2025-01-01", "2025-12-25")

	require.True(t, set.Contains(localTime(t, cal, "2025-01-01T09:00:00")))
	require.False(t, set.Contains(localTime(t, cal, "2025-01-02T09:00:00")))
}

func newTestCalendar(t *testing.T, snap SnapPolicy) *Calendar {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	cal, err := NewCalendar(Profile{
		Location:       loc,
		WorkStartHour:  8,
		LunchStartHour: 12,
		LunchEndHour:   13,
		WorkEndHour:    17,
		Weekdays:       DefaultWeekdays(),
		Snap:           snap,
	})
	require.NoError(t, err)
	return cal
}

func localTime(t *testing.T, cal *Calendar, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02T15:04:05", value, cal.Location())
	require.NoError(t, err)
	return ts
}

func holidaySet(dates ...string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

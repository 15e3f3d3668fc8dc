// Package calendar assembles the shared household calendar: events
// entered by family members, laid out month by month with the national
// holidays marked. Event storage lives in the store package; this
// package only derives views from an event snapshot.
package calendar

import (
	"sort"
	"time"

	"github.com/ymaeda/kurashi/date"
	"github.com/ymaeda/kurashi/holiday"
)

// Event is one entry on the shared calendar. Time is an optional "HH:MM"
// string; events without a time sort before timed ones on the same day.
type Event struct {
	ID     string    `json:"id"`
	Date   date.Date `json:"event_date"`
	Time   string    `json:"event_time"`
	Title  string    `json:"title"`
	Color  string    `json:"color"`
	Avatar string    `json:"user_avatar"`
	UserID string    `json:"user_id"`
}

// Day is one cell of a month view.
type Day struct {
	Date    date.Date
	Weekday time.Weekday
	Holiday string // observed holiday name, empty on ordinary days
	Events  []Event
}

// Month lays out every day of the given month, attaching the observed
// holiday label and the day's events sorted by time (events sharing a
// time keep their input order).
func Month(year int, month time.Month, events []Event) []Day {
	byDay := make(map[date.Date][]Event)
	for _, e := range events {
		byDay[e.Date] = append(byDay[e.Date], e)
	}

	days := make([]Day, 0, date.DaysIn(year, month))
	for d := 1; d <= date.DaysIn(year, month); d++ {
		on := date.New(year, month, d)
		dayEvents := byDay[on]
		sort.SliceStable(dayEvents, func(i, j int) bool {
			return dayEvents[i].Time < dayEvents[j].Time
		})

		day := Day{Date: on, Weekday: on.Weekday(), Events: dayEvents}
		if name, ok := holiday.Observed(on); ok {
			day.Holiday = name
		}
		days = append(days, day)
	}
	return days
}

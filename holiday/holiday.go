// Package holiday implements a Japanese national holiday calendar: fixed
// dates, the Happy Monday floating holidays, the approximate equinox
// days, and substitute holidays. Lookups are pure functions of the date;
// there is no state and no failure mode beyond "not a holiday".
package holiday

import (
	"fmt"
	"math"
	"time"

	"github.com/ymaeda/kurashi/date"
)

// fixed lists the fixed-date holidays as "M/D" keys.
var fixed = map[string]string{
	"1/1":   "元日",
	"2/11":  "建国記念の日",
	"2/23":  "天皇誕生日",
	"4/29":  "昭和の日",
	"5/3":   "憲法記念日",
	"5/4":   "みどりの日",
	"5/5":   "こどもの日",
	"8/11":  "山の日",
	"11/3":  "文化の日",
	"11/23": "勤労感謝の日",
}

// happyMonday lists the floating "Nth Monday of month" holidays.
var happyMonday = map[time.Month]struct {
	nth  int
	name string
}{
	time.January:   {2, "成人の日"},
	time.July:      {3, "海の日"},
	time.September: {3, "敬老の日"},
	time.October:   {2, "スポーツの日"},
}

// Name returns the holiday name for the date, not counting substitute
// holidays. The second return is false on an ordinary day.
func Name(d date.Date) (string, bool) {
	if name, ok := fixed[fmt.Sprintf("%d/%d", int(d.Month()), d.Day())]; ok {
		return name, true
	}

	if hm, ok := happyMonday[d.Month()]; ok && d.Weekday() == time.Monday {
		if nthWeekdayOfMonth(d.Day()) == hm.nth {
			return hm.name, true
		}
	}

	switch d.Month() {
	case time.March:
		if d.Day() == equinoxDay(d.Year(), 20.8431) {
			return "春分の日", true
		}
	case time.September:
		if d.Day() == equinoxDay(d.Year(), 23.2488) {
			return "秋分の日", true
		}
	}

	return "", false
}

// Observed is Name plus substitute holidays: when a holiday falls on a
// Sunday, the following Monday is observed as 振替休日.
func Observed(d date.Date) (string, bool) {
	if name, ok := Name(d); ok {
		return name, true
	}
	if d.Weekday() == time.Monday {
		if _, ok := Name(d.Add(-1)); ok {
			return "振替休日", true
		}
	}
	return "", false
}

// nthWeekdayOfMonth reports which occurrence of its weekday the given
// day of month is: days 1-7 are the first, 8-14 the second, and so on.
func nthWeekdayOfMonth(day int) int {
	return (day-1)/7 + 1
}

// equinoxDay approximates the equinox day of month for the given year
// using the well-known 1980-based formula. Valid for 1980 through 2099,
// which comfortably covers a household calendar.
func equinoxDay(year int, base float64) int {
	y := float64(year - 1980)
	return int(math.Floor(base + 0.242194*y - math.Floor(y/4)))
}

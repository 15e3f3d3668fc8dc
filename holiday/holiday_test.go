package holiday

import (
	"testing"

	"github.com/ymaeda/kurashi/date"
)

func TestName(t *testing.T) {
	testCases := []struct {
		day  string
		want string
	}{
		// fixed dates
		{"2025-01-01", "元日"},
		{"2025-02-11", "建国記念の日"},
		{"2025-05-03", "憲法記念日"},
		{"2025-05-04", "みどりの日"},
		{"2025-05-05", "こどもの日"},
		{"2025-11-23", "勤労感謝の日"},
		// Happy Monday
		{"2025-01-13", "成人の日"},   // 2nd Monday of January
		{"2025-07-21", "海の日"},    // 3rd Monday of July
		{"2025-09-15", "敬老の日"},   // 3rd Monday of September
		{"2025-10-13", "スポーツの日"}, // 2nd Monday of October
		// equinoxes from the approximation formula
		{"2024-03-20", "春分の日"},
		{"2024-09-22", "秋分の日"},
		{"2025-03-20", "春分の日"},
		{"2025-09-23", "秋分の日"},
	}
	for _, tc := range testCases {
		t.Run(tc.day, func(t *testing.T) {
			got, ok := Name(date.MustParse(tc.day))
			if !ok || got != tc.want {
				t.Errorf("Name(%s) = %q, %v; want %q", tc.day, got, ok, tc.want)
			}
		})
	}
}

func TestNameOrdinaryDays(t *testing.T) {
	testCases := []string{
		"2025-01-02", // day after 元日
		"2025-06-15", // June has no holidays
		"2025-01-06", // 1st Monday of January, not the 2nd
		"2025-07-14", // 2nd Monday of July, not the 3rd
	}
	for _, day := range testCases {
		t.Run(day, func(t *testing.T) {
			if got, ok := Name(date.MustParse(day)); ok {
				t.Errorf("Name(%s) = %q, want none", day, got)
			}
		})
	}
}

func TestObserved(t *testing.T) {
	// 2025-02-23 (天皇誕生日) falls on a Sunday, so Monday the 24th is a
	// substitute holiday. Same for 2024-02-11 and 2024-09-22.
	testCases := []struct {
		day  string
		want string
		ok   bool
	}{
		{"2025-02-23", "天皇誕生日", true},
		{"2025-02-24", "振替休日", true},
		{"2024-02-12", "振替休日", true},
		{"2024-05-06", "振替休日", true}, // こどもの日 2024 was a Sunday
		{"2024-09-23", "振替休日", true}, // 秋分の日 2024 was a Sunday
		{"2025-02-25", "", false},    // Tuesday after a substitute is ordinary
		{"2025-01-14", "", false},    // Tuesday after 成人の日 (a Monday)
	}
	for _, tc := range testCases {
		t.Run(tc.day, func(t *testing.T) {
			got, ok := Observed(date.MustParse(tc.day))
			if ok != tc.ok || got != tc.want {
				t.Errorf("Observed(%s) = %q, %v; want %q, %v", tc.day, got, ok, tc.want, tc.ok)
			}
		})
	}
}

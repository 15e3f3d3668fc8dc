// Package renderer turns kurashi values into markdown reports for the
// terminal. Reports are plain strings; the cmd package decides how to
// display them.
package renderer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ymaeda/kurashi"
	"github.com/ymaeda/kurashi/calendar"
	"github.com/ymaeda/kurashi/weather"
)

// unit formats a unit price with its two display decimals.
func unit(d decimal.Decimal) string { return "¥" + d.StringFixed(2) }

// Ranking renders the per-item top-3 cheapest shops, items in
// alphabetical order for a stable report.
func Ranking(rank map[string][]kurashi.ShopPrice) string {
	if len(rank) == 0 {
		return "No price records yet.\n"
	}

	items := make([]string, 0, len(rank))
	for item := range rank {
		items = append(items, item)
	}
	sort.Strings(items)

	var b strings.Builder
	b.WriteString("# Cheapest shops per item\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "## %s\n\n", item)
		b.WriteString("| # | Shop | Unit price |\n")
		b.WriteString("|--:|:-----|-----------:|\n")
		for i, sp := range rank[item] {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, sp.ShopName, unit(sp.UnitPrice))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// History renders records newest first, at most limit rows (0 for all).
func History(records []kurashi.PriceRecord, limit int) string {
	if len(records) == 0 {
		return "No price records yet.\n"
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	var b strings.Builder
	b.WriteString("# Price history\n\n")
	b.WriteString("| Date | Item | Category | Price | Qty | Volume | Unit price | Shop | ID |\n")
	b.WriteString("|:-----|:-----|:---------|------:|----:|-------:|-----------:|:-----|:---|\n")
	for _, r := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			r.CreatedAt.Format("2006-01-02"), r.ItemName, r.Category,
			r.Price, r.Quantity, r.Volume, unit(r.UnitPrice), r.ShopName, r.ID)
	}
	return b.String()
}

// BestMatch renders the live "best so far" answer for a partial item name.
func BestMatch(partial string, m kurashi.BestMatch) string {
	return fmt.Sprintf("Best known price for %q: %s at **%s** (%d records)\n",
		partial, unit(m.BestPrice), m.ShopName, m.Count)
}

// Comparison renders the two-item verdict card.
func Comparison(a, b kurashi.Product, c kurashi.Comparison) string {
	nameA, nameB := a.Name, b.Name
	if nameA == "" {
		nameA = "A"
	}
	if nameB == "" {
		nameB = "B"
	}

	var w strings.Builder
	w.WriteString("# Price comparison\n\n")
	fmt.Fprintf(&w, "| Product | Unit price |\n|:--------|-----------:|\n")
	fmt.Fprintf(&w, "| %s | %s |\n", nameA, unit(c.UnitA))
	fmt.Fprintf(&w, "| %s | %s |\n\n", nameB, unit(c.UnitB))

	switch c.Winner {
	case kurashi.Draw:
		w.WriteString("Both cost the same per unit.\n")
	case kurashi.WinnerA:
		fmt.Fprintf(&w, "**%s** is cheaper by %s per unit (about %s%% off).\n", nameA, unit(c.Diff), c.Percent)
	case kurashi.WinnerB:
		fmt.Fprintf(&w, "**%s** is cheaper by %s per unit (about %s%% off).\n", nameB, unit(c.Diff), c.Percent)
	}
	return w.String()
}

// weekdayLabels follows the Japanese calendar convention, Sunday first.
var weekdayLabels = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// MonthCalendar renders one month as a day-per-row list with holidays
// and events, which reads better in a terminal than a 7-column grid.
func MonthCalendar(year int, month time.Month, days []calendar.Day) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d-%02d\n\n", year, int(month))
	for _, day := range days {
		fmt.Fprintf(&b, "- **%2d (%s)**", day.Date.Day(), weekdayLabels[day.Weekday])
		if day.Holiday != "" {
			fmt.Fprintf(&b, " 🎌 %s", day.Holiday)
		}
		for _, e := range day.Events {
			b.WriteString(" — ")
			if e.Time != "" {
				fmt.Fprintf(&b, "%s ", e.Time)
			}
			b.WriteString(e.Title)
			if e.Avatar != "" {
				fmt.Fprintf(&b, " %s", e.Avatar)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Weather renders the current conditions card.
func Weather(r *weather.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.City)
	fmt.Fprintf(&b, "- %d°C, %s\n", r.TempC, r.Condition)
	fmt.Fprintf(&b, "- Humidity %d%%\n", r.Humidity)
	fmt.Fprintf(&b, "- Pressure %d hPa (%s)\n", r.PressureHPa, r.PressureStatus())
	return b.String()
}

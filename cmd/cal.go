package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/ymaeda/kurashi/calendar"
	"github.com/ymaeda/kurashi/date"
	"github.com/ymaeda/kurashi/renderer"
)

type calCmd struct {
	month string
}

func (*calCmd) Name() string     { return "cal" }
func (*calCmd) Synopsis() string { return "show a month of the shared calendar" }
func (*calCmd) Usage() string {
	return `kcs cal [-d <yyyy-mm>]

  Shows one month with national holidays and the family's shared
  events. Defaults to the current month.

`
}

func (p *calCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "d", "", "Month to show as yyyy-mm, defaults to the current one.")
}

func (p *calCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year, month := date.Today().Year(), date.Today().Month()
	if p.month != "" {
		parsed, err := time.Parse("2006-01", p.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -d %q, want yyyy-mm\n", p.month)
			return subcommands.ExitUsageError
		}
		year, month = parsed.Year(), parsed.Month()
	}

	s, _, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	from := date.New(year, month, 1)
	to := date.New(year, month, date.DaysIn(year, month))
	events, err := s.ListEvents(ctx, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MonthCalendar(year, month, calendar.Month(year, month, events)))
	return subcommands.ExitSuccess
}

type eventCmd struct {
	date  string
	clock string
	title string
	color string
	rm    string
}

func (*eventCmd) Name() string     { return "event" }
func (*eventCmd) Synopsis() string { return "add or remove a shared calendar event" }
func (*eventCmd) Usage() string {
	return `kcs event -d <yyyy-mm-dd> -title <text> [-t <hh:mm>] [-color <name>]
kcs event -rm <id>

  Adds an event to the shared calendar, stamped with the acting
  member's avatar, or removes one by id.

`
}

func (p *eventCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Event date as yyyy-mm-dd.")
	f.StringVar(&p.clock, "t", "", "Optional event time as hh:mm.")
	f.StringVar(&p.title, "title", "", "Event title.")
	f.StringVar(&p.color, "color", "", "Display color.")
	f.StringVar(&p.rm, "rm", "", "Remove the event with this id instead of adding.")
}

func (p *eventCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if p.rm != "" {
		if err := s.DeleteEvent(ctx, p.rm); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed event %s\n", p.rm)
		return subcommands.ExitSuccess
	}

	on, err := date.Parse(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e := calendar.Event{
		Date:   on,
		Time:   p.clock,
		Title:  p.title,
		Color:  p.color,
		UserID: cfg.UserID,
	}
	// stamp the member's current avatar, like the web shell does
	if profile, err := s.Profile(ctx, cfg.UserID); err == nil {
		e.Avatar = profile.AvatarEmoji
	}

	saved, err := s.SaveEvent(ctx, e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %q on %s (id %s)\n", saved.Title, saved.Date, saved.ID)
	return subcommands.ExitSuccess
}

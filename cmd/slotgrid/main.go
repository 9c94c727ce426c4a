package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/academy-scheduler/internal/client"
	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
)

type options struct {
	api      string
	token    string
	studio   string
	date     string
	start    string
	duration float64
	name     string
	contact  string
	notes    string
	submit   bool
}

func main() {
	var opt options

	flag.StringVar(&opt.api, "api", envOr("ACADEMY_API", "http://localhost:8080"), "academy API base URL")
	flag.StringVar(&opt.token, "token", os.Getenv("ACADEMY_TOKEN"), "bearer token for submitting bookings")
	flag.StringVar(&opt.studio, "studio", "", "studio id, name or slug")
	flag.StringVar(&opt.date, "date", time.Now().Format("2006-01-02"), "booking date (YYYY-MM-DD)")
	flag.StringVar(&opt.start, "start", "", "start slot to check (HH:MM)")
	flag.Float64Var(&opt.duration, "duration", 1, "duration in hours")
	flag.StringVar(&opt.name, "name", "", "customer name")
	flag.StringVar(&opt.contact, "contact", "", "customer email or phone")
	flag.StringVar(&opt.notes, "notes", "", "booking notes")
	flag.BoolVar(&opt.submit, "submit", false, "submit the booking when the start slot is available")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opt, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "slotgrid:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opt options, out io.Writer) error {
	if opt.studio == "" {
		return errors.New("-studio is required")
	}

	api := client.New(opt.api, nil)
	creds := client.Credentials{Token: opt.token}

	studios, err := api.ListStudios(ctx, creds)
	if err != nil {
		return fmt.Errorf("load studios: %w", err)
	}
	studio, ok := client.FindStudio(studios, opt.studio)
	if !ok {
		return fmt.Errorf("unknown studio %q", opt.studio)
	}
	window, err := studio.Window()
	if err != nil {
		return fmt.Errorf("studio %s has a bad window: %w", studio.Name, err)
	}

	feed := client.NewBookingFeed(api, creds)
	grid := availability.Unknown(window)
	if snap, err := feed.Load(ctx, studio.Name, opt.date); err != nil {
		fmt.Fprintf(out, "!! could not load bookings: %v\n!! showing unknown availability\n\n", err)
	} else {
		grid = snap.Grid(window)
	}

	render(out, studio, opt.date, grid)

	if opt.start == "" {
		return nil
	}

	start, err := availability.ParseTimeOfDay(opt.start)
	if err != nil {
		return fmt.Errorf("-start: %w", err)
	}

	sel := booking.NewSelection(studio.Name, opt.date, opt.duration, grid)
	if err := sel.Choose(start); err != nil {
		fmt.Fprintf(out, "\n%s for %gh is not available\n", start, opt.duration)
		return nil
	}
	fmt.Fprintf(out, "\n%s for %gh is available: %s\n", start, opt.duration, joinTimes(sel.Range()))

	if !opt.submit {
		return nil
	}

	conf, err := sel.Confirm(booking.Details{CustomerName: opt.name, Contact: opt.contact}, studio.HourlyRate)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			fields := make([]string, 0, len(verr.Fields))
			for field := range verr.Fields {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(out, "  %s: %s\n", field, verr.Fields[field])
			}
		}
		return err
	}

	created, err := api.CreateBooking(ctx, creds, client.CreateBookingRequest{
		Studio:       studio.Name,
		Date:         conf.Request.Date,
		TimeSlot:     conf.Request.StartTime.String(),
		Duration:     conf.Request.DurationHours,
		CustomerName: conf.CustomerName,
		Contact:      conf.Contact,
		Notes:        opt.notes,
	})
	if err != nil {
		return fmt.Errorf("submit booking: %w", err)
	}

	fmt.Fprintf(out, "booked %s (%s), total %.2f\n", created.Reference, created.Status, created.TotalPrice)
	return nil
}

func render(out io.Writer, studio client.Studio, date string, grid availability.Grid) {
	fmt.Fprintf(out, "%s  %s  (%s-%s, every %dm)\n", studio.Name, date, grid.Window.Start, grid.Window.End, grid.Window.Step())
	for _, s := range grid.Slots {
		mark := "free"
		switch {
		case !grid.Known:
			mark = "?"
		case s.Booked:
			mark = "booked"
		}
		fmt.Fprintf(out, "  %s  %s\n", s.Time, mark)
	}
}

func joinTimes(ts []availability.TimeOfDay) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

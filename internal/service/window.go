package service

import (
	"fmt"
	"time"

	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
)

// The contest week runs Friday noon to Friday noon, Bogotá time.
const (
	contestTimezone = "America/Bogota"
	anchorWeekday   = time.Friday
	anchorHour      = 12
	windowDays      = 7
)

// ResolveWindow computes the weekly contest window for the given instant: the
// most recently started Friday-noon week in loc, capped at now when the week
// is still in progress. An instant exactly at Friday noon starts the new
// window. Pure function of its arguments.
func ResolveWindow(now time.Time, loc *time.Location) domain.TimeWindow {
	local := now.In(loc)

	anchor := time.Date(local.Year(), local.Month(), local.Day(), anchorHour, 0, 0, 0, loc)
	daysPast := (int(local.Weekday()) - int(anchorWeekday) + 7) % 7
	anchor = anchor.AddDate(0, 0, -daysPast)
	if local.Before(anchor) {
		anchor = anchor.AddDate(0, 0, -windowDays)
	}

	end := anchor.AddDate(0, 0, windowDays)
	if local.Before(end) {
		end = local
	}

	return domain.TimeWindow{Start: anchor, End: end}
}

// ContestWindow resolves the current window against the wall clock in the
// contest timezone.
func ContestWindow() (domain.TimeWindow, error) {
	loc, err := time.LoadLocation(contestTimezone)
	if err != nil {
		return domain.TimeWindow{}, fmt.Errorf("load timezone %s: %w", contestTimezone, err)
	}
	return ResolveWindow(time.Now(), loc), nil
}

package view

import (
	"time"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
)

type Timeframe int

const (
	TimeframeAll Timeframe = iota
	TimeframeThisWeek
	TimeframeLastWeek
	TimeframeThisMonth
	TimeframeLastMonth

	timeframeCount
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeThisWeek:
		return "This Week"
	case TimeframeLastWeek:
		return "Last Week"
	case TimeframeThisMonth:
		return "This Month"
	case TimeframeLastMonth:
		return "Last Month"
	case TimeframeAll:
		return "All Time"
	}

	return "Unknown"
}

func (t Timeframe) Next() Timeframe {
	return (t + 1) % timeframeCount
}

// Range returns the inclusive date range of t as of now, or nils for all time.
// Weeks start on Monday.
func (t Timeframe) Range(now time.Time) (*dates.Date, *dates.Date) {
	var start, end time.Time

	switch t {
	case TimeframeThisWeek:
		start = now.AddDate(0, 0, -weekOffset(now)+1)
		end = now
	case TimeframeLastWeek:
		end = now.AddDate(0, 0, -weekOffset(now))
		start = end.AddDate(0, 0, -6)
	case TimeframeThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = now
	case TimeframeLastMonth:
		lastMonth := now.AddDate(0, -1, 0)
		start = time.Date(lastMonth.Year(), lastMonth.Month(), 1, 0, 0, 0, 0, lastMonth.Location())
		end = start.AddDate(0, 1, -1)
	default:
		return nil, nil
	}

	s, e := dates.Of(start), dates.Of(end)

	return &s, &e
}

// weekOffset counts Sunday as day 7.
func weekOffset(now time.Time) int {
	offset := int(now.Weekday())
	if offset == 0 {
		offset = 7
	}

	return offset
}

package stats

import (
	"sort"
	"time"

	"github.com/workcal/workcal/pkg/datekey"
)

// The projection math assumes a fixed 365-day year, leap years included.
// Changing the constant changes the numeric contract of every projection.
const yearLengthDays = 365

type BestDay struct {
	Date  string
	Hours float64
}

// Aggregate holds statistics derived from a set of day entries. It is
// computed fresh on every query and never stored.
type Aggregate struct {
	TotalHours   float64
	AverageHours float64
	ActiveDays   int
	BestDay      *BestDay
}

type Projection struct {
	RemainingDays     int
	ProjectedEarnings float64
}

// ComputeAggregate folds entries into totals. The best day is selected by
// walking dates in ascending order and only replacing on strictly greater
// hours, so ties resolve to the earliest date.
func ComputeAggregate(entries map[string]float64) Aggregate {
	dates := make([]string, 0, len(entries))
	for date := range entries {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := Aggregate{}
	for _, date := range dates {
		hours := entries[date]
		result.TotalHours += hours
		result.ActiveDays++
		if result.BestDay == nil || hours > result.BestDay.Hours {
			result.BestDay = &BestDay{Date: date, Hours: hours}
		}
	}
	if result.ActiveDays > 0 {
		result.AverageHours = result.TotalHours / float64(result.ActiveDays)
	}
	return result
}

// ComputeMonthAggregate restricts entries to a single calendar month before
// aggregating.
func ComputeMonthAggregate(entries map[string]float64, year int, month int) Aggregate {
	filtered := make(map[string]float64)
	for date, hours := range entries {
		if datekey.InMonth(date, year, month) {
			filtered[date] = hours
		}
	}
	return ComputeAggregate(filtered)
}

// ComputeProjection extrapolates year-end earnings from the average hours
// worked per active day so far. The day "now" falls on counts as elapsed.
func ComputeProjection(averageHours float64, now time.Time, yearStart time.Time, hourlyRate float64) Projection {
	daysElapsed := int(now.Sub(yearStart)/(24*time.Hour)) + 1
	remaining := yearLengthDays - daysElapsed
	if remaining < 0 {
		remaining = 0
	}
	return Projection{
		RemainingDays:     remaining,
		ProjectedEarnings: averageHours * float64(remaining) * hourlyRate,
	}
}

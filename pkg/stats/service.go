package stats

import (
	"context"
	"time"

	"github.com/workcal/workcal/internal/utils"
	"github.com/workcal/workcal/pkg/datekey"
	"github.com/workcal/workcal/pkg/entry"
	"github.com/workcal/workcal/pkg/goal"
	"github.com/workcal/workcal/pkg/settings"
)

type MonthSummary struct {
	Month            string
	Stats            Aggregate
	Earnings         float64
	HoursProgress    Progress
	EarningsProgress Progress
}

type YearSummary struct {
	Year             int
	Stats            Aggregate
	Earnings         float64
	Projection       Projection
	HoursProgress    Progress
	EarningsProgress Progress
}

type Service interface {
	MonthSummary(ctx context.Context, year int, month int) (MonthSummary, error)
	YearSummary(ctx context.Context) (YearSummary, error)
}

type ServiceImpl struct {
	entries     entry.Service
	goals       goal.Service
	settings    settings.Service
	clock       utils.Clock
	trackedYear int
}

func NewService(
	entries entry.Service,
	goals goal.Service,
	settings settings.Service,
	clock utils.Clock,
	trackedYear int,
) *ServiceImpl {
	return &ServiceImpl{
		entries:     entries,
		goals:       goals,
		settings:    settings,
		clock:       clock,
		trackedYear: trackedYear,
	}
}

func (s *ServiceImpl) MonthSummary(ctx context.Context, year int, month int) (MonthSummary, error) {
	entries, err := s.entries.GetForMonth(ctx, year, month)
	if err != nil {
		return MonthSummary{}, err
	}
	rate, err := s.settings.GetHourlyRate(ctx)
	if err != nil {
		return MonthSummary{}, err
	}
	monthGoal, err := s.goals.GetMonthlyGoal(ctx, datekey.MonthKey(year, month))
	if err != nil {
		return MonthSummary{}, err
	}

	aggregate := ComputeAggregate(entries)
	earnings := aggregate.TotalHours * rate
	return MonthSummary{
		Month:            datekey.MonthKey(year, month),
		Stats:            aggregate,
		Earnings:         earnings,
		HoursProgress:    ComputeProgress(aggregate.TotalHours, monthGoal.TargetHours),
		EarningsProgress: ComputeProgress(earnings, monthGoal.TargetEarnings),
	}, nil
}

func (s *ServiceImpl) YearSummary(ctx context.Context) (YearSummary, error) {
	// All stored entries belong to the tracked year, so the year view
	// aggregates the full set without filtering.
	entries, err := s.entries.GetAll(ctx)
	if err != nil {
		return YearSummary{}, err
	}
	rate, err := s.settings.GetHourlyRate(ctx)
	if err != nil {
		return YearSummary{}, err
	}
	yearGoal, err := s.goals.GetYearlyGoal(ctx)
	if err != nil {
		return YearSummary{}, err
	}

	aggregate := ComputeAggregate(entries)
	earnings := aggregate.TotalHours * rate
	yearStart := time.Date(s.trackedYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	projection := ComputeProjection(aggregate.AverageHours, s.clock.Now().UTC(), yearStart, rate)
	return YearSummary{
		Year:             s.trackedYear,
		Stats:            aggregate,
		Earnings:         earnings,
		Projection:       projection,
		HoursProgress:    ComputeProgress(aggregate.TotalHours, yearGoal.TargetHours),
		EarningsProgress: ComputeProgress(earnings, yearGoal.TargetEarnings),
	}, nil
}

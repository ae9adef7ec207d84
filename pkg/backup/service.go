package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/workcal/workcal/internal/utils"
	"github.com/workcal/workcal/pkg/datekey"
	"github.com/workcal/workcal/pkg/entry"
	"github.com/workcal/workcal/pkg/goal"
	"github.com/workcal/workcal/pkg/settings"
)

// ImportResult reports what an import actually stored, counted after the
// per-element cleaning rules have been applied.
type ImportResult struct {
	Entries      int
	Notes        int
	MonthlyGoals int
	RateApplied  bool
}

type Service interface {
	Export(ctx context.Context) (Snapshot, error)
	// ExportJSON returns the serialized snapshot and its download filename.
	ExportJSON(ctx context.Context) ([]byte, string, error)
	ExportCSV(ctx context.Context) ([]byte, string, error)
	// Import sanitizes raw bytes and replaces all stored state with the
	// result. The stored hourly rate is only touched when the file carries
	// a positive one.
	Import(ctx context.Context, raw []byte) (ImportResult, error)
}

type ServiceImpl struct {
	entries     entry.Service
	goals       goal.Service
	settings    settings.Service
	clock       utils.Clock
	trackedYear int
	currency    string
}

func NewService(
	entries entry.Service,
	goals goal.Service,
	settings settings.Service,
	clock utils.Clock,
	trackedYear int,
	currency string,
) *ServiceImpl {
	return &ServiceImpl{
		entries:     entries,
		goals:       goals,
		settings:    settings,
		clock:       clock,
		trackedYear: trackedYear,
		currency:    currency,
	}
}

func (s *ServiceImpl) Export(ctx context.Context) (Snapshot, error) {
	entries, err := s.entries.GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	notes, err := s.entries.GetAllNotes(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	monthly, err := s.goals.GetAllMonthlyGoals(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	yearly, err := s.goals.GetYearlyGoal(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	rate, err := s.settings.GetHourlyRate(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	monthlySnapshots := make(map[string]GoalSnapshot, len(monthly))
	for month, monthGoal := range monthly {
		monthlySnapshots[month] = GoalSnapshot{Hours: monthGoal.TargetHours, Earnings: monthGoal.TargetEarnings}
	}
	return Snapshot{
		Version:    SnapshotVersion,
		ExportDate: s.clock.Now().UTC().Format(time.RFC3339),
		HourlyRate: rate,
		Entries:    entries,
		Notes:      notes,
		Goals: GoalsSnapshot{
			Monthly: monthlySnapshots,
			Yearly:  GoalSnapshot{Hours: yearly.TargetHours, Earnings: yearly.TargetEarnings},
		},
	}, nil
}

func (s *ServiceImpl) ExportJSON(ctx context.Context) ([]byte, string, error) {
	snapshot, err := s.Export(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, "", err
	}
	fileName := fmt.Sprintf("work-calendar-%d-backup-%s.json", s.trackedYear, s.today())
	return data, fileName, nil
}

func (s *ServiceImpl) ExportCSV(ctx context.Context) ([]byte, string, error) {
	snapshot, err := s.Export(ctx)
	if err != nil {
		return nil, "", err
	}
	// The CSV download drops the "backup" segment; only the JSON file is
	// named as a backup.
	fileName := fmt.Sprintf("work-calendar-%d-%s.csv", s.trackedYear, s.today())
	return RenderCSV(snapshot, s.currency), fileName, nil
}

func (s *ServiceImpl) Import(ctx context.Context, raw []byte) (ImportResult, error) {
	snapshot, err := Decode(raw)
	if err != nil {
		return ImportResult{}, err
	}

	if err := s.entries.Replace(ctx, snapshot.Entries, snapshot.Notes); err != nil {
		return ImportResult{}, err
	}
	monthly := make(map[string]goal.Goal, len(snapshot.Goals.Monthly))
	for month, monthGoal := range snapshot.Goals.Monthly {
		monthly[month] = goal.Goal{TargetHours: monthGoal.Hours, TargetEarnings: monthGoal.Earnings}
	}
	yearly := goal.Goal{TargetHours: snapshot.Goals.Yearly.Hours, TargetEarnings: snapshot.Goals.Yearly.Earnings}
	if err := s.goals.Replace(ctx, monthly, yearly); err != nil {
		return ImportResult{}, err
	}
	if snapshot.HourlyRate > 0 {
		if err := s.settings.SetHourlyRate(ctx, snapshot.HourlyRate); err != nil {
			return ImportResult{}, err
		}
	}

	// Replace drops non-positive hours, blank notes and malformed goal keys,
	// so the counts are read back from the stores rather than the snapshot.
	storedEntries, err := s.entries.GetAll(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	storedNotes, err := s.entries.GetAllNotes(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	storedMonthly, err := s.goals.GetAllMonthlyGoals(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	result := ImportResult{
		Entries:      len(storedEntries),
		Notes:        len(storedNotes),
		MonthlyGoals: len(storedMonthly),
		RateApplied:  snapshot.HourlyRate > 0,
	}
	log.Infof("imported backup with %d entries and %d notes", result.Entries, result.Notes)
	return result, nil
}

func (s *ServiceImpl) today() string {
	now := s.clock.Now()
	return datekey.Encode(now.Year(), int(now.Month()), now.Day())
}

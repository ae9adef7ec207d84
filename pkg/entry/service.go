package entry

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/workcal/workcal/pkg/datekey"
)

type Service interface {
	// Upsert stores hours for a day when hours is a finite number greater than
	// zero; any other value removes the entry for that day. Invalid values are
	// never an error, they are a deletion.
	Upsert(ctx context.Context, date string, hours float64) error
	Remove(ctx context.Context, date string) error
	GetForMonth(ctx context.Context, year int, month int) (map[string]float64, error)
	GetAll(ctx context.Context) (map[string]float64, error)
	// SetNote stores trimmed non-empty text; empty or whitespace-only text
	// removes the note.
	SetNote(ctx context.Context, date string, text string) error
	GetNote(ctx context.Context, date string) (string, error)
	GetAllNotes(ctx context.Context) (map[string]string, error)
	GetNotesForMonth(ctx context.Context, year int, month int) (map[string]string, error)
	Search(ctx context.Context, query string) ([]SearchResult, error)
	// Replace swaps all entries and notes at once, applying the same
	// upsert-or-delete and trimming rules per element. Used by backup import.
	Replace(ctx context.Context, entries map[string]float64, notes map[string]string) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Upsert(ctx context.Context, date string, hours float64) error {
	if !datekey.IsValid(date) {
		return fmt.Errorf("%w: %q", datekey.ErrInvalidFormat, date)
	}
	if !storableHours(hours) {
		log.Debugf("non-positive hours (%v) for %s, removing entry", hours, date)
		return s.repo.DeleteEntry(ctx, date)
	}
	return s.repo.StoreEntry(ctx, date, hours)
}

func (s *ServiceImpl) Remove(ctx context.Context, date string) error {
	if !datekey.IsValid(date) {
		return fmt.Errorf("%w: %q", datekey.ErrInvalidFormat, date)
	}
	return s.repo.DeleteEntry(ctx, date)
}

func (s *ServiceImpl) GetForMonth(ctx context.Context, year int, month int) (map[string]float64, error) {
	entries, err := s.repo.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	monthEntries := map[string]float64{}
	for date, hours := range entries {
		if datekey.InMonth(date, year, month) {
			monthEntries[date] = hours
		}
	}
	return monthEntries, nil
}

func (s *ServiceImpl) GetAll(ctx context.Context) (map[string]float64, error) {
	return s.repo.GetAllEntries(ctx)
}

func (s *ServiceImpl) SetNote(ctx context.Context, date string, text string) error {
	if !datekey.IsValid(date) {
		return fmt.Errorf("%w: %q", datekey.ErrInvalidFormat, date)
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return s.repo.DeleteNote(ctx, date)
	}
	return s.repo.StoreNote(ctx, date, trimmed)
}

func (s *ServiceImpl) GetNote(ctx context.Context, date string) (string, error) {
	if !datekey.IsValid(date) {
		return "", fmt.Errorf("%w: %q", datekey.ErrInvalidFormat, date)
	}
	return s.repo.GetNote(ctx, date)
}

func (s *ServiceImpl) GetAllNotes(ctx context.Context) (map[string]string, error) {
	return s.repo.GetAllNotes(ctx)
}

func (s *ServiceImpl) GetNotesForMonth(ctx context.Context, year int, month int) (map[string]string, error) {
	notes, err := s.repo.GetAllNotes(ctx)
	if err != nil {
		return nil, err
	}
	monthNotes := map[string]string{}
	for date, content := range notes {
		if datekey.InMonth(date, year, month) {
			monthNotes[date] = content
		}
	}
	return monthNotes, nil
}

// Search matches the query case-insensitively against note text and against
// the date key itself, so both "meeting" and "2026-03" find their days.
// Results are sorted by ascending date.
func (s *ServiceImpl) Search(ctx context.Context, query string) ([]SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []SearchResult{}, nil
	}

	entries, err := s.repo.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := s.repo.GetAllNotes(ctx)
	if err != nil {
		return nil, err
	}

	dates := map[string]struct{}{}
	for date := range entries {
		dates[date] = struct{}{}
	}
	for date := range notes {
		dates[date] = struct{}{}
	}

	results := make([]SearchResult, 0, len(dates))
	for date := range dates {
		if !strings.Contains(date, needle) && !strings.Contains(strings.ToLower(notes[date]), needle) {
			continue
		}
		results = append(results, SearchResult{
			Date:  date,
			Hours: entries[date],
			Note:  notes[date],
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date < results[j].Date
	})
	return results, nil
}

func (s *ServiceImpl) Replace(ctx context.Context, entries map[string]float64, notes map[string]string) error {
	cleanEntries := map[string]float64{}
	for date, hours := range entries {
		if !datekey.IsValid(date) || !storableHours(hours) {
			log.Debugf("dropping entry %s on replace", date)
			continue
		}
		cleanEntries[date] = hours
	}
	cleanNotes := map[string]string{}
	for date, text := range notes {
		trimmed := strings.TrimSpace(text)
		if !datekey.IsValid(date) || trimmed == "" {
			log.Debugf("dropping note %s on replace", date)
			continue
		}
		cleanNotes[date] = trimmed
	}
	return s.repo.ReplaceAll(ctx, cleanEntries, cleanNotes)
}

func storableHours(hours float64) bool {
	return !math.IsNaN(hours) && !math.IsInf(hours, 0) && hours > 0
}

package entry

import (
	"context"
	"maps"
)

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	entries map[string]float64
	notes   map[string]string
}

func NewStubRepository() *StubRepository {
	return &StubRepository{
		entries: map[string]float64{},
		notes:   map[string]string{},
	}
}

func (s *StubRepository) Cleanup() {
	s.entries = map[string]float64{}
	s.notes = map[string]string{}
}

func (s *StubRepository) StoreEntry(_ context.Context, date string, hours float64) error {
	s.entries[date] = hours
	return nil
}

func (s *StubRepository) DeleteEntry(_ context.Context, date string) error {
	delete(s.entries, date)
	return nil
}

func (s *StubRepository) GetAllEntries(_ context.Context) (map[string]float64, error) {
	return maps.Clone(s.entries), nil
}

func (s *StubRepository) StoreNote(_ context.Context, date string, content string) error {
	s.notes[date] = content
	return nil
}

func (s *StubRepository) DeleteNote(_ context.Context, date string) error {
	delete(s.notes, date)
	return nil
}

func (s *StubRepository) GetNote(_ context.Context, date string) (string, error) {
	return s.notes[date], nil
}

func (s *StubRepository) GetAllNotes(_ context.Context) (map[string]string, error) {
	return maps.Clone(s.notes), nil
}

func (s *StubRepository) ReplaceAll(_ context.Context, entries map[string]float64, notes map[string]string) error {
	s.entries = maps.Clone(entries)
	s.notes = maps.Clone(notes)
	return nil
}

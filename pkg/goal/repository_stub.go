package goal

import (
	"context"
	"maps"
)

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	monthly map[string]Goal
	yearly  Goal
}

func NewStubRepository() *StubRepository {
	return &StubRepository{monthly: map[string]Goal{}}
}

func (s *StubRepository) Cleanup() {
	s.monthly = map[string]Goal{}
	s.yearly = Goal{}
}

func (s *StubRepository) StoreMonthly(_ context.Context, month string, goal Goal) error {
	s.monthly[month] = goal
	return nil
}

func (s *StubRepository) GetMonthly(_ context.Context, month string) (Goal, error) {
	return s.monthly[month], nil
}

func (s *StubRepository) GetAllMonthly(_ context.Context) (map[string]Goal, error) {
	return maps.Clone(s.monthly), nil
}

func (s *StubRepository) StoreYearly(_ context.Context, goal Goal) error {
	s.yearly = goal
	return nil
}

func (s *StubRepository) GetYearly(_ context.Context) (Goal, error) {
	return s.yearly, nil
}

func (s *StubRepository) ReplaceAll(_ context.Context, monthly map[string]Goal, yearly Goal) error {
	s.monthly = maps.Clone(monthly)
	s.yearly = yearly
	return nil
}

package settings

import "context"

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	values map[string]string
}

func NewStubRepository() *StubRepository {
	return &StubRepository{values: map[string]string{}}
}

func (s *StubRepository) Cleanup() {
	s.values = map[string]string{}
}

func (s *StubRepository) GetValue(_ context.Context, key string) (string, error) {
	return s.values[key], nil
}

func (s *StubRepository) SetValue(_ context.Context, key string, value string) error {
	s.values[key] = value
	return nil
}

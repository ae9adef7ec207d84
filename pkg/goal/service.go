package goal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/workcal/workcal/pkg/datekey"
)

type Service interface {
	// SetMonthlyGoal stores a goal for the month identified by any date key
	// within it; the key is normalized to the first day of the month. Target
	// values are parsed as numbers and default to 0 when unparseable.
	// Negative targets are accepted as-is; goal editing is deliberately
	// permissive and progress treats them the same as "no goal".
	SetMonthlyGoal(ctx context.Context, monthKey string, targetHours string, targetEarnings string) (Goal, error)
	SetYearlyGoal(ctx context.Context, targetHours string, targetEarnings string) (Goal, error)
	GetMonthlyGoal(ctx context.Context, monthKey string) (Goal, error)
	GetAllMonthlyGoals(ctx context.Context) (map[string]Goal, error)
	GetYearlyGoal(ctx context.Context) (Goal, error)
	// Replace swaps all goal records, keeping only monthly keys that are valid
	// date keys. Used by backup import.
	Replace(ctx context.Context, monthly map[string]Goal, yearly Goal) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) SetMonthlyGoal(ctx context.Context, monthKey string, targetHours string, targetEarnings string) (Goal, error) {
	month, err := normalizeMonthKey(monthKey)
	if err != nil {
		return Goal{}, err
	}
	goal := Goal{
		TargetHours:    parseTarget(targetHours),
		TargetEarnings: parseTarget(targetEarnings),
	}
	if err := s.repo.StoreMonthly(ctx, month, goal); err != nil {
		return Goal{}, err
	}
	return goal, nil
}

func (s *ServiceImpl) SetYearlyGoal(ctx context.Context, targetHours string, targetEarnings string) (Goal, error) {
	goal := Goal{
		TargetHours:    parseTarget(targetHours),
		TargetEarnings: parseTarget(targetEarnings),
	}
	if err := s.repo.StoreYearly(ctx, goal); err != nil {
		return Goal{}, err
	}
	return goal, nil
}

func (s *ServiceImpl) GetMonthlyGoal(ctx context.Context, monthKey string) (Goal, error) {
	month, err := normalizeMonthKey(monthKey)
	if err != nil {
		return Goal{}, err
	}
	return s.repo.GetMonthly(ctx, month)
}

func (s *ServiceImpl) GetAllMonthlyGoals(ctx context.Context) (map[string]Goal, error) {
	return s.repo.GetAllMonthly(ctx)
}

func (s *ServiceImpl) GetYearlyGoal(ctx context.Context) (Goal, error) {
	return s.repo.GetYearly(ctx)
}

func (s *ServiceImpl) Replace(ctx context.Context, monthly map[string]Goal, yearly Goal) error {
	clean := map[string]Goal{}
	for key, goal := range monthly {
		month, err := normalizeMonthKey(key)
		if err != nil {
			log.Debugf("dropping monthly goal with malformed key %q on replace", key)
			continue
		}
		clean[month] = goal
	}
	return s.repo.ReplaceAll(ctx, clean, yearly)
}

// normalizeMonthKey pins any valid date key to the first day of its month.
func normalizeMonthKey(key string) (string, error) {
	year, month, _, err := datekey.Decode(key)
	if err != nil {
		return "", fmt.Errorf("invalid month key: %w", err)
	}
	return datekey.MonthKey(year, month), nil
}

// parseTarget mirrors the permissive number handling of the goal editor:
// anything unparseable becomes 0, which means "no goal".
func parseTarget(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}

package settings

import (
	"context"
	"errors"
	"math"
	"strconv"

	log "github.com/sirupsen/logrus"
)

var ErrNegativeRate = errors.New("hourly rate must not be negative")

type Service interface {
	// GetHourlyRate returns 0 when no rate has been set.
	GetHourlyRate(ctx context.Context) (float64, error)
	SetHourlyRate(ctx context.Context, rate float64) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetHourlyRate(ctx context.Context) (float64, error) {
	value, err := s.repo.GetValue(ctx, hourlyRateKey)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		// A corrupt stored value degrades to "no rate set" instead of failing reads.
		log.Warnf("stored hourly rate %q is not a number, treating as 0", value)
		return 0, nil
	}
	return rate, nil
}

func (s *ServiceImpl) SetHourlyRate(ctx context.Context, rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return ErrNegativeRate
	}
	// The rate persists as decimal text.
	return s.repo.SetValue(ctx, hourlyRateKey, strconv.FormatFloat(rate, 'f', -1, 64))
}

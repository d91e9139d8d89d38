package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"bmitracker/internal/domain"
)

// ErrNoRecords is returned when a trend is requested for a user without
// history.
var ErrNoRecords = errors.New("no records found")

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	repo domain.RecordRepository
}

// NewChartsService creates a ChartsService backed by the given repository.
func NewChartsService(repo domain.RecordRepository) *ChartsService {
	return &ChartsService{repo: repo}
}

// TrendPoint is a single observation on a user's trend.
type TrendPoint struct {
	Timestamp time.Time       `json:"timestamp"`
	BMI       float64         `json:"bmi"`
	WeightKg  float64         `json:"weightKg"`
	HeightM   float64         `json:"heightM"`
	Category  domain.Category `json:"category"`
}

// Threshold is a horizontal reference line between two categories.
type Threshold struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Trend is the chart data for one user.
type Trend struct {
	UserID     string       `json:"userId"`
	Points     []TrendPoint `json:"points"`
	Thresholds []Threshold  `json:"thresholds"`
}

// Thresholds returns the category boundaries as labelled reference lines.
func Thresholds() []Threshold {
	cats := domain.Categories()
	out := make([]Threshold, 0, len(cats)-1)
	for i := 1; i < len(cats); i++ {
		lo, _ := cats[i].Bounds()
		out = append(out, Threshold{Value: lo, Label: string(cats[i-1]) + "/" + string(cats[i])})
	}
	return out
}

// Trend returns BMI and weight series for userID in chronological order.
func (s *ChartsService) Trend(ctx context.Context, userID string) (*Trend, error) {
	userID = strings.TrimSpace(userID)
	recs, err := s.repo.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}

	points := make([]TrendPoint, 0, len(recs))
	for _, r := range recs {
		points = append(points, TrendPoint{
			Timestamp: r.Timestamp,
			BMI:       domain.RoundBMI(r.BMI),
			WeightKg:  r.WeightKg,
			HeightM:   r.HeightM,
			Category:  r.Category,
		})
	}
	return &Trend{UserID: userID, Points: points, Thresholds: Thresholds()}, nil
}

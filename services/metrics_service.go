package services

import (
	"context"

	"github.com/DevAnseSenior/daily-diet/models"

	"gorm.io/gorm"
)

type MetricsService struct {
	db *gorm.DB
}

func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db}
}

type MealMetrics struct {
	TotalMeals       int `json:"totalMeals"`
	InsideDiet       int `json:"insideDiet"`
	OutsideDiet      int `json:"outsideDiet"`
	BestDietSequence int `json:"bestDietSequence"`
}

// Summary aggregates the session's meals: totals per diet classification and
// the longest contiguous run of in-diet meals with the most recent date
// first. Same-day meals keep their insertion order within the sort.
func (s *MetricsService) Summary(ctx context.Context, sessionID string) (*MealMetrics, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("date DESC, created_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	out := &MealMetrics{TotalMeals: len(meals)}
	current := 0
	for _, m := range meals {
		if m.Diet == DietYes {
			out.InsideDiet++
			current++
		} else {
			out.OutsideDiet++
			current = 0
		}
		if current > out.BestDietSequence {
			out.BestDietSequence = current
		}
	}
	return out, nil
}

package services

import (
	"context"
	"errors"

	"github.com/DevAnseSenior/daily-diet/models"
	"github.com/DevAnseSenior/daily-diet/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DietYes = "yes"
	DietNo  = "no"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// MealInput is the request payload shared by create and update.
type MealInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Hour        string `json:"hour" binding:"required"`
	Diet        string `json:"diet" binding:"required"`
}

// normalized checks the format-bearing fields and returns a copy with the
// date reduced to its YYYY-MM-DD form, discarding any time-of-day component.
func (in MealInput) normalized() (MealInput, error) {
	date, err := utils.NormalizeDate(in.Date)
	if err != nil {
		return in, &ValidationError{Field: "date", Reason: "must be a valid calendar date"}
	}
	in.Date = date
	if !utils.ValidHour(in.Hour) {
		return in, &ValidationError{Field: "hour", Reason: "must be a valid HH:MM:SS time"}
	}
	if in.Diet != DietYes && in.Diet != DietNo {
		return in, &ValidationError{Field: "diet", Reason: `must be "yes" or "no"`}
	}
	return in, nil
}

// CreateMeal validates the input and stores a new meal bound to sessionID.
func (s *MealService) CreateMeal(ctx context.Context, sessionID string, in MealInput) (*models.Meal, error) {
	in, err := in.normalized()
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		Hour:        in.Hour,
		Diet:        in.Diet,
		SessionID:   sessionID,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// ListMeals returns the session's meals in insertion order.
func (s *MealService) ListMeals(ctx context.Context, sessionID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

// GetMeal returns the meal matching (sessionID, id), or nil when no such row
// is visible to the caller. A meal owned by another session is reported the
// same way as a missing one.
func (s *MealService) GetMeal(ctx context.Context, sessionID, id string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", id, sessionID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal replaces all mutable fields of the meal matching (sessionID, id).
// When nothing matches it succeeds without effect.
func (s *MealService) UpdateMeal(ctx context.Context, sessionID, id string, in MealInput) error {
	in, err := in.normalized()
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ? AND session_id = ?", id, sessionID).
		Updates(map[string]interface{}{
			"name":        in.Name,
			"description": in.Description,
			"date":        in.Date,
			"hour":        in.Hour,
			"diet":        in.Diet,
		}).Error
}

// DeleteMeal removes the meal matching (sessionID, id); deleting a meal that
// is absent or not owned by the caller is a no-op.
func (s *MealService) DeleteMeal(ctx context.Context, sessionID, id string) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", id, sessionID).
		Delete(&models.Meal{}).Error
}

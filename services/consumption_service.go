package services

import (
	"time"

	"github.com/RaulSimioni/Nutrimath/models"

	"gorm.io/gorm"
)

type ConsumptionService struct{ db *gorm.DB }

func NewConsumptionService(db *gorm.DB) *ConsumptionService {
	return &ConsumptionService{db: db}
}

// Append stores a consumption row. Calories arrive precomputed from the
// caller; this layer does no validation and no catalog lookups.
func (s *ConsumptionService) Append(userID, foodID uint, portionSizeGrams, calories int) error {
	entry := models.FoodConsumption{
		UserID:           userID,
		FoodID:           foodID,
		PortionSizeGrams: portionSizeGrams,
		Calories:         calories,
		ConsumedAt:       time.Now(),
	}
	return s.db.Create(&entry).Error
}

// ListForDay returns the user's entries whose ConsumedAt falls on the
// given calendar day.
func (s *ConsumptionService) ListForDay(userID uint, day time.Time) ([]models.FoodConsumption, error) {
	var entries []models.FoodConsumption
	err := s.db.
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?",
			userID, dayStart(day), dayStart(day).AddDate(0, 0, 1)).
		Order("consumed_at ASC").
		Find(&entries).Error
	return entries, err
}

// Remove hard-deletes an entry. Removing an id that does not exist is a
// no-op, not an error.
func (s *ConsumptionService) Remove(entryID uint) error {
	return s.db.Unscoped().Delete(&models.FoodConsumption{}, entryID).Error
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

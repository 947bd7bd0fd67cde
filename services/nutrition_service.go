package services

import (
	"errors"
	"time"

	"github.com/RaulSimioni/Nutrimath/models"
	"github.com/RaulSimioni/Nutrimath/utils"

	"gorm.io/gorm"
)

var (
	ErrFoodNotFound   = errors.New("food not found")
	ErrInvalidPortion = errors.New("portion size must be at least 1 gram")
)

type NutritionService struct {
	db    *gorm.DB
	foods *FoodService
	log   *ConsumptionService
	hub   *RealtimeHub
}

// hub may be nil (seeding, tests without websocket clients).
func NewNutritionService(db *gorm.DB, hub *RealtimeHub) *NutritionService {
	return &NutritionService{
		db:    db,
		foods: NewFoodService(db),
		log:   NewConsumptionService(db),
		hub:   hub,
	}
}

// SummaryItem pairs a consumption row with its resolved catalog entry.
// Food is nil when the catalog row no longer exists; the entry's stored
// calories still count toward the total.
type SummaryItem struct {
	models.FoodConsumption
	Food *models.Food `json:"food"`
}

type DailyTotals struct {
	Calories                 int `json:"calories"`
	Protein                  int `json:"protein"`
	Carbs                    int `json:"carbs"`
	Fat                      int `json:"fat"`
	EstimatedWeightGainGrams int `json:"estimatedWeightGainGrams"`
}

type DailySummary struct {
	Items  []SummaryItem `json:"items"`
	Totals DailyTotals   `json:"totals"`
}

type WeightGain struct {
	WeightGainGrams int    `json:"weightGainGrams"`
	WeightGainKg    string `json:"weightGainKg"`
}

// RecordConsumption resolves the food, snapshots the portion calories onto
// a new log entry and returns them. The snapshot is what daily totals sum
// later; catalog edits never rewrite history.
func (s *NutritionService) RecordConsumption(userID, foodID uint, portionSizeGrams int) (int, error) {
	if portionSizeGrams < 1 {
		return 0, ErrInvalidPortion
	}

	food, err := s.foods.GetByID(foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrFoodNotFound
		}
		return 0, err
	}

	calories := utils.PortionCalories(food.CaloriesPer100g, portionSizeGrams)
	if err := s.log.Append(userID, foodID, portionSizeGrams, calories); err != nil {
		return 0, err
	}

	s.broadcastSummary(userID)
	return calories, nil
}

// TodaySummary recomputes the user's totals for the current calendar day
// from source rows on every call. Calories are summed from the stored
// per-entry snapshots; protein/carbs/fat are rounded per entry before
// summing, matching how the calorie snapshot itself was computed.
func (s *NutritionService) TodaySummary(userID uint) (*DailySummary, error) {
	entries, err := s.log.ListForDay(userID, time.Now())
	if err != nil {
		return nil, err
	}

	foodIndex, err := s.foodsByID(entries)
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{Items: make([]SummaryItem, 0, len(entries))}
	for _, entry := range entries {
		food := foodIndex[entry.FoodID]
		summary.Items = append(summary.Items, SummaryItem{FoodConsumption: entry, Food: food})

		summary.Totals.Calories += entry.Calories
		if food != nil {
			summary.Totals.Protein += utils.PortionNutrient(food.Protein, entry.PortionSizeGrams)
			summary.Totals.Carbs += utils.PortionNutrient(food.Carbs, entry.PortionSizeGrams)
			summary.Totals.Fat += utils.PortionNutrient(food.Fat, entry.PortionSizeGrams)
		}
	}
	summary.Totals.EstimatedWeightGainGrams = utils.WeightGainGrams(float64(summary.Totals.Calories))

	return summary, nil
}

// RemoveConsumption hard-deletes an entry; the next summary read simply
// omits it. Unknown ids are a no-op.
func (s *NutritionService) RemoveConsumption(userID, entryID uint) error {
	if err := s.log.Remove(entryID); err != nil {
		return err
	}
	s.broadcastSummary(userID)
	return nil
}

// EstimateWeightGain is pure and stateless so callers can run hypothetical
// "what if I ate N kcal" numbers without touching the log.
func (s *NutritionService) EstimateWeightGain(totalCalories float64) WeightGain {
	grams := utils.WeightGainGrams(totalCalories)
	return WeightGain{WeightGainGrams: grams, WeightGainKg: utils.WeightGainKg(grams)}
}

func (s *NutritionService) foodsByID(entries []models.FoodConsumption) (map[uint]*models.Food, error) {
	index := make(map[uint]*models.Food, len(entries))
	if len(entries) == 0 {
		return index, nil
	}

	ids := make([]uint, 0, len(entries))
	for _, entry := range entries {
		if _, seen := index[entry.FoodID]; !seen {
			index[entry.FoodID] = nil
			ids = append(ids, entry.FoodID)
		}
	}

	var foods []models.Food
	if err := s.db.Find(&foods, ids).Error; err != nil {
		return nil, err
	}
	for i := range foods {
		index[foods[i].ID] = &foods[i]
	}
	return index, nil
}

func (s *NutritionService) broadcastSummary(userID uint) {
	if s.hub == nil {
		return
	}
	summary, err := s.TodaySummary(userID)
	if err != nil {
		return
	}
	s.hub.BroadcastSummary(userID, summary)
}

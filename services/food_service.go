package services

import (
	"log"
	"sort"

	"github.com/RaulSimioni/Nutrimath/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// Catalog reads are best-effort reference data: when storage is
// unavailable the UI should keep working with an empty catalog, so these
// methods log failures and return empty slices instead of erroring.

func (s *FoodService) ListAll() []models.Food {
	var foods []models.Food
	if err := s.db.Find(&foods).Error; err != nil {
		log.Printf("food catalog unavailable: %v", err)
		return []models.Food{}
	}
	return foods
}

// ListByCategory matches the category exactly, case-sensitive.
func (s *FoodService) ListByCategory(category string) []models.Food {
	var foods []models.Food
	if err := s.db.Where("category = ?", category).Find(&foods).Error; err != nil {
		log.Printf("food catalog unavailable: %v", err)
		return []models.Food{}
	}
	return foods
}

// Search returns foods whose name contains query as a case-insensitive
// substring. An empty query matches everything; minimum-length rules are a
// UI concern.
func (s *FoodService) Search(query string) []models.Food {
	var foods []models.Food
	if err := s.db.
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Find(&foods).Error; err != nil {
		log.Printf("food search unavailable: %v", err)
		return []models.Food{}
	}
	return foods
}

// ListCategories returns the distinct category labels in ascending order.
func (s *FoodService) ListCategories() []string {
	var categories []string
	if err := s.db.
		Model(&models.Food{}).
		Distinct("category").
		Pluck("category", &categories).Error; err != nil {
		log.Printf("food categories unavailable: %v", err)
		return []string{}
	}
	sort.Strings(categories)
	return categories
}

// GetByID is the one catalog read that must fail loudly: recording a
// consumption against a missing food is a NotFound, not a degraded read.
func (s *FoodService) GetByID(id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

package models

import "gorm.io/gorm"

// Persisted daily rollup. The table exists for future use; the live
// summary endpoint recomputes from consumption rows on every read and
// never maintains this as a cache.
type DailyNutritionSummary struct {
	gorm.Model
	UserID                   uint   `gorm:"index;not null" json:"userId"`
	Date                     string `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	TotalCalories            int    `gorm:"not null;default:0" json:"totalCalories"`
	TotalProtein             int    `gorm:"not null;default:0" json:"totalProtein"`
	TotalCarbs               int    `gorm:"not null;default:0" json:"totalCarbs"`
	TotalFat                 int    `gorm:"not null;default:0" json:"totalFat"`
	EstimatedWeightGainGrams int    `gorm:"not null;default:0" json:"estimatedWeightGainGrams"`
}

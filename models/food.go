package models

import "gorm.io/gorm"

// A catalog entry. Nutrient values are grams per 100g; nil means the value
// is unknown for that food and aggregation treats it as zero.
type Food struct {
	gorm.Model
	Name            string `gorm:"not null" json:"name"`
	Category        string `gorm:"not null;index" json:"category"`
	CaloriesPer100g int    `gorm:"not null" json:"caloriesPer100g"`
	Protein         *int   `json:"protein"`
	Carbs           *int   `json:"carbs"`
	Fat             *int   `json:"fat"`
	Fiber           *int   `json:"fiber"`
}

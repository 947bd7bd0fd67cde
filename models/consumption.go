package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged portion. Calories is computed from the catalog at creation
// time and stored denormalized so later catalog edits never rewrite
// historical totals.
type FoodConsumption struct {
	gorm.Model
	UserID           uint      `gorm:"index;not null" json:"userId"`
	FoodID           uint      `gorm:"not null" json:"foodId"`
	PortionSizeGrams int       `gorm:"not null" json:"portionSizeGrams"`
	Calories         int       `gorm:"not null" json:"calories"`
	ConsumedAt       time.Time `gorm:"index;not null" json:"consumedAt"`
}

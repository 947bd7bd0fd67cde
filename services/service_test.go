package services

import (
	"testing"

	"github.com/RaulSimioni/Nutrimath/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// a pooled second connection would get its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.FoodConsumption{},
		&models.DailyNutritionSummary{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func intPtr(v int) *int { return &v }

func seedFood(t *testing.T, db *gorm.DB, name, category string, kcal int, protein, carbs, fat, fiber *int) models.Food {
	t.Helper()
	food := models.Food{
		Name:            name,
		Category:        category,
		CaloriesPer100g: kcal,
		Protein:         protein,
		Carbs:           carbs,
		Fat:             fat,
		Fiber:           fiber,
	}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food %q: %v", name, err)
	}
	return food
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/RaulSimioni/Nutrimath/models"
)

func TestRecordConsumption(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db, nil)
	chicken := seedFood(t, db, "Peito de Frango", "Proteínas", 165, intPtr(31), intPtr(0), intPtr(4), intPtr(0))

	calories, err := svc.RecordConsumption(models.AnonymousUserID, chicken.ID, 200)
	if err != nil {
		t.Fatalf("RecordConsumption: %v", err)
	}
	if calories != 330 {
		t.Fatalf("calories = %d, want 330", calories)
	}

	var entry models.FoodConsumption
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("load stored entry: %v", err)
	}
	if entry.Calories != 330 || entry.PortionSizeGrams != 200 || entry.FoodID != chicken.ID {
		t.Fatalf("stored entry = %+v", entry)
	}
	if entry.ConsumedAt.IsZero() {
		t.Fatal("ConsumedAt not set")
	}
}

func TestRecordConsumptionUnknownFood(t *testing.T) {
	svc := NewNutritionService(newTestDB(t), nil)

	_, err := svc.RecordConsumption(models.AnonymousUserID, 999, 100)
	if !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("err = %v, want ErrFoodNotFound", err)
	}
}

func TestRecordConsumptionInvalidPortion(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db, nil)
	apple := seedFood(t, db, "Maçã", "Frutas", 52, intPtr(0), intPtr(14), intPtr(0), intPtr(2))

	for _, portion := range []int{0, -10} {
		if _, err := svc.RecordConsumption(models.AnonymousUserID, apple.ID, portion); !errors.Is(err, ErrInvalidPortion) {
			t.Fatalf("portion %d: err = %v, want ErrInvalidPortion", portion, err)
		}
	}

	var count int64
	db.Model(&models.FoodConsumption{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid portions must not reach storage, found %d rows", count)
	}
}

func TestTodaySummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db, nil)
	chicken := seedFood(t, db, "Peito de Frango", "Proteínas", 165, intPtr(31), intPtr(0), intPtr(4), intPtr(0))

	if _, err := svc.RecordConsumption(models.AnonymousUserID, chicken.ID, 200); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.TodaySummary(models.AnonymousUserID)
	if err != nil {
		t.Fatalf("TodaySummary: %v", err)
	}

	if len(summary.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(summary.Items))
	}
	if summary.Items[0].Food == nil || summary.Items[0].Food.Name != "Peito de Frango" {
		t.Fatalf("item food = %+v", summary.Items[0].Food)
	}

	want := DailyTotals{Calories: 330, Protein: 62, Carbs: 0, Fat: 8, EstimatedWeightGainGrams: 43}
	if summary.Totals != want {
		t.Fatalf("totals = %+v, want %+v", summary.Totals, want)
	}
}

func TestTodaySummarySumsStoredCalories(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db, nil)
	apple := seedFood(t, db, "Maçã", "Frutas", 52, intPtr(0), intPtr(14), intPtr(0), intPtr(2))

	if _, err := svc.RecordConsumption(models.AnonymousUserID, apple.ID, 150); err != nil {
		t.Fatal(err)
	}

	// catalog drift after the fact must not rewrite history
	if err := db.Model(&models.Food{}).
		Where("id = ?", apple.ID).
		Update("calories_per100g", 500).Error; err != nil {
		t.Fatal(err)
	}

	summary, err := svc.TodaySummary(models.AnonymousUserID)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Totals.Calories != 78 {
		t.Fatalf("calories = %d, want snapshot 78", summary.Totals.Calories)
	}
}

func TestTodaySummaryMissingFood(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db, nil)
	cheese := seedFood(t, db, "Queijo", "Proteínas", 402, intPtr(25), intPtr(1), intPtr(33), intPtr(0))

	if _, err := svc.RecordConsumption(models.AnonymousUserID, cheese.ID, 100); err != nil {
		t.Fatal(err)
	}

	// removed out-of-band; the stored calorie snapshot still counts but
	// nutrient contributions need the join and drop to zero
	if err := db.Unscoped().Delete(&models.Food{}, cheese.ID).Error; err != nil {
		t.Fatal(err)
	}

	summary, err := svc.TodaySummary(models.AnonymousUserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Items) != 1 || summary.Items[0].Food != nil {
		t.Fatalf("expected one item with nil food, got %+v", summary.Items)
	}
	want := DailyTotals{Calories: 402, Protein: 0, Carbs: 0, Fat: 0, EstimatedWeightGainGrams: 52}
	if summary.Totals != want {
		t.Fatalf("totals = %+v, want %+v", summary.Totals, want)
	}
}

func TestTodaySummaryExcludesOtherDaysAndUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db, nil)
	apple := seedFood(t, db, "Maçã", "Frutas", 52, intPtr(0), intPtr(14), intPtr(0), intPtr(2))

	if _, err := svc.RecordConsumption(models.AnonymousUserID, apple.ID, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordConsumption(models.AnonymousUserID, apple.ID, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordConsumption(2, apple.ID, 100); err != nil {
		t.Fatal(err)
	}

	// push one entry into yesterday's bucket
	var first models.FoodConsumption
	if err := db.First(&first).Error; err != nil {
		t.Fatal(err)
	}
	yesterday := time.Now().AddDate(0, 0, -1)
	if err := db.Model(&first).Update("consumed_at", yesterday).Error; err != nil {
		t.Fatal(err)
	}

	summary, err := svc.TodaySummary(models.AnonymousUserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("items = %d, want 1 (yesterday and other users excluded)", len(summary.Items))
	}
	if summary.Totals.Calories != 52 {
		t.Fatalf("calories = %d, want 52", summary.Totals.Calories)
	}
}

func TestRemoveConsumption(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db, nil)
	apple := seedFood(t, db, "Maçã", "Frutas", 52, intPtr(0), intPtr(14), intPtr(0), intPtr(2))

	if _, err := svc.RecordConsumption(models.AnonymousUserID, apple.ID, 150); err != nil {
		t.Fatal(err)
	}
	var entry models.FoodConsumption
	if err := db.First(&entry).Error; err != nil {
		t.Fatal(err)
	}

	if err := svc.RemoveConsumption(models.AnonymousUserID, entry.ID); err != nil {
		t.Fatalf("RemoveConsumption: %v", err)
	}

	summary, err := svc.TodaySummary(models.AnonymousUserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Items) != 0 || summary.Totals != (DailyTotals{}) {
		t.Fatalf("summary after delete = %+v", summary)
	}

	// deleting an id that never existed is a no-op
	if err := svc.RemoveConsumption(models.AnonymousUserID, 9999); err != nil {
		t.Fatalf("removing unknown id: %v", err)
	}
}

func TestEstimateWeightGain(t *testing.T) {
	svc := NewNutritionService(newTestDB(t), nil)

	cases := []struct {
		calories float64
		grams    int
		kg       string
	}{
		{0, 0, "0.00"},
		{7700, 1000, "1.00"},
		{330, 43, "0.04"},
		{3850, 500, "0.50"},
	}

	for _, tc := range cases {
		got := svc.EstimateWeightGain(tc.calories)
		if got.WeightGainGrams != tc.grams || got.WeightGainKg != tc.kg {
			t.Fatalf("EstimateWeightGain(%v) = %+v, want {%d %q}",
				tc.calories, got, tc.grams, tc.kg)
		}
	}
}

package main

import (
	"log"

	"github.com/RaulSimioni/Nutrimath/config"
	"github.com/RaulSimioni/Nutrimath/models"
)

type seedFood struct {
	name            string
	category        string
	caloriesPer100g int
	protein         int
	carbs           int
	fat             int
	fiber           int
}

var foodsData = []seedFood{
	// Frutas
	{"Maçã", "Frutas", 52, 0, 14, 0, 2},
	{"Banana", "Frutas", 89, 1, 23, 0, 3},
	{"Laranja", "Frutas", 47, 1, 12, 0, 2},
	{"Morango", "Frutas", 32, 1, 8, 0, 2},
	{"Melancia", "Frutas", 30, 1, 8, 0, 0},
	{"Abacaxi", "Frutas", 50, 0, 13, 0, 1},
	{"Uva", "Frutas", 67, 1, 17, 0, 1},
	{"Pêra", "Frutas", 57, 0, 15, 0, 2},

	// Vegetais
	{"Alface", "Vegetais", 15, 1, 3, 0, 1},
	{"Tomate", "Vegetais", 18, 1, 4, 0, 1},
	{"Cenoura", "Vegetais", 41, 1, 10, 0, 3},
	{"Brócolis", "Vegetais", 34, 3, 7, 0, 2},
	{"Couve-flor", "Vegetais", 25, 2, 5, 0, 2},
	{"Espinafre", "Vegetais", 23, 3, 4, 0, 1},
	{"Abóbora", "Vegetais", 26, 1, 6, 0, 1},
	{"Batata", "Vegetais", 77, 2, 17, 0, 2},

	// Proteínas
	{"Peito de Frango", "Proteínas", 165, 31, 0, 4, 0},
	{"Carne Vermelha", "Proteínas", 250, 26, 0, 17, 0},
	{"Peixe Salmão", "Proteínas", 208, 20, 0, 13, 0},
	{"Ovo", "Proteínas", 155, 13, 1, 11, 0},
	{"Iogurte Grego", "Proteínas", 59, 10, 3, 0, 0},
	{"Queijo", "Proteínas", 402, 25, 1, 33, 0},
	{"Leite Integral", "Proteínas", 61, 3, 5, 3, 0},
	{"Feijão", "Proteínas", 127, 9, 23, 0, 6},

	// Carboidratos
	{"Arroz Branco", "Carboidratos", 130, 3, 28, 0, 0},
	{"Arroz Integral", "Carboidratos", 111, 3, 23, 1, 4},
	{"Pão Branco", "Carboidratos", 265, 9, 49, 3, 2},
	{"Pão Integral", "Carboidratos", 247, 9, 41, 3, 7},
	{"Macarrão", "Carboidratos", 131, 5, 25, 1, 2},
	{"Batata-doce", "Carboidratos", 86, 2, 20, 0, 3},
	{"Aveia", "Carboidratos", 389, 17, 66, 7, 11},
	{"Mel", "Carboidratos", 304, 0, 82, 0, 0},

	// Gorduras e Óleos
	{"Azeite de Oliva", "Gorduras", 884, 0, 0, 100, 0},
	{"Amendoim", "Gorduras", 567, 26, 20, 49, 6},
	{"Castanha de Caju", "Gorduras", 553, 18, 30, 44, 3},
	{"Abacate", "Gorduras", 160, 2, 9, 15, 7},
	{"Nozes", "Gorduras", 654, 9, 14, 65, 7},
	{"Manteiga", "Gorduras", 717, 1, 0, 81, 0},

	// Bebidas
	{"Suco de Laranja", "Bebidas", 45, 1, 11, 0, 0},
	{"Café", "Bebidas", 0, 0, 0, 0, 0},
	{"Chá Verde", "Bebidas", 0, 0, 0, 0, 0},
	{"Refrigerante", "Bebidas", 42, 0, 11, 0, 0},
}

func main() {
	config.InitDB()

	anon := models.User{OpenID: "anonymous", Name: "Anonymous"}
	if err := config.DB.
		Where("open_id = ?", anon.OpenID).
		FirstOrCreate(&anon).Error; err != nil {
		log.Fatalf("Failed to ensure anonymous user: %v", err)
	}

	var count int64
	if err := config.DB.Model(&models.Food{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to inspect food catalog: %v", err)
	}
	if count > 0 {
		log.Printf("Food catalog already has %d entries, nothing to do", count)
		return
	}

	for _, f := range foodsData {
		food := models.Food{
			Name:            f.name,
			Category:        f.category,
			CaloriesPer100g: f.caloriesPer100g,
			Protein:         intPtr(f.protein),
			Carbs:           intPtr(f.carbs),
			Fat:             intPtr(f.fat),
			Fiber:           intPtr(f.fiber),
		}
		if err := config.DB.Create(&food).Error; err != nil {
			log.Fatalf("Failed to insert %q: %v", f.name, err)
		}
	}
	log.Printf("Seeded %d foods", len(foodsData))
}

func intPtr(v int) *int { return &v }

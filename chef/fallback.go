package chef

import (
	"fmt"
	"math"
	"strings"
	"time"

	"chef-backend/models"
)

var (
	meatWords   = []string{"pui", "porc", "vita", "carne", "sunca", "salam", "carnati"}
	veggieWords = []string{"rosii", "cartofi", "ceapa", "morcov", "ardei", "varza", "legume"}
	dairyWords  = []string{"lapte", "iaurt", "smantana", "branza", "cascaval", "unt"}
)

func matchAny(name string, words []string) bool {
	n := strings.ToLower(name)
	for _, w := range words {
		if strings.Contains(n, w) {
			return true
		}
	}
	return false
}

func filterByWords(products []models.Offer, words []string) []models.Offer {
	var out []models.Offer
	for _, p := range products {
		if matchAny(p.Name, words) {
			out = append(out, p)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GenerateFallbackRecipes is the deterministic local substitute for the AI
// orchestrator: template recipes assembled from whatever offer categories
// are present. Returns nil for an empty product list.
func GenerateFallbackRecipes(products []models.Offer, kind string) []models.Recipe {
	if len(products) == 0 {
		return nil
	}

	now := time.Now()
	var recipes []models.Recipe

	meat := filterByWords(products, meatWords)
	veggies := filterByWords(products, veggieWords)
	dairy := filterByWords(products, dairyWords)

	if len(meat) > 0 {
		p := meat[0]
		cost := p.NewPrice + 8
		recipes = append(recipes, models.Recipe{
			ID:          1,
			Name:        fmt.Sprintf("%s la tigaie cu legume", strings.Fields(p.Name)[0]),
			Description: "Rețetă rapidă și gustoasă pentru toată familia",
			Ingredients: []models.Ingredient{
				{Name: p.Name, Quantity: "500g", Price: p.NewPrice, FromOffer: true},
				{Name: "Ceapă", Quantity: "2 bucăți", Price: 2, FromOffer: false},
				{Name: "Ardei gras", Quantity: "2 bucăți", Price: 3, FromOffer: false},
				{Name: "Ulei", Quantity: "3 linguri", Price: 2, FromOffer: false},
				{Name: "Condimente", Quantity: "după gust", Price: 1, FromOffer: false},
			},
			Instructions: []string{
				"Taie carnea în cuburi potrivite",
				"Încinge uleiul într-o tigaie mare",
				"Prăjește carnea până se rumenește",
				"Adaugă legumele tăiate și călește 10 minute",
				"Condimentează și servește fierbinte",
			},
			PrepTime:       "15 min",
			CookTime:       "25 min",
			Servings:       4,
			EstimatedCost:  round2(cost),
			CostPerServing: round2(cost / 4),
			Difficulty:     "ușor",
			Nutrition:      models.Nutrition{Calories: 380, Protein: 28, Carbs: 12, Fat: 22},
			Tags:           []string{"carne", "rapid"},
			Tips:           "Se poate servi cu orez sau cartofi",
			ImageURL:       GetRecipeImage(p.Name),
			GeneratedAt:    now,
		})
	}

	if len(veggies) > 0 || len(products) > 3 {
		items := veggies
		if len(items) == 0 {
			items = products
		}
		if len(items) > 3 {
			items = items[:3]
		}
		cost := 6.0
		ingredients := make([]models.Ingredient, 0, len(items)+3)
		for _, item := range items {
			cost += item.NewPrice
			ingredients = append(ingredients, models.Ingredient{Name: item.Name, Quantity: "300g", Price: item.NewPrice, FromOffer: true})
		}
		ingredients = append(ingredients,
			models.Ingredient{Name: "Bulion", Quantity: "2 linguri", Price: 3, FromOffer: false},
			models.Ingredient{Name: "Usturoi", Quantity: "3 căței", Price: 2, FromOffer: false},
			models.Ingredient{Name: "Ulei", Quantity: "2 linguri", Price: 1, FromOffer: false},
		)
		recipes = append(recipes, models.Recipe{
			ID:          2,
			Name:        "Tocăniță de legume de sezon",
			Description: "Mâncare sănătoasă și hrănitoare din legume proaspete",
			Ingredients: ingredients,
			Instructions: []string{
				"Spală și taie toate legumele",
				"Călește ceapa și usturoiul în ulei",
				"Adaugă legumele treptat, de la cele mai tari",
				"Toarnă bulionul diluat și lasă să fiarbă",
				"Condimentează și servește cu pâine",
			},
			PrepTime:       "20 min",
			CookTime:       "30 min",
			Servings:       4,
			EstimatedCost:  round2(cost),
			CostPerServing: round2(cost / 4),
			Difficulty:     "ușor",
			Nutrition:      models.Nutrition{Calories: 220, Protein: 6, Carbs: 35, Fat: 8},
			Tags:           []string{"vegetarian", "sănătos"},
			Tips:           "Adaugă smântână pentru extra cremozitate",
			ImageURL:       GetRecipeImage("legume"),
			GeneratedAt:    now,
		})
	}

	if len(dairy) > 0 || len(products) > 5 {
		items := dairy
		if len(items) == 0 && len(products) > 5 {
			items = products[3:5]
		}
		if len(items) > 2 {
			items = items[:2]
		}
		cost := 10.0
		ingredients := make([]models.Ingredient, 0, len(items)+3)
		for _, item := range items {
			cost += item.NewPrice
			ingredients = append(ingredients, models.Ingredient{Name: item.Name, Quantity: "250g", Price: item.NewPrice, FromOffer: true})
		}
		ingredients = append(ingredients,
			models.Ingredient{Name: "Făină", Quantity: "200g", Price: 3, FromOffer: false},
			models.Ingredient{Name: "Ouă", Quantity: "3 bucăți", Price: 5, FromOffer: false},
			models.Ingredient{Name: "Zahăr", Quantity: "50g", Price: 2, FromOffer: false},
		)
		recipes = append(recipes, models.Recipe{
			ID:          3,
			Name:        "Clătite pufoase cu sos cremos",
			Description: "Desert clasic adorat de toată lumea",
			Ingredients: ingredients,
			Instructions: []string{
				"Amestecă făina cu ouăle și laptele",
				"Bate compoziția până devine omogenă",
				"Coace clătitele într-o tigaie unsă",
				"Prepară sosul din produsele lactate",
				"Servește clătitele cu sosul deasupra",
			},
			PrepTime:       "10 min",
			CookTime:       "20 min",
			Servings:       4,
			EstimatedCost:  round2(cost),
			CostPerServing: round2(cost / 4),
			Difficulty:     "ușor",
			Nutrition:      models.Nutrition{Calories: 320, Protein: 10, Carbs: 45, Fat: 12},
			Tags:           []string{"desert", "clasic"},
			Tips:           "Se pot umple cu gem sau nutella",
			ImageURL:       GetRecipeImage("clatite"),
			GeneratedAt:    now,
		})
	}

	if len(recipes) == 0 {
		p := products[0]
		cost := p.NewPrice + 5
		recipes = append(recipes, models.Recipe{
			ID:          1,
			Name:        fmt.Sprintf("Preparat rapid cu %s", strings.Fields(p.Name)[0]),
			Description: "Rețetă simplă și gustoasă",
			Ingredients: []models.Ingredient{
				{Name: p.Name, Quantity: "400g", Price: p.NewPrice, FromOffer: true},
				{Name: "Condimente", Quantity: "după gust", Price: 2, FromOffer: false},
				{Name: "Ulei", Quantity: "2 linguri", Price: 3, FromOffer: false},
			},
			Instructions: []string{
				"Pregătește ingredientul principal",
				"Încălzește tigaia cu ulei",
				"Gătește până la consistența dorită",
				"Condimentează după gust",
				"Servește cald",
			},
			PrepTime:       "10 min",
			CookTime:       "15 min",
			Servings:       2,
			EstimatedCost:  round2(cost),
			CostPerServing: round2(cost / 2),
			Difficulty:     "foarte ușor",
			Nutrition:      models.Nutrition{Calories: 250, Protein: 15, Carbs: 20, Fat: 10},
			Tags:           []string{"rapid", "simplu"},
			Tips:           "Adaptează condimentele după preferințe",
			ImageURL:       GetRecipeImage(p.Name),
			GeneratedAt:    now,
		})
	}

	if len(recipes) > 3 {
		recipes = recipes[:3]
	}
	return recipes
}

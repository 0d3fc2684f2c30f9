package models

import (
	"time"
)

// Recipe kinds accepted by the recipe endpoints.
const (
	RecipeKindTop      = "top"
	RecipeKindCheapest = "cheapest"
	RecipeKindSelected = "selected"
	RecipeKindGeneral  = "general"
)

type Ingredient struct {
	Name      string  `json:"name"`
	Quantity  string  `json:"quantity"`
	Price     float64 `json:"price"`
	FromOffer bool    `json:"from_offer"`
}

type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Recipe is derived data, generated from the current offer set. It is never
// persisted row by row, only as part of the RecipeCacheBlob.
type Recipe struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Ingredients    []Ingredient `json:"ingredients"`
	Instructions   []string     `json:"instructions"`
	PrepTime       string       `json:"prep_time"`
	CookTime       string       `json:"cook_time"`
	Servings       int          `json:"servings"`
	EstimatedCost  float64      `json:"estimated_cost"`
	CostPerServing float64      `json:"cost_per_serving"`
	Difficulty     string       `json:"difficulty"`
	Nutrition      Nutrition    `json:"nutrition"`
	Tags           []string     `json:"tags"`
	Tips           string       `json:"tips"`
	ImageURL       string       `json:"image_url"`
	GeneratedAt    time.Time    `json:"generated_at"`
}

// RecipeCacheBlob is the single durable row backing the recipe cache.
// The recipe lists are stored as JSON text and the whole row is replaced
// wholesale on every regeneration.
type RecipeCacheBlob struct {
	ID              uint       `gorm:"primaryKey"`
	TopRecipes      string     `gorm:"type:text"`
	CheapestRecipes string     `gorm:"type:text"`
	LastUpdated     *time.Time `gorm:""`
}

package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"chef-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const recipeCacheRowID = 1

// RecipeCacheRepository persists the recipe cache as a single row that is
// replaced wholesale on every save.
type RecipeCacheRepository struct {
	db *gorm.DB
}

func NewRecipeCacheRepository(db *gorm.DB) *RecipeCacheRepository {
	return &RecipeCacheRepository{db: db}
}

// Save overwrites the cache blob.
func (r *RecipeCacheRepository) Save(top, cheapest []models.Recipe, lastUpdated *time.Time) error {
	topJSON, err := json.Marshal(top)
	if err != nil {
		return fmt.Errorf("failed to marshal top recipes: %w", err)
	}
	cheapestJSON, err := json.Marshal(cheapest)
	if err != nil {
		return fmt.Errorf("failed to marshal cheapest recipes: %w", err)
	}

	blob := models.RecipeCacheBlob{
		ID:              recipeCacheRowID,
		TopRecipes:      string(topJSON),
		CheapestRecipes: string(cheapestJSON),
		LastUpdated:     lastUpdated,
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("failed to save recipe cache: %w", err)
	}
	return nil
}

// Load reads the cache blob back. A missing row or malformed JSON is not an
// error: it comes back as an empty cache with LastUpdated nil, which the
// freshness controller treats as absent.
func (r *RecipeCacheRepository) Load() (top, cheapest []models.Recipe, lastUpdated *time.Time, err error) {
	var blob models.RecipeCacheBlob
	result := r.db.First(&blob, recipeCacheRowID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil, nil, nil
		}
		return nil, nil, nil, fmt.Errorf("failed to load recipe cache: %w", result.Error)
	}

	if err := json.Unmarshal([]byte(blob.TopRecipes), &top); err != nil {
		log.Printf("⚠️ Malformed cached top recipes, treating cache as absent: %v", err)
		return nil, nil, nil, nil
	}
	if err := json.Unmarshal([]byte(blob.CheapestRecipes), &cheapest); err != nil {
		log.Printf("⚠️ Malformed cached cheapest recipes, treating cache as absent: %v", err)
		return nil, nil, nil, nil
	}
	return top, cheapest, blob.LastUpdated, nil
}

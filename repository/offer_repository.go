package repository

import (
	"fmt"
	"time"

	"chef-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OfferRepository is the durable keyed store of current offers.
type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// offerUpdateColumns are the mutable fields replaced on re-ingestion.
// created_at is deliberately absent so the original ingestion time survives.
var offerUpdateColumns = []string{
	"name", "old_price", "new_price", "store", "category",
	"image_url", "valid_until", "discount_percentage", "updated_at",
}

// Upsert inserts new offers and replaces the mutable fields of known ones.
// Each offer is written on its own; a failure aborts the pass but rows
// already written stay valid.
func (r *OfferRepository) Upsert(offers []models.Offer) error {
	now := time.Now()
	for i := range offers {
		offer := offers[i]
		offer.CreatedAt = now
		offer.UpdatedAt = now

		err := r.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(offerUpdateColumns),
		}).Create(&offer).Error
		if err != nil {
			return fmt.Errorf("failed to upsert offer %s: %w", offer.ID, err)
		}
	}
	return nil
}

// QueryCurrent returns non-expired offers, best discount first.
func (r *OfferRepository) QueryCurrent() ([]models.Offer, error) {
	today := time.Now().Truncate(24 * time.Hour)

	var offers []models.Offer
	err := r.db.
		Where("valid_until >= ?", today).
		Order("discount_percentage DESC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	return offers, nil
}

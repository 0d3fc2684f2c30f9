package models

import (
	"time"
)

// Offer is one normalized retailer promotion. The ID is derived from
// (name, store, new price), so re-scraping the same promotion collapses
// into a single row.
type Offer struct {
	ID                 string    `json:"id" gorm:"primaryKey;size:32"`
	Name               string    `json:"name" gorm:"not null" validate:"required,min=3"`
	OldPrice           float64   `json:"old_price" validate:"omitempty,gtfield=NewPrice"`
	NewPrice           float64   `json:"new_price" gorm:"not null" validate:"required,gt=0"`
	Store              string    `json:"store" gorm:"not null" validate:"required"`
	Category           string    `json:"category"`
	ImageURL           string    `json:"image_url"`
	ValidUntil         time.Time `json:"valid_until"`
	DiscountPercentage int       `json:"discount_percentage" validate:"gte=0,lte=100"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CalculateDiscount is floor(100*(old-new)/old), 0 when the old price is
// unknown.
func CalculateDiscount(oldPrice, newPrice float64) int {
	if oldPrice <= 0 {
		return 0
	}
	return int(((oldPrice - newPrice) / oldPrice) * 100)
}

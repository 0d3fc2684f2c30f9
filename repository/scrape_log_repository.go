package repository

import (
	"fmt"
	"time"

	"chef-backend/models"

	"gorm.io/gorm"
)

// ScrapeLogRepository appends audit records for adapter runs. Write-only in
// normal operation; reads exist for the admin diagnostics endpoint.
type ScrapeLogRepository struct {
	db *gorm.DB
}

func NewScrapeLogRepository(db *gorm.DB) *ScrapeLogRepository {
	return &ScrapeLogRepository{db: db}
}

// Append records one adapter invocation.
func (r *ScrapeLogRepository) Append(source string, count int, status string, errMsg string) error {
	entry := models.ScrapeLogEntry{
		Timestamp:    time.Now(),
		Source:       source,
		OffersCount:  count,
		Status:       status,
		ErrorMessage: errMsg,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to append scrape log: %w", err)
	}
	return nil
}

// Recent returns the newest entries, newest first.
func (r *ScrapeLogRepository) Recent(limit int) ([]models.ScrapeLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.ScrapeLogEntry
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read scrape log: %w", err)
	}
	return entries, nil
}

package models

import (
	"time"
)

// Scrape statuses recorded per adapter invocation.
const (
	ScrapeStatusSuccess = "success"
	ScrapeStatusEmpty   = "empty"
	ScrapeStatusError   = "error"
)

// ScrapeLogEntry is an append-only audit record, one per adapter run.
// Entries are never updated or deleted; they exist for diagnostics only.
type ScrapeLogEntry struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
	OffersCount  int       `json:"offers_count"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message"`
}

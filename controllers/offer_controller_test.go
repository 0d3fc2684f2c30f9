package controllers

import (
	"context"
	"testing"
	"time"

	"chef-backend/models"
	"chef-backend/repository"
	"chef-backend/scraper"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newOfferControllerForTest(t *testing.T, minOffers int) (*OfferController, *repository.OfferRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Offer{}, &models.ScrapeLogEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	offers := repository.NewOfferRepository(db)
	scrapeLog := repository.NewScrapeLogRepository(db)
	pipeline := scraper.NewPipeline(nil, offers, scrapeLog, minOffers, time.Second)
	return NewOfferController(offers, scrapeLog, pipeline, nil, nil, minOffers), offers
}

func seedOffer(t *testing.T, offers *repository.OfferRepository, id, name string, validUntil time.Time) {
	t.Helper()
	err := offers.Upsert([]models.Offer{{
		ID:                 id,
		Name:               name,
		OldPrice:           9.99,
		NewPrice:           6.49,
		Store:              models.StoreLidl,
		Category:           models.GetCategory(name),
		ValidUntil:         validUntil,
		DiscountPercentage: models.CalculateDiscount(9.99, 6.49),
	}})
	if err != nil {
		t.Fatalf("seed offer: %v", err)
	}
}

func TestCurrentOffersScrapesWhenStoreNeverFilled(t *testing.T) {
	oc, _ := newOfferControllerForTest(t, 10)

	offers, err := oc.currentOffers(context.Background())
	if err != nil {
		t.Fatalf("currentOffers: %v", err)
	}
	if len(offers) < 30 {
		t.Fatalf("len(offers) = %d, want the curated set from an on-demand pass", len(offers))
	}
}

func TestCurrentOffersScrapesWhenAllOffersExpired(t *testing.T) {
	oc, offers := newOfferControllerForTest(t, 10)
	seedOffer(t, offers, "expired-1", "Lapte Zuzu 3.5% 1L", time.Now().AddDate(0, 0, -30))

	got, err := oc.currentOffers(context.Background())
	if err != nil {
		t.Fatalf("currentOffers: %v", err)
	}
	if len(got) < 30 {
		t.Fatalf("len(offers) = %d, an expired-only store must trigger aggregation", len(got))
	}
	for _, o := range got {
		if o.ValidUntil.Before(time.Now()) {
			t.Errorf("offer %q is expired in the served list", o.Name)
		}
	}
}

func TestCurrentOffersServesFilledStoreWithoutScraping(t *testing.T) {
	oc, offers := newOfferControllerForTest(t, 2)
	future := time.Now().AddDate(0, 0, 7)
	seedOffer(t, offers, "fresh-1", "Lapte Zuzu 3.5% 1L", future)
	seedOffer(t, offers, "fresh-2", "Piept de pui Transavia", future)

	got, err := oc.currentOffers(context.Background())
	if err != nil {
		t.Fatalf("currentOffers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(offers) = %d, a sufficiently filled store must be served as-is", len(got))
	}
}

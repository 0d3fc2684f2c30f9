package controllers

import (
	"context"
	"log"
	"math"

	"chef-backend/cache"
	"chef-backend/models"
	"chef-backend/repository"
	"chef-backend/scheduler"
	"chef-backend/scraper"

	"github.com/gofiber/fiber/v2"
)

// OfferController serves the offer read surface plus the admin refresh and
// diagnostics endpoints.
type OfferController struct {
	offers    *repository.OfferRepository
	scrapeLog *repository.ScrapeLogRepository
	pipeline  *scraper.Pipeline
	sched     *scheduler.Scheduler
	cache     *cache.Controller
	minOffers int
}

func NewOfferController(offers *repository.OfferRepository, scrapeLog *repository.ScrapeLogRepository, pipeline *scraper.Pipeline, sched *scheduler.Scheduler, cacheCtl *cache.Controller, minOffers int) *OfferController {
	return &OfferController{
		offers:    offers,
		scrapeLog: scrapeLog,
		pipeline:  pipeline,
		sched:     sched,
		cache:     cacheCtl,
		minOffers: minOffers,
	}
}

// currentOffers reads the store, running one synchronous aggregation pass
// when the non-expired yield is too thin. That covers both a cold start
// before the first scheduled tick and a store where everything aged out.
func (oc *OfferController) currentOffers(ctx context.Context) ([]models.Offer, error) {
	offers, err := oc.offers.QueryCurrent()
	if err != nil {
		return nil, err
	}
	if len(offers) < oc.minOffers {
		log.Printf("🔄 Only %d current offers in store, running aggregation on demand...", len(offers))
		return oc.pipeline.Run(ctx)
	}
	return offers, nil
}

func (oc *OfferController) GetOffers(c *fiber.Ctx) error {
	offers, err := oc.currentOffers(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Nu s-au putut încărca ofertele"})
	}
	return c.JSON(fiber.Map{"offers": offers, "total": len(offers)})
}

func (oc *OfferController) GetDashboard(c *fiber.Ctx) error {
	offers, err := oc.currentOffers(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Nu s-au putut încărca ofertele"})
	}

	recipes, _, _ := oc.cache.Get(c.UserContext(), models.RecipeKindTop)

	totalSavings := 0.0
	stores := make(map[string]fiber.Map)
	categories := make(map[string]int)
	storeNames := make([]string, 0, 3)

	for _, offer := range offers {
		saving := offer.OldPrice - offer.NewPrice
		totalSavings += saving

		if entry, ok := stores[offer.Store]; ok {
			entry["count"] = entry["count"].(int) + 1
			entry["savings"] = entry["savings"].(float64) + saving
		} else {
			stores[offer.Store] = fiber.Map{"count": 1, "savings": saving}
			storeNames = append(storeNames, offer.Store)
		}
		categories[offer.Category]++
	}

	return c.JSON(fiber.Map{
		"offers":  offers,
		"recipes": recipes,
		"stats": fiber.Map{
			"total_offers":            len(offers),
			"total_recipes":           len(recipes),
			"total_potential_savings": math.Round(totalSavings*100) / 100,
			"stores":                  storeNames,
			"stores_breakdown":        stores,
			"categories":              categories,
		},
	})
}

// RefreshOffers queues a full scrape + regeneration pass and returns
// immediately.
func (oc *OfferController) RefreshOffers(c *fiber.Ctx) error {
	oc.sched.TriggerRefresh()
	return c.JSON(fiber.Map{"message": "Refresh started in background", "status": "processing"})
}

func (oc *OfferController) GetScrapeLog(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	entries, err := oc.scrapeLog.Recent(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Nu s-a putut citi jurnalul de scraping"})
	}
	return c.JSON(fiber.Map{"entries": entries, "total": len(entries)})
}

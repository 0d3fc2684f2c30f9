package scraper

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"chef-backend/models"
	"chef-backend/repository"

	"github.com/go-playground/validator/v10"
)

// Pipeline orchestrates the adapters, merges in the fallback dataset when
// the combined yield is too thin, normalizes everything and upserts the
// result into the offer store.
type Pipeline struct {
	adapters  []Adapter
	offers    *repository.OfferRepository
	scrapeLog *repository.ScrapeLogRepository
	minOffers int
	timeout   time.Duration
	validate  *validator.Validate
}

func NewPipeline(adapters []Adapter, offers *repository.OfferRepository, scrapeLog *repository.ScrapeLogRepository, minOffers int, timeout time.Duration) *Pipeline {
	return &Pipeline{
		adapters:  adapters,
		offers:    offers,
		scrapeLog: scrapeLog,
		minOffers: minOffers,
		timeout:   timeout,
		validate:  validator.New(),
	}
}

type adapterResult struct {
	source string
	offers []RawOffer
	err    error
}

// Run executes one full aggregation pass and returns the merged, sorted
// offer list. Adapter failures degrade to zero offers; only a store failure
// fails the pass.
func (p *Pipeline) Run(ctx context.Context) ([]models.Offer, error) {
	log.Println("🔄 Starting full scrape...")

	results := make(chan adapterResult, len(p.adapters))
	var wg sync.WaitGroup
	for _, a := range p.adapters {
		wg.Add(1)
		go func(a Adapter) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()
			raw, err := a.Fetch(fetchCtx)
			results <- adapterResult{source: a.Name(), offers: raw, err: err}
		}(a)
	}
	wg.Wait()
	close(results)

	validUntil := time.Now().AddDate(0, 0, offerValidityDays)

	var allOffers []models.Offer
	for res := range results {
		switch {
		case res.err != nil:
			log.Printf("  ✗ %s: %v", res.source, res.err)
			p.appendLog(res.source, 0, models.ScrapeStatusError, res.err.Error())
		case len(res.offers) == 0:
			log.Printf("  ○ %s: 0 oferte", res.source)
			p.appendLog(res.source, 0, models.ScrapeStatusEmpty, "")
		default:
			log.Printf("  ✓ %s: %d oferte", res.source, len(res.offers))
			p.appendLog(res.source, len(res.offers), models.ScrapeStatusSuccess, "")
			for _, raw := range res.offers {
				allOffers = append(allOffers, buildOffer(raw, res.source, validUntil))
			}
		}
	}

	if len(allOffers) < p.minOffers {
		log.Println("  → Merging curated fallback offers...")
		allOffers = mergeFallback(allOffers, GetRealisticOffers())
	}

	// Drop anything violating the persistence invariants. Adapters filter
	// already, so a hit here means a bug upstream.
	valid := allOffers[:0]
	for _, offer := range allOffers {
		if err := p.validate.Struct(&offer); err != nil {
			log.Printf("  ⚠️ Dropping invalid offer %q: %v", offer.Name, err)
			continue
		}
		valid = append(valid, offer)
	}
	allOffers = valid

	sort.SliceStable(allOffers, func(i, j int) bool {
		return allOffers[i].DiscountPercentage > allOffers[j].DiscountPercentage
	})

	if err := p.offers.Upsert(allOffers); err != nil {
		return nil, err
	}

	log.Printf("✅ Scrape complet: %d oferte salvate", len(allOffers))
	return allOffers, nil
}

// mergeFallback appends curated offers whose product name is not already
// covered by an adapter-sourced offer. Scraped offers always win.
func mergeFallback(scraped, fallback []models.Offer) []models.Offer {
	existing := make(map[string]bool, len(scraped))
	for _, o := range scraped {
		existing[strings.ToLower(o.Name)] = true
	}
	for _, o := range fallback {
		if !existing[strings.ToLower(o.Name)] {
			scraped = append(scraped, o)
		}
	}
	return scraped
}

func (p *Pipeline) appendLog(source string, count int, status, errMsg string) {
	if err := p.scrapeLog.Append(source, count, status, errMsg); err != nil {
		log.Printf("  ⚠️ Failed to log scrape for %s: %v", source, err)
	}
}

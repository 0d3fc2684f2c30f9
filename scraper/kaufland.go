package scraper

import (
	"context"
	"fmt"
	"time"

	"chef-backend/models"

	"github.com/gocolly/colly/v2"
)

const kauflandOffersURL = "https://www.kaufland.ro/oferte/oferta-curenta.html"

// KauflandAdapter scrapes the current offers page of kaufland.ro.
type KauflandAdapter struct {
	url     string
	markup  float64
	timeout time.Duration
}

func NewKauflandAdapter(markup float64, timeout time.Duration) *KauflandAdapter {
	return &KauflandAdapter{url: kauflandOffersURL, markup: markup, timeout: timeout}
}

func (a *KauflandAdapter) Name() string { return models.StoreKaufland }

func (a *KauflandAdapter) Fetch(ctx context.Context) ([]RawOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := newCollector(a.timeout)

	var offers []RawOffer
	c.OnHTML(".m-offer-tile, .o-fresh-producttile, [data-t-name=\"OfferTile\"]", func(e *colly.HTMLElement) {
		if len(offers) >= maxOffersPerSource {
			return
		}
		raw, ok := extractRawOffer(e,
			[]string{".m-offer-tile__subtitle", ".m-offer-tile__title", ".a-text--truncate", "h3"},
			[]string{".a-pricetag__price", ".m-offer-tile__price", ".price"},
			[]string{".a-pricetag__old-price", ".m-offer-tile__price--old"},
			a.markup,
		)
		if ok {
			offers = append(offers, raw)
		}
	})

	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("kaufland fetch failed (status %d): %w", r.StatusCode, err)
	})

	if err := c.Visit(a.url); err != nil {
		return nil, fmt.Errorf("kaufland visit failed: %w", err)
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return offers, nil
}

package scraper

import (
	"context"
	"fmt"
	"time"

	"chef-backend/models"

	"github.com/gocolly/colly/v2"
)

const lidlOffersURL = "https://www.lidl.ro/c/oferte-saptamanale/s10010953"

// LidlAdapter scrapes the weekly offers page of lidl.ro.
type LidlAdapter struct {
	url     string
	markup  float64
	timeout time.Duration
}

func NewLidlAdapter(markup float64, timeout time.Duration) *LidlAdapter {
	return &LidlAdapter{url: lidlOffersURL, markup: markup, timeout: timeout}
}

func (a *LidlAdapter) Name() string { return models.StoreLidl }

func (a *LidlAdapter) Fetch(ctx context.Context) ([]RawOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := newCollector(a.timeout)

	var offers []RawOffer
	c.OnHTML("[data-grid-box], .product-grid-box, .lidl-m-product-grid-box", func(e *colly.HTMLElement) {
		if len(offers) >= maxOffersPerSource {
			return
		}
		raw, ok := extractRawOffer(e,
			[]string{".lidl-m-pricebox__title", ".product-grid-box__title", "h3", "h2"},
			[]string{".lidl-m-pricebox__price", ".pricebox__price", ".price"},
			[]string{".lidl-m-pricebox__price--old", ".pricebox__price--old", "s", "del"},
			a.markup,
		)
		if ok {
			offers = append(offers, raw)
		}
	})

	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("lidl fetch failed (status %d): %w", r.StatusCode, err)
	})

	if err := c.Visit(a.url); err != nil {
		return nil, fmt.Errorf("lidl visit failed: %w", err)
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return offers, nil
}

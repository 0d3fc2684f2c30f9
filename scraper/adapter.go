package scraper

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Cap per source so one store cannot flood the table.
	maxOffersPerSource = 50

	// Offers stay listed for a week from the scrape.
	offerValidityDays = 7
)

// RawOffer is a candidate promotion straight out of an adapter: no identity,
// no category yet.
type RawOffer struct {
	Name     string
	OldPrice float64
	NewPrice float64
	ImageURL string
}

// Adapter is a per-retailer fetch+parse function. Fetch returns the raw
// candidates or the reason it produced none; the pipeline treats any error
// as "zero offers from this source" but keeps the reason for the audit log.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context) ([]RawOffer, error)
}

func newCollector(timeout time.Duration) *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(timeout)
	return c
}

// firstText mimics a select_one lookup: the first selector with a non-empty
// first match wins.
func firstText(e *colly.HTMLElement, selectors ...string) string {
	for _, sel := range selectors {
		if s := strings.TrimSpace(e.DOM.Find(sel).First().Text()); s != "" {
			return s
		}
	}
	return ""
}

func firstImage(e *colly.HTMLElement) string {
	img := e.DOM.Find("img").First()
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := img.Attr("data-src"); ok && src != "" {
		return src
	}
	return ""
}

// extractRawOffer applies the shared discard rules: a name must resolve, the
// current price must parse positive, and the old price (synthesized with the
// per-source markup when the page shows none) must beat the new one.
func extractRawOffer(e *colly.HTMLElement, nameSelectors, priceSelectors, oldPriceSelectors []string, markup float64) (RawOffer, bool) {
	name := firstText(e, nameSelectors...)
	if name == "" || len([]rune(name)) < 3 {
		return RawOffer{}, false
	}

	newPrice, ok := ParsePrice(firstText(e, priceSelectors...))
	if !ok || newPrice <= 0 {
		return RawOffer{}, false
	}

	oldPrice, ok := ParsePrice(firstText(e, oldPriceSelectors...))
	if !ok || oldPrice <= 0 {
		oldPrice = math.Round(newPrice*markup*100) / 100
	}
	if oldPrice <= newPrice {
		return RawOffer{}, false
	}

	return RawOffer{
		Name:     name,
		OldPrice: oldPrice,
		NewPrice: newPrice,
		ImageURL: firstImage(e),
	}, true
}

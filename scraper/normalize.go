package scraper

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chef-backend/models"
)

// ParsePrice extracts a price from a raw scraped string like "24,99 lei".
// Everything except digits, commas and dots is stripped and the last
// comma/dot is taken as the decimal separator. Returns false when no
// numeric content survives.
func ParsePrice(raw string) (float64, bool) {
	var cleaned strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			cleaned.WriteRune(r)
		}
	}
	s := cleaned.String()
	if s == "" {
		return 0, false
	}

	lastSep := strings.LastIndexAny(s, ",.")
	if lastSep >= 0 {
		intPart := strings.Map(func(r rune) rune {
			if r == ',' || r == '.' {
				return -1
			}
			return r
		}, s[:lastSep])
		s = intPart + "." + s[lastSep+1:]
	}

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// GenerateOfferID derives the stable content-addressed offer id from the
// lowercased name (first 50 characters), store and current price. Two
// genuinely distinct products with an identical 50-char prefix, store and
// price will collide; that is a known limitation, not a bug to paper over.
func GenerateOfferID(name, store string, price float64) string {
	lower := strings.ToLower(name)
	runes := []rune(lower)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	unique := fmt.Sprintf("%s-%s-%s", string(runes), store, strconv.FormatFloat(price, 'f', -1, 64))
	sum := md5.Sum([]byte(unique))
	return hex.EncodeToString(sum[:])[:12]
}

// buildOffer turns a raw candidate into a full Offer: category, placeholder
// image, discount and identity.
func buildOffer(raw RawOffer, store string, validUntil time.Time) models.Offer {
	category := models.GetCategory(raw.Name)

	imageURL := raw.ImageURL
	if imageURL == "" || strings.Contains(strings.ToLower(imageURL), "placeholder") || !strings.HasPrefix(imageURL, "http") {
		imageURL = models.GetPlaceholderImage(category)
	}

	return models.Offer{
		ID:                 GenerateOfferID(raw.Name, store, raw.NewPrice),
		Name:               raw.Name,
		OldPrice:           raw.OldPrice,
		NewPrice:           raw.NewPrice,
		Store:              store,
		Category:           category,
		ImageURL:           imageURL,
		ValidUntil:         validUntil,
		DiscountPercentage: models.CalculateDiscount(raw.OldPrice, raw.NewPrice),
	}
}

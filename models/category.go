package models

import "strings"

// Fixed category taxonomy. Names stay in Romanian because that is what the
// stores and the frontend use.
const (
	CategoryCarne       = "Carne"
	CategoryLactate     = "Lactate"
	CategoryLegume      = "Legume"
	CategoryFructe      = "Fructe"
	CategoryPanificatie = "Panificatie"
	CategoryPeste       = "Peste"
	CategoryDeBaza      = "Alimente de baza"
	CategoryBauturi     = "Bauturi"
	CategoryDulciuri    = "Dulciuri"
	CategoryAltele      = "Altele"
)

// Known stores.
const (
	StoreLidl     = "Lidl"
	StoreKaufland = "Kaufland"
	StoreProfi    = "Profi"
)

// categoryKeywords is matched in order; the first set that hits wins.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{CategoryCarne, []string{"pui", "porc", "vita", "carne", "carnati", "sunca", "salam", "bacon", "curcan", "mici", "fleica", "piept", "pulpe", "aripi", "cotlet"}},
	{CategoryLactate, []string{"lapte", "iaurt", "smantana", "branza", "cascaval", "unt", "frisca", "telemea", "cremă"}},
	{CategoryLegume, []string{"rosii", "cartofi", "ceapa", "morcovi", "varza", "ardei", "castraveti", "salata", "legume", "fasole", "mazare", "spanac", "vinete", "dovlecei"}},
	{CategoryFructe, []string{"mere", "banane", "portocale", "lamai", "struguri", "pepene", "capsuni", "fructe", "pere", "prune", "cirese", "piersici", "nectarine", "kiwi"}},
	{CategoryPanificatie, []string{"paine", "covrigi", "franzela", "bagheta", "chifle", "corn", "croissant"}},
	{CategoryPeste, []string{"peste", "somon", "ton", "sardine", "macrou", "crap", "pastrav", "hering", "scrumbie"}},
	{CategoryDeBaza, []string{"ulei", "otet", "faina", "zahar", "sare", "orez", "paste", "conserva", "bulion", "malai", "macaroane", "spaghete"}},
	{CategoryBauturi, []string{"bere", "vin", "suc", "apa", "cafea", "ceai", "cola", "limonada"}},
	{CategoryDulciuri, []string{"ciocolata", "biscuiti", "prajituri", "napolitane", "inghetata", "desert"}},
}

// GetCategory classifies a product name. Total: every name lands in exactly
// one category, "Altele" when nothing matches.
func GetCategory(name string) string {
	nameLower := strings.ToLower(name)
	for _, set := range categoryKeywords {
		for _, w := range set.words {
			if strings.Contains(nameLower, w) {
				return set.category
			}
		}
	}
	return CategoryAltele
}

var placeholderImages = map[string]string{
	CategoryCarne:       "https://images.unsplash.com/photo-1603048297172-c92544798d5a?w=300",
	CategoryLactate:     "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=300",
	CategoryLegume:      "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=300",
	CategoryFructe:      "https://images.unsplash.com/photo-1619566636858-adf3ef46400b?w=300",
	CategoryPanificatie: "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=300",
	CategoryPeste:       "https://images.unsplash.com/photo-1510130387422-82bed34b37e9?w=300",
	CategoryDeBaza:      "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=300",
	CategoryBauturi:     "https://images.unsplash.com/photo-1534353473418-4cfa6c56fd38?w=300",
	CategoryDulciuri:    "https://images.unsplash.com/photo-1549007994-cb92caebd54b?w=300",
	CategoryAltele:      "https://images.unsplash.com/photo-1542838132-92c53300491e?w=300",
}

// GetPlaceholderImage returns a stock image for offers without a usable one.
func GetPlaceholderImage(category string) string {
	if url, ok := placeholderImages[category]; ok {
		return url
	}
	return placeholderImages[CategoryAltele]
}

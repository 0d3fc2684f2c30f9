package scraper

import (
	"time"

	"chef-backend/models"
)

// fallbackEntry is one hand-curated offer with realistic Romanian pricing.
type fallbackEntry struct {
	name     string
	oldPrice float64
	newPrice float64
	store    string
	category string
	imageURL string
}

var fallbackEntries = []fallbackEntry{
	{"Ceafă de porc marinată", 34.99, 24.99, models.StoreLidl, models.CategoryCarne, "https://images.unsplash.com/photo-1603048297172-c92544798d5a?w=300"},
	{"Piept de pui Transavia", 32.99, 22.99, models.StoreLidl, models.CategoryCarne, "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=300"},
	{"Pulpe de pui dezosate", 26.99, 17.99, models.StoreLidl, models.CategoryCarne, "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=300"},
	{"Cârnați proaspeți de porc", 29.99, 19.99, models.StoreLidl, models.CategoryCarne, "https://images.unsplash.com/photo-1432139555190-58524dae6a55?w=300"},
	{"Fleică de porc", 38.99, 27.99, models.StoreLidl, models.CategoryCarne, "https://images.unsplash.com/photo-1603048297172-c92544798d5a?w=300"},
	{"Lapte Zuzu 3.5% 1L", 9.99, 6.49, models.StoreLidl, models.CategoryLactate, "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=300"},
	{"Cașcaval Hochland 400g", 24.99, 16.99, models.StoreLidl, models.CategoryLactate, "https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=300"},
	{"Iaurt Danone 400g", 8.49, 5.49, models.StoreLidl, models.CategoryLactate, "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=300"},
	{"Unt President 200g", 16.99, 11.99, models.StoreLidl, models.CategoryLactate, "https://images.unsplash.com/photo-1589985270826-4b7bb135bc9d?w=300"},
	{"Smântână Napolact 20% 400g", 10.99, 7.49, models.StoreLidl, models.CategoryLactate, "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=300"},
	{"Ulei Bunica 1L", 13.99, 8.99, models.StoreLidl, models.CategoryDeBaza, "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?w=300"},
	{"Orez bob lung 1kg", 11.99, 7.99, models.StoreLidl, models.CategoryDeBaza, "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=300"},
	{"Făină albă 000 2kg", 9.99, 5.99, models.StoreLidl, models.CategoryDeBaza, "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=300"},
	{"Zahăr alb 1kg", 7.49, 4.99, models.StoreLidl, models.CategoryDeBaza, "https://images.unsplash.com/photo-1581441117193-63e8f3f53780?w=300"},

	{"Cotlet de porc fără os", 36.99, 25.99, models.StoreKaufland, models.CategoryCarne, "https://images.unsplash.com/photo-1603048297172-c92544798d5a?w=300"},
	{"Mici tradiționali 900g", 32.99, 22.99, models.StoreKaufland, models.CategoryCarne, "https://images.unsplash.com/photo-1558030006-450675393462?w=300"},
	{"Aripi de pui marinate", 22.99, 14.99, models.StoreKaufland, models.CategoryCarne, "https://images.unsplash.com/photo-1527477396000-e27163b481c2?w=300"},
	{"Roșii românești 1kg", 14.99, 8.99, models.StoreKaufland, models.CategoryLegume, "https://images.unsplash.com/photo-1546470427-227c7369a9b8?w=300"},
	{"Cartofi noi românești 2kg", 12.99, 7.99, models.StoreKaufland, models.CategoryLegume, "https://images.unsplash.com/photo-1518977676601-b53f82bbe903?w=300"},
	{"Ceapă galbenă 2kg", 8.99, 4.99, models.StoreKaufland, models.CategoryLegume, "https://images.unsplash.com/photo-1518977956812-cd3dbadaaf31?w=300"},
	{"Ardei gras roșu 500g", 11.99, 6.99, models.StoreKaufland, models.CategoryLegume, "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?w=300"},
	{"Morcovi proaspeți 1kg", 7.99, 4.49, models.StoreKaufland, models.CategoryLegume, "https://images.unsplash.com/photo-1445282768818-728615cc910a?w=300"},
	{"Castraveți românești 1kg", 9.99, 5.99, models.StoreKaufland, models.CategoryLegume, "https://images.unsplash.com/photo-1449300079323-02e209d9d3a6?w=300"},
	{"Mere Golden 1kg", 8.99, 4.99, models.StoreKaufland, models.CategoryFructe, "https://images.unsplash.com/photo-1619546813926-a78fa6372cd2?w=300"},
	{"Banane Chiquita 1kg", 9.99, 5.99, models.StoreKaufland, models.CategoryFructe, "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=300"},
	{"Portocale 1kg", 8.99, 5.49, models.StoreKaufland, models.CategoryFructe, "https://images.unsplash.com/photo-1582979512210-99b6a53386f9?w=300"},
	{"Paste penne Barilla 500g", 10.99, 6.99, models.StoreKaufland, models.CategoryDeBaza, "https://images.unsplash.com/photo-1551462147-ff29053bfc14?w=300"},
	{"Ouă M 10 buc", 16.99, 10.99, models.StoreKaufland, models.CategoryAltele, "https://images.unsplash.com/photo-1582722872445-44dc5f7e3c8f?w=300"},
	{"Bulion Topoloveni 400g", 8.49, 4.99, models.StoreKaufland, models.CategoryDeBaza, "https://images.unsplash.com/photo-1472476443507-c7a5948772fc?w=300"},
	{"Somon proaspăt 300g", 42.99, 29.99, models.StoreKaufland, models.CategoryPeste, "https://images.unsplash.com/photo-1485921325833-c519f76c4927?w=300"},
	{"Ton în ulei Rio Mare 160g", 14.99, 9.99, models.StoreKaufland, models.CategoryPeste, "https://images.unsplash.com/photo-1510130387422-82bed34b37e9?w=300"},
	{"Pâine toast albă 500g", 7.99, 4.99, models.StoreKaufland, models.CategoryPanificatie, "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=300"},
	{"Ciocolată Milka 100g", 8.99, 5.49, models.StoreKaufland, models.CategoryDulciuri, "https://images.unsplash.com/photo-1549007994-cb92caebd54b?w=300"},
	{"Cafea Jacobs 500g", 45.99, 32.99, models.StoreKaufland, models.CategoryBauturi, "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=300"},

	{"Șuncă presată 200g", 18.99, 12.99, models.StoreProfi, models.CategoryCarne, "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?w=300"},
	{"Brânză de vaci 250g", 12.99, 8.49, models.StoreProfi, models.CategoryLactate, "https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=300"},
	{"Varză murată 1kg", 7.99, 4.99, models.StoreProfi, models.CategoryLegume, "https://images.unsplash.com/photo-1594282486552-05b4d80fbb9f?w=300"},
	{"Bere Ursus 6x0.5L", 29.99, 19.99, models.StoreProfi, models.CategoryBauturi, "https://images.unsplash.com/photo-1535958636474-b021ee887b13?w=300"},
	{"Apă Borsec 2L", 6.99, 3.99, models.StoreProfi, models.CategoryBauturi, "https://images.unsplash.com/photo-1560023907-5f339617ea30?w=300"},
}

// GetRealisticOffers returns the curated fallback dataset, used whenever the
// adapters together under-deliver.
func GetRealisticOffers() []models.Offer {
	validUntil := time.Now().AddDate(0, 0, offerValidityDays)

	offers := make([]models.Offer, 0, len(fallbackEntries))
	for _, e := range fallbackEntries {
		offers = append(offers, models.Offer{
			ID:                 GenerateOfferID(e.name, e.store, e.newPrice),
			Name:               e.name,
			OldPrice:           e.oldPrice,
			NewPrice:           e.newPrice,
			Store:              e.store,
			Category:           e.category,
			ImageURL:           e.imageURL,
			ValidUntil:         validUntil,
			DiscountPercentage: models.CalculateDiscount(e.oldPrice, e.newPrice),
		})
	}
	return offers
}

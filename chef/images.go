package chef

import "strings"

// Ordered so more specific dishes match before generic ingredients.
var recipeImages = []struct {
	keyword string
	url     string
}{
	{"pui", "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=400"},
	{"piept", "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=400"},
	{"porc", "https://images.unsplash.com/photo-1432139555190-58524dae6a55?w=400"},
	{"ceafa", "https://images.unsplash.com/photo-1432139555190-58524dae6a55?w=400"},
	{"vita", "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400"},
	{"peste", "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=400"},
	{"somon", "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=400"},
	{"paste", "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400"},
	{"spaghete", "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400"},
	{"orez", "https://images.unsplash.com/photo-1516714435131-44d6b64dc6a2?w=400"},
	{"pilaf", "https://images.unsplash.com/photo-1516714435131-44d6b64dc6a2?w=400"},
	{"legume", "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400"},
	{"tocan", "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400"},
	{"salata", "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400"},
	{"clatite", "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=400"},
	{"desert", "https://images.unsplash.com/photo-1551024601-bec78aea704b?w=400"},
	{"supa", "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400"},
	{"ciorba", "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400"},
}

const defaultRecipeImage = "https://images.unsplash.com/photo-1466637574441-749b8f19452f?w=400"

// GetRecipeImage picks a stock photo matching the recipe name.
func GetRecipeImage(name string) string {
	n := strings.ToLower(name)
	for _, img := range recipeImages {
		if strings.Contains(n, img.keyword) {
			return img.url
		}
	}
	return defaultRecipeImage
}

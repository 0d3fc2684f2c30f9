package chef

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"chef-backend/models"
)

// Provider is the completion backend used for recipe generation.
type Provider interface {
	Available() bool
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Chef turns offer sets into recipe sets. It never returns an error: any
// provider failure degrades to the deterministic fallback generator.
type Chef struct {
	provider Provider
}

func New(provider Provider) *Chef {
	return &Chef{provider: provider}
}

// GenerateRecipes generates recipes for the given offers in one of the
// top/cheapest/selected/general modes. maxBudget 0 means unconstrained.
func (c *Chef) GenerateRecipes(ctx context.Context, products []models.Offer, kind string, maxBudget float64) []models.Recipe {
	if len(products) == 0 || c.provider == nil || !c.provider.Available() {
		return GenerateFallbackRecipes(products, kind)
	}

	content, err := c.provider.Generate(ctx, systemPrompt, buildPrompt(products, kind, maxBudget))
	if err != nil {
		log.Printf("⚠️ AI recipe generation failed, using fallback: %v", err)
		return GenerateFallbackRecipes(products, kind)
	}

	var parsed struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	if err := json.Unmarshal([]byte(stripFences(content)), &parsed); err != nil {
		log.Printf("⚠️ AI returned unparseable recipes, using fallback: %v", err)
		return GenerateFallbackRecipes(products, kind)
	}

	now := time.Now()
	for i := range parsed.Recipes {
		parsed.Recipes[i].ID = i + 1
		parsed.Recipes[i].ImageURL = GetRecipeImage(parsed.Recipes[i].Name)
		parsed.Recipes[i].GeneratedAt = now
	}
	return parsed.Recipes
}

// TopDiscountRecipes generates from the 10 best-discounted offers.
func (c *Chef) TopDiscountRecipes(ctx context.Context, products []models.Offer) []models.Recipe {
	top := make([]models.Offer, len(products))
	copy(top, products)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].DiscountPercentage > top[j].DiscountPercentage
	})
	if len(top) > 10 {
		top = top[:10]
	}
	return c.GenerateRecipes(ctx, top, models.RecipeKindTop, 0)
}

// CheapestRecipes generates budget recipes from the 12 cheapest offers.
func (c *Chef) CheapestRecipes(ctx context.Context, products []models.Offer) []models.Recipe {
	cheap := make([]models.Offer, len(products))
	copy(cheap, products)
	sort.SliceStable(cheap, func(i, j int) bool {
		return cheap[i].NewPrice < cheap[j].NewPrice
	})
	if len(cheap) > 12 {
		cheap = cheap[:12]
	}
	return c.GenerateRecipes(ctx, cheap, models.RecipeKindCheapest, 25)
}

// GenerateForSelection generates from the offers matching the given ids.
// An empty match falls back to the top 5 current offers.
func (c *Chef) GenerateForSelection(ctx context.Context, products []models.Offer, selectedIDs []string) []models.Recipe {
	wanted := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		wanted[id] = true
	}

	var selected []models.Offer
	for _, p := range products {
		if wanted[p.ID] {
			selected = append(selected, p)
		}
	}

	if len(selected) == 0 {
		selected = products
		if len(selected) > 5 {
			selected = selected[:5]
		}
	}
	return c.GenerateRecipes(ctx, selected, models.RecipeKindSelected, 0)
}

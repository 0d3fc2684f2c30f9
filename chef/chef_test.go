package chef

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"chef-backend/models"
)

type fakeProvider struct {
	available  bool
	response   string
	err        error
	lastPrompt string
}

func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastPrompt = userPrompt
	return f.response, f.err
}

func offer(id, name string, newPrice float64, discount int) models.Offer {
	return models.Offer{ID: id, Name: name, NewPrice: newPrice, Store: models.StoreLidl, DiscountPercentage: discount}
}

func TestGenerateFallbackRecipesEmptyProducts(t *testing.T) {
	if got := GenerateFallbackRecipes(nil, models.RecipeKindTop); got != nil {
		t.Errorf("fallback for no products = %+v, want nil", got)
	}
}

func TestGenerateFallbackRecipesMeat(t *testing.T) {
	products := []models.Offer{offer("a", "Piept de pui Transavia", 22.99, 30)}
	recipes := GenerateFallbackRecipes(products, models.RecipeKindTop)

	if len(recipes) == 0 {
		t.Fatal("expected at least one fallback recipe")
	}
	first := recipes[0]
	if !strings.HasPrefix(first.Name, "Piept") {
		t.Errorf("recipe name = %q, want it built from the offer name", first.Name)
	}
	if len(first.Ingredients) == 0 || !first.Ingredients[0].FromOffer {
		t.Error("first ingredient should come from the offer")
	}
	if first.EstimatedCost <= first.Ingredients[0].Price {
		t.Error("estimated cost should include the extra ingredients")
	}
	if first.ImageURL == "" {
		t.Error("fallback recipe needs an image")
	}
}

func TestGenerateFallbackRecipesCappedAtThree(t *testing.T) {
	var products []models.Offer
	for i := 0; i < 10; i++ {
		products = append(products, offer(fmt.Sprintf("id-%d", i), fmt.Sprintf("Pui cartofi lapte %d", i), float64(5+i), 20))
	}
	recipes := GenerateFallbackRecipes(products, models.RecipeKindTop)
	if len(recipes) > 3 {
		t.Errorf("len(recipes) = %d, want at most 3", len(recipes))
	}
}

func TestGenerateFallbackRecipesLastResort(t *testing.T) {
	// One product no template matches still yields a recipe.
	products := []models.Offer{offer("a", "Detergent Ariel", 19.99, 10)}
	recipes := GenerateFallbackRecipes(products, models.RecipeKindTop)
	if len(recipes) != 1 {
		t.Fatalf("len(recipes) = %d, want the single-product recipe", len(recipes))
	}
}

func TestGenerateRecipesUnavailableProvider(t *testing.T) {
	c := New(&fakeProvider{available: false})
	products := []models.Offer{offer("a", "Piept de pui", 20, 30)}

	recipes := c.GenerateRecipes(context.Background(), products, models.RecipeKindTop, 0)
	if len(recipes) == 0 {
		t.Fatal("unavailable provider must degrade to fallback recipes")
	}
}

func TestGenerateRecipesProviderError(t *testing.T) {
	c := New(&fakeProvider{available: true, err: errors.New("rate limited")})
	products := []models.Offer{offer("a", "Piept de pui", 20, 30)}

	recipes := c.GenerateRecipes(context.Background(), products, models.RecipeKindTop, 0)
	if len(recipes) == 0 {
		t.Fatal("provider error must degrade to fallback recipes")
	}
}

func TestGenerateRecipesParsesResponse(t *testing.T) {
	provider := &fakeProvider{
		available: true,
		response:  "```json\n{\"recipes\": [{\"name\": \"Supă de pui\"}, {\"name\": \"Pilaf\"}]}\n```",
	}
	c := New(provider)
	products := []models.Offer{offer("a", "Piept de pui", 20, 30)}

	recipes := c.GenerateRecipes(context.Background(), products, models.RecipeKindTop, 0)
	if len(recipes) != 2 {
		t.Fatalf("len(recipes) = %d, want 2", len(recipes))
	}
	if recipes[0].ID != 1 || recipes[1].ID != 2 {
		t.Errorf("ids = %d, %d, want sequential from 1", recipes[0].ID, recipes[1].ID)
	}
	if recipes[0].ImageURL == "" {
		t.Error("parsed recipes should get an image assigned")
	}
	if recipes[0].GeneratedAt.IsZero() {
		t.Error("parsed recipes should be stamped")
	}
}

func TestGenerateRecipesUnparseableResponse(t *testing.T) {
	c := New(&fakeProvider{available: true, response: "îmi pare rău, nu pot"})
	products := []models.Offer{offer("a", "Piept de pui", 20, 30)}

	recipes := c.GenerateRecipes(context.Background(), products, models.RecipeKindTop, 0)
	if len(recipes) == 0 {
		t.Fatal("unparseable response must degrade to fallback recipes")
	}
}

func TestGenerateForSelectionFiltersByID(t *testing.T) {
	provider := &fakeProvider{available: true, response: `{"recipes": [{"name": "X"}]}`}
	c := New(provider)

	products := []models.Offer{
		offer("id-1", "Piept de pui", 20, 40),
		offer("id-2", "Roșii românești", 8, 30),
		offer("id-3", "Lapte Zuzu", 6, 20),
	}

	c.GenerateForSelection(context.Background(), products, []string{"id-2"})
	if !strings.Contains(provider.lastPrompt, "Roșii românești") {
		t.Error("prompt should list the selected product")
	}
	if strings.Contains(provider.lastPrompt, "Piept de pui") {
		t.Error("prompt should not list unselected products")
	}
}

func TestGenerateForSelectionUnknownIDsFallBackToTop(t *testing.T) {
	provider := &fakeProvider{available: true, response: `{"recipes": [{"name": "X"}]}`}
	c := New(provider)

	var products []models.Offer
	for i := 0; i < 7; i++ {
		products = append(products, offer(fmt.Sprintf("id-%d", i), fmt.Sprintf("Produs numărul %d", i), 10, 50-i))
	}

	c.GenerateForSelection(context.Background(), products, []string{"nu-exista"})

	for i := 0; i < 5; i++ {
		if !strings.Contains(provider.lastPrompt, fmt.Sprintf("Produs numărul %d", i)) {
			t.Errorf("prompt missing top offer %d", i)
		}
	}
	if strings.Contains(provider.lastPrompt, "Produs numărul 5") {
		t.Error("prompt should cap the unknown-selection fallback at 5 offers")
	}
}

func TestBuildPromptBudgetAndCap(t *testing.T) {
	var products []models.Offer
	for i := 0; i < 25; i++ {
		products = append(products, offer(fmt.Sprintf("id-%d", i), fmt.Sprintf("Produs numărul %d", i), 10, 20))
	}

	prompt := buildPrompt(products, models.RecipeKindCheapest, 25)
	if !strings.Contains(prompt, "Buget maxim per rețetă: 25 lei.") {
		t.Error("prompt missing the budget note")
	}
	if strings.Contains(prompt, "Produs numărul 20") {
		t.Error("prompt should list at most 20 products")
	}

	unbounded := buildPrompt(products[:1], models.RecipeKindTop, 0)
	if strings.Contains(unbounded, "Buget maxim") {
		t.Error("budget note should be absent when unconstrained")
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"recipes": []}`, `{"recipes": []}`},
		{"```json\n{\"recipes\": []}\n```", `{"recipes": []}`},
		{"```\n{\"recipes\": []}\n```", `{"recipes": []}`},
		{"  {\"recipes\": []}  ", `{"recipes": []}`},
	}
	for _, tc := range cases {
		if got := stripFences(tc.in); got != tc.want {
			t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

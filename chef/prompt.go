package chef

import (
	"fmt"
	"strings"

	"chef-backend/models"
)

const systemPrompt = "Ești bucătar profesionist. Răspunzi DOAR cu JSON valid, fără markdown."

var modeInstructions = map[string]string{
	models.RecipeKindTop:      "Creează 3 rețete folosind produsele cu discount mare. Rețete tradiționale românești sau internaționale populare.",
	models.RecipeKindCheapest: "Creează 3 rețete foarte economice. Focus pe cost minim, porții generoase.",
	models.RecipeKindSelected: "Creează 3 rețete care combină logic produsele selectate.",
	models.RecipeKindGeneral:  "Creează 3 rețete variate și apetisante.",
}

// buildPrompt renders the user prompt for one generation call. Only the
// first 20 products are listed to keep the prompt bounded.
func buildPrompt(products []models.Offer, kind string, maxBudget float64) string {
	var list strings.Builder
	for i, p := range products {
		if i >= 20 {
			break
		}
		fmt.Fprintf(&list, "- %s: %.2f lei (-%d%%)\n", p.Name, p.NewPrice, p.DiscountPercentage)
	}

	instruction, ok := modeInstructions[kind]
	if !ok {
		instruction = modeInstructions[models.RecipeKindGeneral]
	}

	budgetNote := ""
	if maxBudget > 0 {
		budgetNote = fmt.Sprintf("\nBuget maxim per rețetă: %.0f lei.", maxBudget)
	}

	return fmt.Sprintf(`Ești bucătar profesionist român.

PRODUSE DISPONIBILE LA OFERTĂ:
%s
CERINȚĂ: %s%s

REGULI:
- Combină ingredientele logic (carne+legume, paste+sos, fructe doar în deserturi)
- Nu pune fructe în mâncăruri sărate
- Folosește minimum 2 produse din ofertă per rețetă
- Prețuri ingrediente extra: ulei 3 lei, sare 1 leu, ceapă 2 lei, usturoi 2 lei, smântână 5 lei, ouă 8 lei, orez 4 lei, paste 4 lei

Răspunde DOAR cu JSON valid:
{"recipes": [
  {
    "name": "Nume Rețetă",
    "description": "Descriere scurtă și apetisantă",
    "ingredients": [
      {"name": "Produs", "quantity": "cantitate", "price": 0, "from_offer": true}
    ],
    "instructions": ["Pas 1", "Pas 2", "Pas 3", "Pas 4", "Pas 5"],
    "prep_time": "X min",
    "cook_time": "Y min",
    "servings": 4,
    "estimated_cost": 0,
    "cost_per_serving": 0,
    "difficulty": "ușor/mediu/avansat",
    "nutrition": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0},
    "tags": ["categorie"],
    "tips": "Sfat practic"
  }
]}`, list.String(), instruction, budgetNote)
}

// stripFences removes a markdown code fence around a JSON payload, which
// some models emit despite being told not to.
func stripFences(content string) string {
	if !strings.Contains(content, "```") {
		return strings.TrimSpace(content)
	}
	parts := strings.Split(content, "```")
	if len(parts) < 2 {
		return strings.TrimSpace(content)
	}
	body := strings.TrimPrefix(strings.TrimSpace(parts[1]), "json")
	return strings.TrimSpace(body)
}

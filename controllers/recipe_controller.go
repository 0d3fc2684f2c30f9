package controllers

import (
	"chef-backend/cache"
	"chef-backend/chef"
	"chef-backend/models"
	"chef-backend/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RecipeController serves cached recipe sets and on-demand generation for a
// user-selected offer subset.
type RecipeController struct {
	cache    *cache.Controller
	chef     *chef.Chef
	offers   *repository.OfferRepository
	validate *validator.Validate
}

func NewRecipeController(cacheCtl *cache.Controller, ch *chef.Chef, offers *repository.OfferRepository) *RecipeController {
	return &RecipeController{
		cache:    cacheCtl,
		chef:     ch,
		offers:   offers,
		validate: validator.New(),
	}
}

// GetRecipes serves the cached top/cheapest recipe set, regenerating first
// when the cache is absent or stale.
func (rc *RecipeController) GetRecipes(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if kind != models.RecipeKindTop && kind != models.RecipeKindCheapest {
		return c.Status(400).JSON(fiber.Map{"error": "Tip de rețete necunoscut, folosește top sau cheapest"})
	}

	recipes, lastUpdated, err := rc.cache.Get(c.UserContext(), kind)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Nu s-au putut genera rețetele"})
	}
	return c.JSON(fiber.Map{"recipes": recipes, "last_updated": lastUpdated})
}

type selectionRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// GenerateForSelection bypasses the cache and generates recipes from the
// selected offers. Unknown ids fall back to the top current offers.
func (rc *RecipeController) GenerateForSelection(c *fiber.Ctx) error {
	var req selectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := rc.validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Lista de produse selectate este goală"})
	}

	offers, err := rc.offers.QueryCurrent()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Nu s-au putut încărca ofertele"})
	}

	recipes := rc.chef.GenerateForSelection(c.UserContext(), offers, req.IDs)
	return c.JSON(fiber.Map{"recipes": recipes})
}

package routes

import (
	"chef-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterRecipeRoutes(app *fiber.App, rc *controllers.RecipeController) {
	api := app.Group("/api")

	api.Get("/recipes/:kind", rc.GetRecipes)
	api.Post("/recipes/selection", rc.GenerateForSelection)
}

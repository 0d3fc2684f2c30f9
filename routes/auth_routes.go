package routes

import (
	"chef-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterAuthRoutes(app *fiber.App, ac *controllers.AuthController, hc *controllers.HealthController) {
	api := app.Group("/api")

	api.Post("/login", ac.Login)
	api.Get("/health", hc.HealthCheck)
}

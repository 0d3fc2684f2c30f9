package routes

import (
	"chef-backend/controllers"
	"chef-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterOfferRoutes(app *fiber.App, oc *controllers.OfferController, jwtSecret string) {
	api := app.Group("/api")

	api.Get("/offers", oc.GetOffers)
	api.Get("/dashboard", oc.GetDashboard)

	admin := api.Group("/", middleware.JWTMiddleware(jwtSecret))
	admin.Post("/refresh", oc.RefreshOffers)
	admin.Get("/scrape-log", oc.GetScrapeLog)
}

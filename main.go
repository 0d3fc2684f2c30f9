package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chef-backend/cache"
	"chef-backend/chef"
	"chef-backend/config"
	"chef-backend/controllers"
	"chef-backend/database"
	"chef-backend/repository"
	"chef-backend/routes"
	"chef-backend/scheduler"
	"chef-backend/scraper"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	log.Println("🚀 Starting Chef Anti-Inflație API...")

	cfg := config.Load()

	if err := database.ConnectDatabase(cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := database.SeedAdmin(database.DB, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("❌ %v", err)
	}

	offerRepo := repository.NewOfferRepository(database.DB)
	scrapeLogRepo := repository.NewScrapeLogRepository(database.DB)
	cacheRepo := repository.NewRecipeCacheRepository(database.DB)

	adapters := []scraper.Adapter{
		scraper.NewLidlAdapter(cfg.LidlMarkup, cfg.ScrapeTimeout),
		scraper.NewKauflandAdapter(cfg.KauflandMarkup, cfg.ScrapeTimeout),
	}
	pipeline := scraper.NewPipeline(adapters, offerRepo, scrapeLogRepo, cfg.MinOffers, cfg.ScrapeTimeout)

	aiChef := chef.New(chef.NewGroqProvider(cfg.GroqAPIKey, cfg.GroqModel))

	cacheCtl := cache.NewController(offerRepo, cacheRepo, aiChef, cfg.CacheWindow, cfg.RegenTimeout)
	if err := cacheCtl.LoadFromStore(); err != nil {
		log.Printf("⚠️ Could not restore recipe cache, starting empty: %v", err)
	}

	sched := scheduler.New(pipeline, cacheCtl, cfg.ScrapeSchedule, cfg.StalenessCheck)
	sched.Start()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(logger.New())

	offerController := controllers.NewOfferController(offerRepo, scrapeLogRepo, pipeline, sched, cacheCtl, cfg.MinOffers)
	recipeController := controllers.NewRecipeController(cacheCtl, aiChef, offerRepo)
	authController := controllers.NewAuthController(cfg.JWTSecret)
	healthController := controllers.NewHealthController(sched)

	routes.RegisterOfferRoutes(app, offerController, cfg.JWTSecret)
	routes.RegisterRecipeRoutes(app, recipeController)
	routes.RegisterAuthRoutes(app, authController, healthController)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Chef Anti-Inflație API",
			"status":  "running",
			"endpoints": fiber.Map{
				"offers":    "/api/offers",
				"recipes":   "/api/recipes/top",
				"dashboard": "/api/dashboard",
				"refresh":   "/api/refresh",
				"health":    "/api/health",
			},
		})
	})

	// Graceful shutdown: stop taking requests, then stop the scheduler and
	// flush the cache.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutdown signal received, stopping...")
		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Server shutdown error: %v", err)
		}
	}()

	fmt.Println("🚀 Server running on port " + cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Server error: %v", err)
	}

	sched.Stop()
	log.Println("👋 Chef Anti-Inflație API stopped gracefully")
}

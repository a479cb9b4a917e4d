package main

import (
	"fmt"
	"log"

	"tcgstore/config"
	"tcgstore/controllers"
	"tcgstore/database"
	"tcgstore/middleware"
	"tcgstore/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	database.ConnectDatabase(cfg.DatabaseDSN)
	controllers.Init(cfg)
	middleware.Init(cfg.JWTSecret)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(logger.New())

	routes.RegisterCardRoutes(app)
	routes.RegisterPricingRoutes(app)
	routes.RegisterStorefrontRoutes(app)
	routes.RegisterOrderRoutes(app)
	routes.RegisterAdminRoutes(app)

	web := app.Group("/api")
	web.Post("/register", controllers.Register)
	web.Post("/login", controllers.Login)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "🚀 TCG store backend is running!"})
	})

	fmt.Println("🚀 Server running on port " + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

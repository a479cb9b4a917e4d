package routes

import (
	"tcgstore/controllers"
	"tcgstore/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterCardRoutes(app *fiber.App) {
	// Middleware is attached per route, not on the group: the group
	// prefix also covers the public display-price route registered in
	// RegisterPricingRoutes.
	cards := app.Group("/api/cards")

	cards.Get("/", middleware.JWTMiddleware, controllers.GetMyCards)
	cards.Post("/", middleware.JWTMiddleware, controllers.CreateCard)
	cards.Get("/:id", middleware.JWTMiddleware, controllers.GetCard)
	cards.Put("/:id", middleware.JWTMiddleware, controllers.UpdateCard)
	cards.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteCard)
}

package routes

import (
	"tcgstore/controllers"
	"tcgstore/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterPricingRoutes(app *fiber.App) {
	// Display price is public: it backs every storefront page view.
	app.Get("/api/cards/:id/price", controllers.GetCardDisplayPrice)

	// Sync and override mutate pricing state and need a logged-in
	// owner (or admin).
	app.Get("/api/cards/:id/indicative", middleware.JWTMiddleware, controllers.GetIndicativePrice)
	app.Post("/api/cards/:id/sync", middleware.JWTMiddleware, controllers.SyncCardPricing)
	app.Put("/api/cards/:id/price/override", middleware.JWTMiddleware, controllers.SetPriceOverride)

	app.Post("/api/sync/batch", middleware.JWTMiddleware, controllers.SyncMyCards)
}

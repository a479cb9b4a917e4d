package routes

import (
	"tcgstore/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterStorefrontRoutes(app *fiber.App) {
	app.Get("/api/shops/:slug", controllers.GetStorefront)
	app.Post("/api/shops/:slug/cards/:id/offers", controllers.CreateOffer)
}

package routes

import (
	"tcgstore/controllers"
	"tcgstore/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterOrderRoutes(app *fiber.App) {
	orders := app.Group("/api/orders", middleware.JWTMiddleware)

	orders.Get("/", controllers.GetOrders)
	orders.Put("/:id/status", controllers.UpdateOrderStatus)
}

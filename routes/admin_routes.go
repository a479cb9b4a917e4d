package routes

import (
	"tcgstore/controllers"
	"tcgstore/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.JWTAdminMiddleware)

	admin.Get("/smtp", controllers.GetSMTPSettings)
	admin.Put("/smtp", controllers.UpdateSMTPSettings)
	admin.Post("/smtp/test", controllers.SendTestMail)

	admin.Get("/users", controllers.GetUsers)
	admin.Put("/users/:id/active", controllers.SetUserActive)
}

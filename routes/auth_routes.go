package routes

import (
	"github.com/leonardoresende2010-coder/cism-repositorio/handlers"
	"github.com/leonardoresende2010-coder/cism-repositorio/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/me", middleware.Protected(), handlers.GetMe)

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/users/:userId/premium", handlers.GrantPremium)
}

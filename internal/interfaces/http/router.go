package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-hospitalario/internal/application/inventory"
	"github.com/jhoicas/Inventario-hospitalario/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC   *session.UseCase
	InventoryUC *inventory.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	sessionHandler := NewSessionHandler(deps.SessionUC)
	api.Post("/auth/login", sessionHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", sessionHandler.Me)

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.SessionUC, deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.Table)
	invGroup.Post("/items", inventoryHandler.AddItem)
	invGroup.Put("/items/:id", inventoryHandler.UpdateItem)
	invGroup.Delete("/items/:id", inventoryHandler.RemoveItem)
	invGroup.Post("/reload", inventoryHandler.Reload)
	invGroup.Get("/export", inventoryHandler.Export)
}

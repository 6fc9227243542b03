package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-commands/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CommandUC *inventory.CommandUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Comandos (protegido: requieren Bearer Token)
	commands := api.Group("/commands", AuthMiddleware(deps.JWTSecret))
	commandHandler := NewCommandHandler(deps.CommandUC)
	commands.Post("/sale", commandHandler.ProcessSale)
	commands.Post("/restock", commandHandler.ProcessRestock)
}

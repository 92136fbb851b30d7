package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo el núcleo de movimientos va
// protegido: el actor del movimiento sale del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/history", inventoryHandler.GetHistory)
	invGroup.Get("/stock/:productID", inventoryHandler.GetStock)
}

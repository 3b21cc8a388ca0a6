package http

import (
	"github.com/gofiber/fiber/v2"

	appsim "github.com/jhoicas/Simulacion-api/internal/application/simulation"
	"github.com/jhoicas/Simulacion-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Newsvendor *appsim.NewsvendorUseCase
	Inventory  *appsim.InventoryUseCase
	JWTSecret  string         // vacío = API pública
	Log        *logger.Logger // nil = sin log de peticiones
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Simulaciones (protegidas solo si hay JWT_SECRET)
	var sims fiber.Router
	if deps.JWTSecret != "" {
		sims = api.Group("/simulations", AuthMiddleware(deps.JWTSecret))
	} else {
		sims = api.Group("/simulations")
	}

	h := NewSimulationHandler(deps.Newsvendor, deps.Inventory)
	sims.Get("/defaults", h.Defaults)
	sims.Post("/newsvendor", h.RunNewsvendor)
	sims.Post("/newsvendor/export", h.ExportNewsvendor)
	sims.Post("/inventory", h.RunInventory)
	sims.Post("/inventory/export", h.ExportInventory)
}

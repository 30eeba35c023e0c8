package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/monraspgit/ines-stock-api/internal/application/auth"
	"github.com/monraspgit/ines-stock-api/internal/application/stock"
	"github.com/monraspgit/ines-stock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC *stock.UseCase
	AuthUC  *auth.UseCase
	Log     *logger.Logger
}

// Router registra las rutas de la API bajo /api/stock.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/stock")

	stockHandler := NewStockHandler(deps.StockUC, deps.Log)
	api.Get("/", stockHandler.List)
	api.Post("/", stockHandler.BulkInsert)
	api.Put("/update", stockHandler.BulkUpdate)
	api.Delete("/deleteAll", stockHandler.DeleteAll)
	api.Get("/filter", stockHandler.Filter)
	api.Post("/add", stockHandler.Add)

	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/login", authHandler.Login)
}

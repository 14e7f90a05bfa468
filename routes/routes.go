package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openmatch/matchex/controllers"
	"github.com/openmatch/matchex/engine"
)

func SetupRouter(eng *engine.Engine) *fiber.App {
	controllers.Engine = eng

	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	app.Get("/api/v2/public/depth", controllers.GetDepth)
	app.Get("/api/v2/public/pending-orders", controllers.GetPendingOrders)
	app.Get("/api/v2/public/completed-orders", controllers.GetCompletedOrders)

	app.Post("/api/v2/market/orders", controllers.CreateOrder)

	return app
}

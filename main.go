package main

import (
	"log"
	"restaurant_pos/config"
	"restaurant_pos/database"
	"restaurant_pos/handler"
	"restaurant_pos/helper"
	"restaurant_pos/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // menu photos
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartLowStockScheduler()
	handler.StartStalePagandoWorker()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}

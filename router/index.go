package router

import (
	"restaurant_pos/constants"
	"restaurant_pos/handler"
	"restaurant_pos/middleware"
	"restaurant_pos/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Put("/:accountId", middleware.Protected(), validate.UpdateAccount("accountId"), handler.UpdateAccount)
	account.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	mesa := v1.Group("/mesas", logger.New())
	mesa.Get("/", middleware.Protected(), handler.GetTables)
	mesa.Get("/zonas", middleware.Protected(), handler.GetZones)
	mesa.Get("/:mesaId", middleware.Protected(), validate.GetById("mesaId"), handler.GetTable)
	mesa.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	mesa.Put("/:mesaId", middleware.Protected(), validate.UpdateTable("mesaId"), handler.UpdateTable)
	mesa.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTables)
	mesa.Post("/:mesaId/pre-cuenta", middleware.Protected(), validate.GetById("mesaId"), handler.PreCheck)
	mesa.Post("/:mesaId/transferir", middleware.Protected(), validate.TransferTable("mesaId"), handler.TransferTable)
	mesa.Post("/:mesaId/pagar", middleware.Protected(), validate.Payment("mesaId"), handler.FinalizePayment)

	categoria := v1.Group("/categorias", logger.New())
	categoria.Get("/", middleware.Protected(), handler.GetCategories)
	categoria.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	categoria.Put("/:categoriaId", middleware.Protected(), validate.UpdateCategory("categoriaId"), handler.UpdateCategory)
	categoria.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCategories)

	producto := v1.Group("/productos", logger.New())
	producto.Get("/", middleware.Protected(), handler.GetProducts)
	producto.Get("/slug/:slug", middleware.Protected(), handler.GetProductBySlug)
	producto.Get("/:productoId", middleware.Protected(), validate.GetById("productoId"), handler.GetProduct)
	producto.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	producto.Put("/:productoId", middleware.Protected(), validate.UpdateProduct("productoId"), handler.UpdateProduct)
	producto.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProducts)
	producto.Post("/:productoId/imagen", middleware.Protected(), validate.UploadProductImage("productoId"), handler.UploadProductImage)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	orden := v1.Group("/ordenes", logger.New())
	orden.Get("/", middleware.Protected(), handler.GetOrders)
	orden.Post("/", middleware.Protected(), validate.SendOrder(), handler.SendOrder)
	orden.Get("/tablero/:station", middleware.Protected(), handler.GetStationBoard)
	orden.Get("/codigo/:code", middleware.Protected(), handler.GetOrderByCode)
	orden.Get("/:ordenId", middleware.Protected(), validate.GetById("ordenId"), handler.GetOrder)
	orden.Patch("/:ordenId/estado", middleware.Protected(), validate.UpdateOrderStatus("ordenId"), handler.UpdateOrderStatus)
	orden.Post("/:ordenId/anular", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.GetById("ordenId"), handler.VoidOrder)

	caja := v1.Group("/caja", logger.New())
	caja.Get("/actual", middleware.Protected(), handler.GetCurrentSession)
	caja.Get("/sesiones", middleware.Protected(), handler.GetSessions)
	caja.Get("/sesiones/:sesionId", middleware.Protected(), validate.GetById("sesionId"), handler.GetSession)
	caja.Post("/abrir", middleware.Protected(), validate.OpenSession(), handler.OpenSession)
	caja.Post("/cerrar", middleware.Protected(), validate.CloseSession(), handler.CloseSession)
	caja.Post("/movimientos", middleware.Protected(), validate.CreateMovement(), handler.CreateMovement)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)

	v1.Get("/ws/:topic", websocket.New(handler.WebSocketConnection))
}

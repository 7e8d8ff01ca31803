package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/orders"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	OrderUC     *orders.OrderUseCase
	PDFUC       *orders.PDFUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
// El catálogo se lee sin token; la operación del back office requiere admin o
// empleado, y la gestión de usuarios queda reservada al admin.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo en lectura (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)

	// Operación del back office (admin y empleado)
	staff := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin, entity.RoleEmpleado))

	products := staff.Group("/products")
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.PDFUC)
	ordersGroup := staff.Group("/orders")
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Get("/:id/pdf", orderHandler.GetPDF)
	ordersGroup.Put("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	staff.Get("/dashboard", dashboardHandler.Summary)

	userHandler := NewUserHandler(deps.UserUC)
	staff.Get("/users/clientes", userHandler.ListClientes)

	// Gestión de usuarios (solo admin)
	admin := api.Group("/users", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	admin.Post("/", userHandler.Create)
	admin.Get("/", userHandler.List)
	admin.Get("/:id", userHandler.GetByID)
	admin.Put("/:id", userHandler.Update)
	admin.Delete("/:id", userHandler.Delete)
}

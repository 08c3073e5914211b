package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecolvin/tracelink-api/internal/application/auth"
	"github.com/ecolvin/tracelink-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ImportUC   *usecase.ImportUseCase
	ProductUC  *usecase.ProductUseCase
	AlertUC    *usecase.AlertUseCase
	DeliveryUC *usecase.DeliveryUseCase
	ReturnUC   *usecase.ReturnUseCase
	AdminUC    *usecase.AdminUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	HealthPing func() error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		db := "ok"
		if deps.HealthPing != nil {
			if err := deps.HealthPing(); err != nil {
				db = "down"
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": "tracelink-api", "db": db})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", AuthMiddleware(deps.JWTSecret), authHandler.Profile)

	// Imports: la carga admite peticiones anónimas (queda sin autor); el historial requiere token.
	importHandler := NewImportHandler(deps.ImportUC)
	imports := api.Group("/imports")
	imports.Post("/", OptionalAuthMiddleware(deps.JWTSecret), importHandler.Create)
	imports.Get("/", AuthMiddleware(deps.JWTSecret), importHandler.List)
	imports.Get("/:id", AuthMiddleware(deps.JWTSecret), importHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (lectura con token, escritura solo admin)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:sku", productHandler.GetBySKU)
	products.Post("/", RequireAdmin(), productHandler.Create)
	products.Patch("/:sku", RequireAdmin(), productHandler.Update)

	// Alerts
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts := protected.Group("/alerts")
	alerts.Get("/", alertHandler.List)
	alerts.Get("/feed", alertHandler.Feed)
	alerts.Get("/config", alertHandler.GetConfig)
	alerts.Put("/config", RequireAdmin(), alertHandler.UpdateConfig)
	alerts.Patch("/:id/resolve", RequireAdmin(), alertHandler.Resolve)

	// Deliveries (lectura con token, escritura solo admin)
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries := protected.Group("/deliveries")
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.Get)
	deliveries.Post("/", RequireAdmin(), deliveryHandler.Create)
	deliveries.Patch("/:id", RequireAdmin(), deliveryHandler.Update)
	deliveries.Delete("/:id", RequireAdmin(), deliveryHandler.Delete)

	// Returns (lectura y alta con token, edición solo admin)
	returnHandler := NewReturnHandler(deps.ReturnUC)
	returns := protected.Group("/returns")
	returns.Get("/", returnHandler.List)
	returns.Get("/:id", returnHandler.Get)
	returns.Post("/", returnHandler.Create)
	returns.Patch("/:id", RequireAdmin(), returnHandler.Update)

	// Admin
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin := protected.Group("/admin", RequireAdmin())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Patch("/users/:id/role", adminHandler.UpdateRole)
	admin.Patch("/users/:id/permissions", adminHandler.UpdatePermissions)
}

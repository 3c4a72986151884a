package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rfq-tracker/internal/application/auth"
	"github.com/tu-usuario/rfq-tracker/internal/application/rfq"
	"github.com/tu-usuario/rfq-tracker/internal/application/useradmin"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
	"github.com/tu-usuario/rfq-tracker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	RFQUC       *rfq.RFQUseCase
	PDFUC       *rfq.PDFUseCase
	UserAdminUC *useradmin.UserAdminUseCase
	Resolver    *auth.Resolver
	CSRFSecret  string
	CSRFExpMin  int
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CSRFSecret, deps.CSRFExpMin, deps.Log)
	api.Post("/login", authHandler.Login)
	api.Post("/signup", authHandler.Signup)
	api.Get("/csrf-token", authHandler.CSRFToken)

	// Rutas protegidas (cookie access_token o Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Resolver))

	// El doble envío CSRF solo aplica a mutaciones y solo si hay secreto configurado.
	mutating := protected
	if deps.CSRFSecret != "" {
		mutating = protected.Group("/", CSRFMiddleware(deps.CSRFSecret))
	}

	// RFQs
	rfqHandler := NewRFQHandler(deps.RFQUC, deps.PDFUC, deps.Log)
	mutating.Post("/make-rfq-entry", RequireRole(entity.RoleAdmin, entity.RoleSales, entity.RolePricing), rfqHandler.MakeEntry)
	protected.Get("/list-rfq-entry", RequireRole(), rfqHandler.List)
	protected.Get("/get-rfq/:id", RequireRole(), rfqHandler.Get)
	protected.Get("/rfq-pdf/:id", RequireRole(), rfqHandler.DownloadPDF)
	mutating.Delete("/delete-rfq/:id", RequireRole(), rfqHandler.Delete)

	// Perfiles (solo admin)
	userHandler := NewUserHandler(deps.UserAdminUC, deps.Log)
	protected.Get("/list-users", RequireRole(entity.RoleAdmin), userHandler.List)
	mutating.Put("/update-user/:id", RequireRole(entity.RoleAdmin), userHandler.Update)
	mutating.Delete("/delete-user/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)
}

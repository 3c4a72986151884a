package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appauth "github.com/tu-usuario/rfq-tracker/internal/application/auth"
	apprfq "github.com/tu-usuario/rfq-tracker/internal/application/rfq"
	"github.com/tu-usuario/rfq-tracker/internal/application/useradmin"
	"github.com/tu-usuario/rfq-tracker/internal/infrastructure/identity"
	infrapdf "github.com/tu-usuario/rfq-tracker/internal/infrastructure/pdf"
	"github.com/tu-usuario/rfq-tracker/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/rfq-tracker/internal/interfaces/http"
	"github.com/tu-usuario/rfq-tracker/pkg/config"
	"github.com/tu-usuario/rfq-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	profileRepo := postgres.NewProfileRepository(pool)
	rfqRepo := postgres.NewRFQRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	provider := identity.NewClient(cfg.Identity.BaseURL, cfg.Identity.AnonKey, cfg.Identity.AdminKey(), log)
	resolver := appauth.NewResolver(provider, profileRepo)

	authUC := appauth.NewAuthUseCase(provider, profileRepo)
	maskingPolicy := apprfq.NewMaskingPolicy(cfg.Masking.ExemptRoles)
	rfqUC := apprfq.NewRFQUseCase(txRunner, rfqRepo, maskingPolicy)
	pdfGenerator := infrapdf.NewMarotoQuoteSheetGenerator()
	pdfUC := apprfq.NewPDFUseCase(rfqUC, pdfGenerator)
	userAdminUC := useradmin.NewUserAdminUseCase(profileRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RFQ Tracker API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		RFQUC:       rfqUC,
		PDFUC:       pdfUC,
		UserAdminUC: userAdminUC,
		Resolver:    resolver,
		CSRFSecret:  cfg.CSRF.Secret,
		CSRFExpMin:  cfg.CSRF.ExpMinutes,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

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

	"github.com/ecolvin/tracelink-api/internal/application/alerting"
	"github.com/ecolvin/tracelink-api/internal/application/auth"
	"github.com/ecolvin/tracelink-api/internal/application/notification"
	"github.com/ecolvin/tracelink-api/internal/application/usecase"
	"github.com/ecolvin/tracelink-api/internal/infrastructure/excel"
	"github.com/ecolvin/tracelink-api/internal/infrastructure/mailer"
	"github.com/ecolvin/tracelink-api/internal/infrastructure/postgres"
	httpRouter "github.com/ecolvin/tracelink-api/internal/interfaces/http"
	"github.com/ecolvin/tracelink-api/pkg/config"
	"github.com/ecolvin/tracelink-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	alertConfigRepo := postgres.NewAlertConfigRepository(pool)
	importRepo := postgres.NewImportRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	configSvc := alerting.NewConfigService(alertConfigRepo, cfg.Alert.DefaultEmail)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP, log)
	notifier := notification.NewDispatcher(smtpMailer, configSvc, log)
	parser := excel.NewParser()

	importUC := usecase.NewImportUseCase(parser, productRepo, packageRepo, alertRepo, importRepo, notifier, log)
	productUC := usecase.NewProductUseCase(productRepo, alertRepo, notifier, log)
	alertUC := usecase.NewAlertUseCase(alertRepo, deliveryRepo, configSvc)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo)
	returnUC := usecase.NewReturnUseCase(returnRepo)
	adminUC := usecase.NewAdminUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Alert.RootAdminEmail)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    12 << 20, // margen sobre el tope de 10MB del archivo de importación
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TraceLink API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ImportUC:   importUC,
		ProductUC:  productUC,
		AlertUC:    alertUC,
		DeliveryUC: deliveryUC,
		ReturnUC:   returnUC,
		AdminUC:    adminUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
		HealthPing: func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Ping(pingCtx)
		},
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

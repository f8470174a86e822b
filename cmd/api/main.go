package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/clientes-api/docs"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/clientes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/clientes-api/internal/infrastructure/viacep"
	httpRouter "github.com/jhoicas/clientes-api/internal/interfaces/http"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "api",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if err := migrations.Up(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	customerUC := usecase.NewCustomerUseCase(customerRepo,
		usecase.WithTaxIDCheckDigits(cfg.App.ValidateTaxIDCheckDigits))

	viaCEP := viacep.NewClient(cfg.ViaCEP.BaseURL, cfg.ViaCEP.Timeout)
	addressUC := usecase.NewAddressUseCase(viaCEP, cfg.ViaCEP.Timeout)

	// PDF: listado de clientes con los filtros de la consulta
	reportUC := usecase.NewReportUseCase(customerRepo, infrapdf.NewMarotoPDFGenerator())

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:            cfg.App.Name,
		AllowedOrigins:  cfg.HTTP.AllowedOrigins,
		RateLimitMax:    cfg.HTTP.RateLimitMax,
		RateLimitWindow: cfg.HTTP.RateLimitWindow,
		Logger:          log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	httpRouter.Docs(app, "Clientes API", cfg.HTTP.SwaggerFile)

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		CustomerUC:  customerUC,
		AddressUC:   addressUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		Logger:      log,
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

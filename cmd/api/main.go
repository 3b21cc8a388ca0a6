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

	appsim "github.com/jhoicas/Simulacion-api/internal/application/simulation"
	infracsv "github.com/jhoicas/Simulacion-api/internal/infrastructure/csv"
	infrapdf "github.com/jhoicas/Simulacion-api/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/Simulacion-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Simulacion-api/internal/interfaces/http"
	"github.com/jhoicas/Simulacion-api/pkg/config"
	"github.com/jhoicas/Simulacion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth", cfg.JWT.Secret != "").
		Msg("iniciando aplicación")

	// Exportadores: CSV, XLSX y reporte PDF
	exporters := []appsim.Exporter{
		infracsv.NewExporter(),
		infraxlsx.NewExporter(),
		infrapdf.NewReportGenerator(),
	}

	newsvendorUC := appsim.NewNewsvendorUseCase(appsim.NewsvendorSettingsFromConfig(cfg.Newsvendor), log, exporters...)
	inventoryUC := appsim.NewInventoryUseCase(appsim.InventorySettingsFromConfig(cfg.Inventory), log, exporters...)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Simulación API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Newsvendor: newsvendorUC,
		Inventory:  inventoryUC,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/manager-api/docs"
	"github.com/jhoicas/manager-api/internal/application/auth"
	"github.com/jhoicas/manager-api/internal/application/manager"
	infrapdf "github.com/jhoicas/manager-api/internal/infrastructure/pdf"
	"github.com/jhoicas/manager-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/manager-api/internal/interfaces/http"
	"github.com/jhoicas/manager-api/pkg/config"
	"github.com/jhoicas/manager-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")
	if cfg.JWT.UsingDefaultSecret {
		log.Warn().Msg("JWT_SECRET no definido: se firma con el secret por defecto, NO usar en producción")
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	repos, err := storage.Open(connectCtx, cfg)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("conexión al store")
	}

	authUC := auth.NewAuthUseCase(repos.Admins, auth.JWTConfig{Secret: cfg.JWT.Secret})
	managerUC := manager.NewManagerUseCase(repos.Managers)
	exportUC := manager.NewExportUseCase(repos.Managers, infrapdf.NewMarotoRosterGenerator(cfg.App.Name))

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}, log.Zerolog())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Get("/swagger.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Manager API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ManagerUC: managerUC,
		ExportUC:  exportUC,
		JWTSecret: cfg.JWT.Secret,
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
	if err := repos.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre del store")
	}

	log.Info().Msg("aplicación detenida")
}

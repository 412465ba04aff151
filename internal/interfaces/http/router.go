package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/manager-api/internal/application/auth"
	"github.com/jhoicas/manager-api/internal/application/manager"
)

// AppConfig parámetros de la aplicación Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins string
}

// NewApp construye la aplicación Fiber con el manejo de errores y los middlewares comunes.
// El log de peticiones va por fuera de recover para que un panic también deje su línea con status 500.
func NewApp(cfg AppConfig, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ManagerUC *manager.ManagerUseCase
	ExportUC  *manager.ExportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Admin (público)
	adminGroup := api.Group("/admin")
	authHandler := NewAuthHandler(deps.AuthUC)
	adminGroup.Post("/register", authHandler.Register)
	adminGroup.Post("/login", authHandler.Login)

	// Managers (protegido: requiere Bearer Token de un admin activo)
	managers := api.Group("/manager", AuthMiddleware(deps.JWTSecret, deps.AuthUC))
	managerHandler := NewManagerHandler(deps.ManagerUC, deps.ExportUC)
	managers.Get("/", managerHandler.List)
	managers.Get("/search", managerHandler.Search)
	managers.Get("/pagination", managerHandler.Paginate)
	managers.Get("/export", managerHandler.Export)
	managers.Post("/", managerHandler.Create)
	managers.Post("/delete-multiple", managerHandler.DeleteMany)
	managers.Put("/:id", managerHandler.Update)
	managers.Delete("/:id", managerHandler.Delete)
}

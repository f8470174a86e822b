package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	CustomerUC  *usecase.CustomerUseCase
	AddressUC   *usecase.AddressUseCase
	ReportUC    *usecase.ReportUseCase
	JWTSecret   string // vacío: /customers sin autenticación
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", Health(deps.ServiceName))

	var customers fiber.Router
	if deps.JWTSecret != "" {
		customers = app.Group("/customers", AuthMiddleware(deps.JWTSecret))
	} else {
		customers = app.Group("/customers")
	}

	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ReportUC, log)
	addressHandler := NewAddressHandler(deps.AddressUC, log)

	// Rutas de dos segmentos antes de /:id.
	customers.Get("/address/:postalCode", addressHandler.Lookup)
	customers.Get("/export/pdf", customerHandler.ExportPDF)

	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
}

package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

// Docs publica el documento OpenAPI registrado en swag en /docs/doc.json y, si swaggerFile
// existe, la interfaz Swagger UI en /docs. Debe llamarse antes de Router.
func Docs(app *fiber.App, title, swaggerFile string) {
	app.Get("/docs/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "documentação indisponível")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	if swaggerFile == "" {
		return
	}
	if _, err := os.Stat(swaggerFile); err != nil {
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: swaggerFile,
		Path:     "docs",
		Title:    title,
	}))
}

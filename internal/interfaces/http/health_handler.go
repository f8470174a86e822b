package http

import "github.com/gofiber/fiber/v2"

// HealthResponse payload de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Service string `json:"service"`
}

// Health GET /health
func Health(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{Status: "OK", Message: msgServiceAvailable, Service: service})
	}
}

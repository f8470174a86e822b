package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// Mensajes visibles para el usuario (pt-BR, como la interfaz).
const (
	msgInternal         = "Erro interno do servidor"
	msgNotFound         = "Cliente não encontrado"
	msgAddressNotFound  = "CEP não encontrado"
	msgLookupFailed     = "Erro ao consultar CEP, tente novamente"
	msgDuplicate        = "Já existe um cliente com este código"
	msgValidation       = "Dados inválidos"
	msgInvalidID        = "ID inválido"
	msgInvalidBody      = "Corpo da requisição inválido"
	msgUnauthorized     = "Não autorizado"
	msgExportFailed     = "Erro ao gerar relatório"
	msgServiceAvailable = "Customer Management API is running"
)

// respondError traduce errores de dominio a HTTP. Los 500 se registran con detalle y
// responden un mensaje genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msgValidation, Errors: ve.Fields})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msgValidation})
	case errors.Is(err, domain.ErrAddressNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ADDRESS_NOT_FOUND", Message: msgAddressNotFound})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msgNotFound})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: msgDuplicate})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msgUnauthorized})
	case errors.Is(err, domain.ErrLookupFailed):
		log.Warn().Err(err).Str("request_id", requestID(c)).Msg("consulta de CEP fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LOOKUP_FAILED", Message: msgLookupFailed})
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Str("request_id", requestID(c)).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// AddressHandler consulta de dirección por CEP.
type AddressHandler struct {
	uc  *usecase.AddressUseCase
	log *logger.Logger
}

// NewAddressHandler construye el handler.
func NewAddressHandler(uc *usecase.AddressUseCase, log *logger.Logger) *AddressHandler {
	return &AddressHandler{uc: uc, log: log}
}

// Lookup GET /customers/address/:postalCode
//
//	@Summary	Consultar endereço por CEP
//	@Tags		address
//	@Produce	json
//	@Param		postalCode	path		string	true	"CEP (8 dígitos)"
//	@Success	200			{object}	dto.AddressResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Failure	500			{object}	dto.ErrorResponse
//	@Router		/customers/address/{postalCode} [get]
func (h *AddressHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.uc.Lookup(c.UserContext(), c.Params("postalCode"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

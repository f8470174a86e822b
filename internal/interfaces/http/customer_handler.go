package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// CustomerHandler maneja las peticiones HTTP de /customers.
type CustomerHandler struct {
	uc     *usecase.CustomerUseCase
	report *usecase.ReportUseCase
	log    *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, report *usecase.ReportUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, report: report, log: log}
}

// Create POST /customers
//
//	@Summary	Crear cliente
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CreateCustomerRequest	true	"Cliente"
//	@Success	201		{object}	dto.CustomerResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgInvalidBody})
	}
	if in.UserID.IsZero() {
		in.UserID = GetUserID(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /customers/:id
//
//	@Summary	Obtener cliente
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		string	true	"ID del cliente"
//	@Success	200	{object}	dto.CustomerResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: msgInvalidID})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// List GET /customers?code=&name=&city=&postalCode=&page=1&limit=10
//
//	@Summary	Listar clientes
//	@Tags		customers
//	@Produce	json
//	@Param		code		query		string	false	"Código (contiene)"
//	@Param		name		query		string	false	"Nome (contiene)"
//	@Param		city		query		string	false	"Cidade (contiene)"
//	@Param		postalCode	query		string	false	"CEP (contiene)"
//	@Param		page		query		int		false	"Página (1..)"
//	@Param		limit		query		int		false	"Tamaño de página (máx. 1000)"
//	@Success	200			{object}	dto.CustomerListResponse
//	@Router		/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(usecase.DefaultPageSize)))
	out, err := h.uc.List(c.UserContext(), filterFromQuery(c), page, limit)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update PUT /customers/:id (parcial: solo cambian los campos enviados)
//
//	@Summary	Actualizar cliente
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"ID del cliente"
//	@Param		body	body		dto.UpdateCustomerRequest	true	"Campos a cambiar"
//	@Success	200		{object}	dto.CustomerResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: msgInvalidID})
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgInvalidBody})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /customers/:id
//
//	@Summary	Eliminar cliente
//	@Tags		customers
//	@Param		id	path	string	true	"ID del cliente"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: msgInvalidID})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF GET /customers/export/pdf (mismos filtros que List)
//
//	@Summary	Exportar listado en PDF
//	@Tags		customers
//	@Produce	application/pdf
//	@Success	200	{file}	binary
//	@Router		/customers/export/pdf [get]
func (h *CustomerHandler) ExportPDF(c *fiber.Ctx) error {
	pdf, err := h.report.ExportPDF(c.UserContext(), filterFromQuery(c))
	if err != nil {
		h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("exportar PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: msgExportFailed})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="clientes.pdf"`)
	return c.Send(pdf)
}

func parseID(c *fiber.Ctx) (entity.ID, bool) {
	id, err := entity.ParseID(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func filterFromQuery(c *fiber.Ctx) entity.CustomerFilter {
	return entity.CustomerFilter{
		Code:       c.Query("code"),
		Name:       c.Query("name"),
		City:       c.Query("city"),
		PostalCode: c.Query("postalCode"),
	}
}

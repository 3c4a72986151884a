package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/application/rfq"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/pkg/logger"
)

// RFQHandler maneja las peticiones HTTP del agregado RFQ (protegido).
type RFQHandler struct {
	uc    *rfq.RFQUseCase
	pdfUC *rfq.PDFUseCase
	log   *logger.Logger
}

// NewRFQHandler construye el handler.
func NewRFQHandler(uc *rfq.RFQUseCase, pdfUC *rfq.PDFUseCase, log *logger.Logger) *RFQHandler {
	return &RFQHandler{uc: uc, pdfUC: pdfUC, log: log}
}

// MakeEntry godoc
// @Summary      Crear o reemplazar un RFQ con sus líneas
// @Tags         rfq
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertRFQRequest  true  "cabecera + conjunto completo de líneas"
// @Success      201   {object}  dto.UpsertRFQResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/make-rfq-entry [post]
func (h *RFQHandler) MakeEntry(c *fiber.Ctx) error {
	caller := CurrentUser(c)
	var in dto.UpsertRFQRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Upsert(c.Context(), caller, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rfq_no, company_name, sales_person y customer_name son requeridos; cantidades y montos no negativos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "RFQ no encontrado"})
		}
		if errors.Is(err, domain.ErrRFQNoAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RFQ_NO_EXISTS", Message: "el número de RFQ ya existe"})
		}
		h.log.Error().Err(err).Str("rfq_id", in.ID).Msg("upsert rfq")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UpsertRFQResponse{Success: true, RFQID: id})
}

// List godoc
// @Summary      Listar RFQs visibles, enmascarados según rol
// @Tags         rfq
// @Produce      json
// @Success      200  {object}  dto.ListRFQResponse
// @Router       /api/list-rfq-entry [get]
func (h *RFQHandler) List(c *fiber.Ctx) error {
	caller := CurrentUser(c)
	list, err := h.uc.List(c.Context(), caller)
	if err != nil {
		h.log.Error().Err(err).Msg("listar rfqs")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.ListRFQResponse{Success: true, Data: list})
}

// Get godoc
// @Summary      Obtener un RFQ visible, enmascarado según rol
// @Tags         rfq
// @Produce      json
// @Param        id   path      string  true  "id del RFQ"
// @Success      200  {object}  dto.GetRFQResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/get-rfq/{id} [get]
func (h *RFQHandler) Get(c *fiber.Ctx) error {
	caller := CurrentUser(c)
	id := c.Params("id")
	out, err := h.uc.Get(c.Context(), caller, id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			// Ausente o no visible: misma respuesta, no se revela existencia.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "RFQ no encontrado"})
		}
		h.log.Error().Err(err).Str("rfq_id", id).Msg("obtener rfq")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.GetRFQResponse{Success: true, Data: *out})
}

// Delete godoc
// @Summary      Eliminar un RFQ con sus líneas (dueño o admin)
// @Tags         rfq
// @Produce      json
// @Param        id   path      string  true  "id del RFQ"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delete-rfq/{id} [delete]
func (h *RFQHandler) Delete(c *fiber.Ctx) error {
	caller := CurrentUser(c)
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), caller, id); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "RFQ no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el creador o un admin pueden eliminar el RFQ"})
		}
		h.log.Error().Err(err).Str("rfq_id", id).Msg("eliminar rfq")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// DownloadPDF godoc
// @Summary      Descargar la hoja de cotización en PDF, enmascarada según rol
// @Tags         rfq
// @Produce      application/pdf
// @Param        id   path      string  true  "id del RFQ"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rfq-pdf/{id} [get]
func (h *RFQHandler) DownloadPDF(c *fiber.Ctx) error {
	caller := CurrentUser(c)
	id := c.Params("id")
	pdfBytes, filename, err := h.pdfUC.DownloadQuoteSheet(c.Context(), caller, id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "RFQ no encontrado"})
		}
		h.log.Error().Err(err).Str("rfq_id", id).Msg("pdf rfq")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/application/useradmin"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/pkg/logger"
)

// UserHandler administración de perfiles (solo admin; el router aplica el rol).
type UserHandler struct {
	uc  *useradmin.UserAdminUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *useradmin.UserAdminUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar perfiles
// @Tags         users
// @Produce      json
// @Success      200  {array}   dto.ProfileResponse
// @Router       /api/list-users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("listar perfiles")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar nombre y/o rol de un perfil
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "user_id del perfil"
// @Param        body  body  dto.UpdateProfileRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/update-user/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	userID := c.Params("id")
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	profile, err := h.uc.Update(userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido y rol válido (admin, sales, pricing, user)"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		h.log.Error().Err(err).Str("user_id", userID).Msg("actualizar perfil")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(profile)
}

// Delete godoc
// @Summary      Eliminar el perfil de una identidad
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "user_id del perfil"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delete-user/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := h.uc.Delete(userID); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		h.log.Error().Err(err).Str("user_id", userID).Msg("eliminar perfil")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

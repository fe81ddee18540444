package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/application/usecase"
	"github.com/jhoicas/tanpopo-api/pkg/logger"
	"github.com/jhoicas/tanpopo-api/pkg/validation"
)

// HomepageHandler contenido de la página pública.
type HomepageHandler struct {
	uc       *usecase.HomepageUseCase
	validate *validation.Validator
	log      *logger.Logger
}

// NewHomepageHandler construye el handler.
func NewHomepageHandler(uc *usecase.HomepageUseCase, v *validation.Validator, log *logger.Logger) *HomepageHandler {
	return &HomepageHandler{uc: uc, validate: v, log: log}
}

// List godoc
// @Summary      Contenido de la página pública
// @Tags         homepage
// @Produce      json
// @Param        section  query  string  false  "hero, programs, facilities..."
// @Success      200  {object}  dto.Response{data=[]dto.HomepageContentResponse}
// @Router       /api/homepage [get]
func (h *HomepageHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext(), c.Query("section"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK("", items))
}

// Upsert godoc
// @Summary      Crear o actualizar un bloque de contenido
// @Tags         homepage
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpsertHomepageContentRequest  true  "section, contentKey, contentValue"
// @Success      200   {object}  dto.Response{data=dto.HomepageContentResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/homepage [post]
func (h *HomepageHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertHomepageContentRequest
	if ok, err := bind(c, h.validate, &in); !ok {
		return err
	}
	item, err := h.uc.Upsert(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK("Contenido actualizado", item))
}

// BulkUpsert godoc
// @Summary      Actualizar varios bloques en una transacción
// @Tags         homepage
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.BulkHomepageContentRequest  true  "items"
// @Success      200   {object}  dto.Response{data=[]dto.HomepageContentResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/homepage [put]
func (h *HomepageHandler) BulkUpsert(c *fiber.Ctx) error {
	var in dto.BulkHomepageContentRequest
	if ok, err := bind(c, h.validate, &in); !ok {
		return err
	}
	items, err := h.uc.BulkUpsert(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK("Contenido actualizado", items))
}

// Delete godoc
// @Summary      Eliminar un bloque de contenido
// @Tags         homepage
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Content ID"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/homepage/{id} [delete]
func (h *HomepageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "Contenido eliminado"})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/application/usecase"
	"github.com/jhoicas/tanpopo-api/pkg/logger"
	"github.com/jhoicas/tanpopo-api/pkg/validation"
)

// LeadHandler formularios públicos y su consulta interna.
type LeadHandler struct {
	uc       *usecase.LeadUseCase
	validate *validation.Validator
	log      *logger.Logger
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *usecase.LeadUseCase, v *validation.Validator, log *logger.Logger) *LeadHandler {
	return &LeadHandler{uc: uc, validate: v, log: log}
}

// CreateRegistration godoc
// @Summary      Solicitar visita guiada
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRegistrationRequest  true  "datos de contacto"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/registration [post]
func (h *LeadHandler) CreateRegistration(c *fiber.Ctx) error {
	var in dto.CreateRegistrationRequest
	if ok, err := bind(c, h.validate, &in); !ok {
		return err
	}
	id, err := h.uc.CreateRegistration(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Solicitud registrada; nos comunicaremos pronto",
		ID:      id,
	})
}

// CreateContactMessage godoc
// @Summary      Enviar mensaje de contacto
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContactMessageRequest  true  "mensaje"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contact [post]
func (h *LeadHandler) CreateContactMessage(c *fiber.Ctx) error {
	var in dto.CreateContactMessageRequest
	if ok, err := bind(c, h.validate, &in); !ok {
		return err
	}
	id, err := h.uc.CreateContactMessage(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Mensaje enviado",
		ID:      id,
	})
}

// ListRegistrations godoc
// @Summary      Solicitudes de visita (más recientes primero)
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response{data=[]dto.RegistrationResponse}
// @Router       /api/admin/registrations [get]
func (h *LeadHandler) ListRegistrations(c *fiber.Ctx) error {
	items, err := h.uc.ListRegistrations(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK("", items))
}

// ListContactMessages godoc
// @Summary      Mensajes de contacto (más recientes primero)
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response{data=[]dto.ContactMessageResponse}
// @Router       /api/admin/contacts [get]
func (h *LeadHandler) ListContactMessages(c *fiber.Ctx) error {
	items, err := h.uc.ListContactMessages(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK("", items))
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/pkg/logger"
	"github.com/jhoicas/tanpopo-api/pkg/validation"
)

// Códigos de error expuestos al cliente.
const (
	CodeInvalidBody       = "INVALID_BODY"
	CodeValidation        = "VALIDATION"
	CodeOutsideGeofence   = "OUTSIDE_GEOFENCE"
	CodeAlreadyCheckedIn  = "ALREADY_CHECKED_IN"
	CodeNotCheckedIn      = "NOT_CHECKED_IN"
	CodeAlreadyCheckedOut = "ALREADY_CHECKED_OUT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInternal          = "INTERNAL"
)

// errorMapping asocia un error de dominio con su status y código.
type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{domain.ErrOutsideGeofence, fiber.StatusBadRequest, CodeOutsideGeofence},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, CodeValidation},
	{domain.ErrAlreadyCheckedIn, fiber.StatusConflict, CodeAlreadyCheckedIn},
	{domain.ErrNotCheckedIn, fiber.StatusConflict, CodeNotCheckedIn},
	{domain.ErrAlreadyCheckedOut, fiber.StatusConflict, CodeAlreadyCheckedOut},
	{domain.ErrUsernameTaken, fiber.StatusConflict, CodeConflict},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, CodeUnauthorized},
	{domain.ErrForbidden, fiber.StatusForbidden, CodeForbidden},
	{domain.ErrCannotDeleteSelf, fiber.StatusForbidden, CodeForbidden},
	{domain.ErrUserNotFound, fiber.StatusNotFound, CodeNotFound},
	{domain.ErrNotFound, fiber.StatusNotFound, CodeNotFound},
}

// writeError responde según el error de dominio. Lo no mapeado se registra y se devuelve
// como 500 con mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return validationFailed(c, fieldErrs)
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.Fail(m.code, err.Error()))
		}
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("user_id", GetUserID(c)).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(CodeInternal, "error interno del servidor"))
}

func validationFailed(c *fiber.Ctx, fieldErrs validation.FieldErrors) error {
	res := dto.Fail(CodeValidation, "datos inválidos")
	res.Errors = fieldErrs
	return c.Status(fiber.StatusBadRequest).JSON(res)
}

// bind parsea el body JSON en dst y lo valida. Si falla ya escribió la respuesta 400
// y devuelve ok=false.
func bind(c *fiber.Ctx, v *validation.Validator, dst any) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeInvalidBody, "cuerpo inválido"))
	}
	return validate(c, v, dst)
}

// validate valida dst (body o query ya parseados).
func validate(c *fiber.Ctx, v *validation.Validator, dst any) (ok bool, err error) {
	if verr := v.Struct(dst); verr != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(verr, &fieldErrs) {
			return false, validationFailed(c, fieldErrs)
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeValidation, verr.Error()))
	}
	return true, nil
}

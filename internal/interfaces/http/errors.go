package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/manager-api/internal/application/dto"
	"github.com/jhoicas/manager-api/internal/domain"
)

const msgServerError = "Server error"

// errorMapping status y código para cada error de dominio.
var errorMapping = []struct {
	kind   error
	status int
	code   string
}{
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrPasswordMismatch, fiber.StatusBadRequest, "PASSWORD_MISMATCH"},
	{domain.ErrEmailAlreadyExists, fiber.StatusBadRequest, "EMAIL_EXISTS"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrAccountInactive, fiber.StatusUnauthorized, "ACCOUNT_INACTIVE"},
	{domain.ErrInvalidToken, fiber.StatusUnauthorized, "INVALID_TOKEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
}

// respondError traduce un error de dominio a su respuesta HTTP. Los errores no
// reconocidos se devuelven a Fiber para que ErrorHandler responda 500 y los registre.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.kind) {
			return c.Status(m.status).JSON(dto.ErrorResponse{
				Code:    m.code,
				Message: domain.Message(err, m.kind.Error()),
			})
		}
	}
	return err
}

// ErrorHandler handler de errores de Fiber: nada escapa sin respuesta JSON y las causas
// internas sólo llegan al log.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgServerError})
	}
}

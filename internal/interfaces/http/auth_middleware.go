package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/manager-api/internal/application/dto"
	"github.com/jhoicas/manager-api/internal/domain"
	"github.com/jhoicas/manager-api/internal/domain/entity"
	"github.com/jhoicas/manager-api/pkg/jwt"
)

// LocalAdmin clave de c.Locals con el *entity.Admin autenticado (sin hash).
const LocalAdmin = "admin"

// Motivos de rechazo del gate.
const (
	msgNoToken       = "Not authorized, no token"
	msgTokenFailed   = "Not authorized, token failed"
	msgAdminNotFound = "Not authorized, admin not found"
	msgAdminInactive = "Not authorized, admin is inactive"
)

// identityResolver es el contrato mínimo que necesita el middleware para resolver al admin.
// Lo implementa *auth.AuthUseCase.
type identityResolver interface {
	Identify(ctx context.Context, adminID string) (*entity.Admin, error)
}

// AuthMiddleware valida el Bearer Token JWT, resuelve al admin y lo deja en c.Locals.
// Cada rechazo responde 401 con su motivo y no ejecuta el handler protegido.
// Un fallo del store durante la resolución es un 500, no un rechazo.
func AuthMiddleware(jwtSecret string, resolver identityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme, rest, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		if !ok || scheme != "Bearer" {
			return unauthorized(c, "MISSING_TOKEN", msgNoToken)
		}
		// Un único espacio separa esquema y token; cualquier otra forma no verifica.
		token, _, _ := strings.Cut(rest, " ")
		adminID, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", msgTokenFailed)
		}
		admin, err := resolver.Identify(c.UserContext(), adminID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return unauthorized(c, "ADMIN_NOT_FOUND", msgAdminNotFound)
		case errors.Is(err, domain.ErrAccountInactive):
			return unauthorized(c, "ADMIN_INACTIVE", msgAdminInactive)
		case err != nil:
			return err
		}
		c.Locals(LocalAdmin, admin)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// GetAdmin devuelve el admin autenticado (después del middleware de auth).
func GetAdmin(c *fiber.Ctx) *entity.Admin {
	a, _ := c.Locals(LocalAdmin).(*entity.Admin)
	return a
}

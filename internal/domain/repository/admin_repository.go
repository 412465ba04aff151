package repository

import (
	"context"

	"github.com/jhoicas/manager-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no existe el registro.
type AdminRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el email viola la restricción única.
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	// Update devuelve domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, admin *entity.Admin) error
}

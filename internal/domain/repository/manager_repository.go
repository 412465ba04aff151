package repository

import (
	"context"

	"github.com/jhoicas/manager-api/internal/domain/entity"
)

// ManagerRepository define el puerto de persistencia para Manager (DIP).
// Los listados respetan el orden nativo del store (orden de inserción).
type ManagerRepository interface {
	// Create y Update devuelven domain.ErrEmailAlreadyExists cuando el store rechaza el email por duplicado.
	Create(ctx context.Context, manager *entity.Manager) error
	GetByID(ctx context.Context, id string) (*entity.Manager, error)
	GetByEmail(ctx context.Context, email string) (*entity.Manager, error)
	Update(ctx context.Context, manager *entity.Manager) error
	// Delete devuelve domain.ErrNotFound si no borró nada.
	Delete(ctx context.Context, id string) error
	// DeleteMany borra en una sola operación y devuelve cuántos registros se eliminaron.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Manager, error)
	// Search busca query como subcadena literal, sin distinguir mayúsculas, en name, email o phone.
	Search(ctx context.Context, query string) ([]*entity.Manager, error)
}

// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con STORE_DRIVER=memory en desarrollo y como doble de prueba.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/manager-api/internal/domain"
	"github.com/jhoicas/manager-api/internal/domain/entity"
	"github.com/jhoicas/manager-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo repositorio de administradores con índice único por email.
type AdminRepo struct {
	mu      sync.RWMutex
	byID    map[string]*entity.Admin
	byEmail map[string]string
}

// NewAdminRepository construye un repositorio vacío.
func NewAdminRepository() *AdminRepo {
	return &AdminRepo{byID: map[string]*entity.Admin{}, byEmail: map[string]string{}}
}

// Create persiste un administrador nuevo.
func (r *AdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[admin.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *admin
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = cp.ID
	return nil
}

// GetByID obtiene un administrador por ID.
func (r *AdminRepo) GetByID(_ context.Context, id string) (*entity.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// GetByEmail obtiene un administrador por email.
func (r *AdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *r.byID[id]
	return &cp, nil
}

// Update reemplaza el administrador almacenado.
func (r *AdminRepo) Update(_ context.Context, admin *entity.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[admin.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if owner, taken := r.byEmail[admin.Email]; taken && owner != admin.ID {
		return domain.ErrEmailAlreadyExists
	}
	delete(r.byEmail, current.Email)
	cp := *admin
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = cp.ID
	return nil
}

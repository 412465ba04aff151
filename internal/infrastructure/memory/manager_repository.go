package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/manager-api/internal/domain"
	"github.com/jhoicas/manager-api/internal/domain/entity"
	"github.com/jhoicas/manager-api/internal/domain/repository"
	"golang.org/x/text/cases"
)

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

// ManagerRepo repositorio de managers que conserva el orden de inserción.
type ManagerRepo struct {
	mu      sync.RWMutex
	order   []string
	byID    map[string]*entity.Manager
	byEmail map[string]string
}

// NewManagerRepository construye un repositorio vacío.
func NewManagerRepository() *ManagerRepo {
	return &ManagerRepo{
		byID:    map[string]*entity.Manager{},
		byEmail: map[string]string{},
	}
}

// Create persiste un manager nuevo.
func (r *ManagerRepo) Create(_ context.Context, m *entity.Manager) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[m.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *m
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = cp.ID
	r.order = append(r.order, cp.ID)
	return nil
}

// GetByID obtiene un manager por ID.
func (r *ManagerRepo) GetByID(_ context.Context, id string) (*entity.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

// GetByEmail obtiene un manager por email.
func (r *ManagerRepo) GetByEmail(_ context.Context, email string) (*entity.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *r.byID[id]
	return &cp, nil
}

// Update reemplaza el manager almacenado.
func (r *ManagerRepo) Update(_ context.Context, m *entity.Manager) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if owner, taken := r.byEmail[m.Email]; taken && owner != m.ID {
		return domain.ErrEmailAlreadyExists
	}
	delete(r.byEmail, current.Email)
	cp := *m
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = cp.ID
	return nil
}

// Delete elimina un manager por ID.
func (r *ManagerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteMany elimina los ids presentes bajo un único lock.
func (r *ManagerRepo) DeleteMany(_ context.Context, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if r.remove(id) {
			n++
		}
	}
	return n, nil
}

// remove requiere r.mu tomado en escritura.
func (r *ManagerRepo) remove(id string) bool {
	m, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	delete(r.byEmail, m.Email)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Count devuelve el total de managers.
func (r *ManagerRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}

// List devuelve una ventana [offset, offset+limit) en orden de inserción.
func (r *ManagerRepo) List(_ context.Context, limit, offset int) ([]*entity.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.order) || limit <= 0 {
		return []*entity.Manager{}, nil
	}
	end := len(r.order)
	if limit < end-offset {
		end = offset + limit
	}
	list := make([]*entity.Manager, 0, end-offset)
	for _, id := range r.order[offset:end] {
		cp := *r.byID[id]
		list = append(list, &cp)
	}
	return list, nil
}

// Search compara con case folding Unicode sobre name, email y phone.
func (r *ManagerRepo) Search(_ context.Context, query string) ([]*entity.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// cases.Caser no es seguro para uso concurrente: uno por llamada.
	fold := cases.Fold()
	needle := fold.String(query)
	contains := func(field string) bool { return strings.Contains(fold.String(field), needle) }

	list := []*entity.Manager{}
	for _, id := range r.order {
		m := r.byID[id]
		if contains(m.Name) || contains(m.Email) || contains(m.Phone) {
			cp := *m
			list = append(list, &cp)
		}
	}
	return list, nil
}

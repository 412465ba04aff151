package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/manager-api/internal/application/dto"
	"github.com/jhoicas/manager-api/internal/domain"
	"github.com/jhoicas/manager-api/internal/domain/entity"
	"github.com/jhoicas/manager-api/internal/domain/repository"
)

// Mensajes para el cliente.
const (
	msgRequiredFields   = "Please fill all required fields"
	msgManagerExists    = "Manager already exists with this email"
	msgEmailInUse       = "Email already in use"
	msgNotFound         = "Manager not found"
	msgSearchQuery      = "Please provide search query"
	msgPositivePaging   = "Page and limit must be positive numbers"
	msgIDsRequired      = "Please provide array of manager IDs"
	msgInvalidEmail     = "Please enter a valid email"
	msgInvalidSalary    = "Salary must be a number"
	msgEmptyFieldUpdate = "Name, email, salary and designation cannot be empty"
)

// ManagerUseCase casos de uso del registro de managers.
type ManagerUseCase struct {
	repo repository.ManagerRepository
	now  func() time.Time
}

// NewManagerUseCase construye el caso de uso.
func NewManagerUseCase(repo repository.ManagerRepository) *ManagerUseCase {
	return &ManagerUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// List devuelve una página de managers. Valores no positivos caen a los por defecto
// y limit se acota a dto.MaxLimit.
func (uc *ManagerUseCase) List(ctx context.Context, page, limit int) (*dto.ManagerListResponse, error) {
	if page < 1 {
		page = dto.DefaultPage
	}
	if limit < 1 {
		limit = dto.DefaultLimit
	}
	limit = min(limit, dto.MaxLimit)
	items, total, err := uc.page(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &dto.ManagerListResponse{
		Managers: items,
		Total:    total,
		Page:     page,
		Pages:    dto.Pages(total, limit),
	}, nil
}

// Paginate devuelve una página de managers con eco del límite (acotado a dto.MaxLimit);
// rechaza page/limit no positivos.
func (uc *ManagerUseCase) Paginate(ctx context.Context, page, limit int) (*dto.ManagerPageResponse, error) {
	if page < 1 || limit < 1 {
		return nil, domain.NewError(domain.ErrValidation, msgPositivePaging)
	}
	limit = min(limit, dto.MaxLimit)
	items, total, err := uc.page(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &dto.ManagerPageResponse{
		Managers: items,
		Total:    total,
		Page:     page,
		Limit:    limit,
		Pages:    dto.Pages(total, limit),
	}, nil
}

func (uc *ManagerUseCase) page(ctx context.Context, page, limit int) ([]dto.ManagerResponse, int64, error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	offset, ok := dto.Offset(page, limit)
	if !ok || int64(offset) >= total {
		return []dto.ManagerResponse{}, total, nil
	}
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return toManagerResponses(list), total, nil
}

// Create inserta un manager nuevo. phone vacío por defecto, status true si no se envía.
func (uc *ManagerUseCase) Create(ctx context.Context, in dto.CreateManagerRequest) (*dto.ManagerResponse, error) {
	if in.Name == "" || in.Email == "" || in.Salary == "" || in.Designation == "" {
		return nil, domain.NewError(domain.ErrValidation, msgRequiredFields)
	}
	status := true
	if in.Status != nil {
		status = *in.Status
	}
	now := uc.now()
	m := &entity.Manager{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Salary:      string(in.Salary),
		Designation: in.Designation,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validate(m); err != nil {
		return nil, err
	}

	// Consulta previa orientativa; la restricción única del store es la que decide ante carreras.
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewError(domain.ErrEmailAlreadyExists, msgManagerExists)
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.NewError(domain.ErrEmailAlreadyExists, msgManagerExists)
		}
		return nil, err
	}
	return toManagerResponse(m), nil
}

// Update aplica sólo los campos enviados y refresca updated_date.
// La unicidad del email sólo se vuelve a comprobar cuando cambia.
func (uc *ManagerUseCase) Update(ctx context.Context, id string, in dto.UpdateManagerRequest) (*dto.ManagerResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NewError(domain.ErrNotFound, msgNotFound)
	}
	for _, f := range []*string{in.Name, in.Email, in.Designation} {
		if f != nil && *f == "" {
			return nil, domain.NewError(domain.ErrValidation, msgEmptyFieldUpdate)
		}
	}
	if in.Salary != nil && *in.Salary == "" {
		return nil, domain.NewError(domain.ErrValidation, msgEmptyFieldUpdate)
	}

	if in.Email != nil && *in.Email != m.Email {
		taken, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, domain.NewError(domain.ErrEmailAlreadyExists, msgEmailInUse)
		}
		m.Email = *in.Email
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Phone != nil {
		m.Phone = *in.Phone
	}
	if in.Salary != nil {
		m.Salary = string(*in.Salary)
	}
	if in.Designation != nil {
		m.Designation = *in.Designation
	}
	if in.Status != nil {
		m.Status = *in.Status
	}
	m.UpdatedAt = uc.now()

	if err := validate(m); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return nil, domain.NewError(domain.ErrEmailAlreadyExists, msgEmailInUse)
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NewError(domain.ErrNotFound, msgNotFound)
		}
		return nil, err
	}
	return toManagerResponse(m), nil
}

// Delete elimina físicamente un manager.
func (uc *ManagerUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.NewError(domain.ErrNotFound, msgNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewError(domain.ErrNotFound, msgNotFound)
		}
		return err
	}
	return nil
}

// DeleteMany elimina en una sola operación del store. Ids ya inexistentes no son error.
func (uc *ManagerUseCase) DeleteMany(ctx context.Context, ids []string) (*dto.DeleteManyResponse, error) {
	if len(ids) == 0 {
		return nil, domain.NewError(domain.ErrValidation, msgIDsRequired)
	}
	n, err := uc.repo.DeleteMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteManyResponse{
		Message:      fmt.Sprintf("%d managers deleted successfully", n),
		DeletedCount: n,
	}, nil
}

// Search busca q en name, email o phone. Sin coincidencias devuelve una lista vacía.
func (uc *ManagerUseCase) Search(ctx context.Context, q string) ([]dto.ManagerResponse, error) {
	if q == "" {
		return nil, domain.NewError(domain.ErrValidation, msgSearchQuery)
	}
	list, err := uc.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return toManagerResponses(list), nil
}

// validate traduce las reglas de la entidad al mensaje de cliente más específico.
func validate(m *entity.Manager) error {
	if err := m.Validate(); err != nil {
		switch {
		case !entity.ValidEmail(m.Email):
			return domain.NewError(domain.ErrValidation, msgInvalidEmail)
		case m.Name == "" || m.Designation == "" || m.Salary == "":
			return domain.NewError(domain.ErrValidation, msgRequiredFields)
		default:
			return domain.NewError(domain.ErrValidation, msgInvalidSalary)
		}
	}
	return nil
}

func toManagerResponses(list []*entity.Manager) []dto.ManagerResponse {
	items := make([]dto.ManagerResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toManagerResponse(m))
	}
	return items
}

func toManagerResponse(m *entity.Manager) *dto.ManagerResponse {
	if m == nil {
		return nil
	}
	return &dto.ManagerResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Salary:      m.Salary,
		Designation: m.Designation,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/manager-api/internal/domain"
	"github.com/jhoicas/manager-api/internal/domain/entity"
	"github.com/jhoicas/manager-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

const adminColumns = `id, username, email, password_hash, status, created_date, updated_date`

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	pool *pgxpool.Pool
}

// NewAdminRepository construye el adaptador de persistencia para admins.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// Create persiste un nuevo admin.
func (r *AdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	query := `
		INSERT INTO admins (` + adminColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Username, a.Email, a.PasswordHash, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByID obtiene un admin por ID.
func (r *AdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	return r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
}

// GetByEmail obtiene un admin por email.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
}

// Update actualiza un admin existente.
func (r *AdminRepo) Update(ctx context.Context, a *entity.Admin) error {
	query := `
		UPDATE admins SET username = $2, email = $3, password_hash = $4, status = $5, updated_date = $6
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, a.ID, a.Username, a.Email, a.PasswordHash, a.Status, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AdminRepo) findOne(ctx context.Context, query string, arg string) (*entity.Admin, error) {
	var a entity.Admin
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return &a, nil
}

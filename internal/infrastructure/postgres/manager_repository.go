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

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

const managerColumns = `id, name, email, phone, salary, designation, status, created_date, updated_date`

// ManagerRepo implementación del puerto ManagerRepository sobre PostgreSQL.
// El orden de los listados es el de inserción (columna seq).
type ManagerRepo struct {
	pool *pgxpool.Pool
}

// NewManagerRepository construye el adaptador de persistencia para managers.
func NewManagerRepository(pool *pgxpool.Pool) *ManagerRepo {
	return &ManagerRepo{pool: pool}
}

// Create persiste un nuevo manager.
func (r *ManagerRepo) Create(ctx context.Context, m *entity.Manager) error {
	query := `
		INSERT INTO managers (` + managerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Name, m.Email, m.Phone, m.Salary, m.Designation, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert manager: %w", err)
	}
	return nil
}

// GetByID obtiene un manager por ID.
func (r *ManagerRepo) GetByID(ctx context.Context, id string) (*entity.Manager, error) {
	return r.findOne(ctx, `SELECT `+managerColumns+` FROM managers WHERE id = $1`, id)
}

// GetByEmail obtiene un manager por email.
func (r *ManagerRepo) GetByEmail(ctx context.Context, email string) (*entity.Manager, error) {
	return r.findOne(ctx, `SELECT `+managerColumns+` FROM managers WHERE email = $1`, email)
}

// Update actualiza los campos editables de un manager.
func (r *ManagerRepo) Update(ctx context.Context, m *entity.Manager) error {
	query := `
		UPDATE managers
		SET name = $2, email = $3, phone = $4, salary = $5, designation = $6, status = $7, updated_date = $8
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		m.ID, m.Name, m.Email, m.Phone, m.Salary, m.Designation, m.Status, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update manager: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un manager.
func (r *ManagerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM managers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteMany elimina todos los ids en una única sentencia.
func (r *ManagerRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM managers WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete managers: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Count devuelve el total de managers.
func (r *ManagerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM managers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count managers: %w", err)
	}
	return n, nil
}

// List devuelve una ventana de managers en orden de inserción.
func (r *ManagerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Manager, error) {
	query := `SELECT ` + managerColumns + ` FROM managers ORDER BY seq LIMIT $1 OFFSET $2`
	return r.query(ctx, query, limit, offset)
}

// Search busca query como subcadena literal en name, email o phone.
func (r *ManagerRepo) Search(ctx context.Context, q string) ([]*entity.Manager, error) {
	query := `
		SELECT ` + managerColumns + ` FROM managers
		WHERE name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1
		ORDER BY seq`
	return r.query(ctx, query, containsPattern(q))
}

func (r *ManagerRepo) findOne(ctx context.Context, query string, arg string) (*entity.Manager, error) {
	m, err := scanManager(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}
	return m, nil
}

func (r *ManagerRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Manager, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Manager, 0)
	for rows.Next() {
		m, err := scanManager(rows)
		if err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanManager(row pgx.Row) (*entity.Manager, error) {
	var m entity.Manager
	if err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Salary, &m.Designation, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return &m, nil
}

package mongodb

import (
	"time"

	"github.com/jhoicas/manager-api/internal/domain/entity"
)

// adminDocument forma persistida de entity.Admin en la colección admins.
type adminDocument struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Status    bool      `bson:"status"`
	CreatedAt time.Time `bson:"created_date"`
	UpdatedAt time.Time `bson:"updated_date"`
}

func newAdminDocument(a *entity.Admin) adminDocument {
	return adminDocument{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Password:  a.PasswordHash,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (d adminDocument) entity() *entity.Admin {
	return &entity.Admin{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// managerDocument forma persistida de entity.Manager en la colección managers.
type managerDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	Phone       string    `bson:"phone"`
	Salary      string    `bson:"salary"`
	Designation string    `bson:"designation"`
	Status      bool      `bson:"status"`
	CreatedAt   time.Time `bson:"created_date"`
	UpdatedAt   time.Time `bson:"updated_date"`
}

func newManagerDocument(m *entity.Manager) managerDocument {
	return managerDocument{
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

func (d managerDocument) entity() *entity.Manager {
	return &entity.Manager{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Salary:      d.Salary,
		Designation: d.Designation,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

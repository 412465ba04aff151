package entity

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// managerEmailPattern patrón de email aceptado para managers.
var managerEmailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Manager representa un registro de manager (email único).
type Manager struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Salary      string // numérico, guardado como texto
	Designation string
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate verifica las invariantes del registro antes de persistirlo.
func (m *Manager) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Email, validation.Required,
			validation.Match(managerEmailPattern).Error("Please enter a valid email")),
		validation.Field(&m.Salary, validation.Required, validation.By(decimalString)),
		validation.Field(&m.Designation, validation.Required),
	)
}

// ValidEmail indica si email cumple el patrón de managers.
func ValidEmail(email string) bool {
	return managerEmailPattern.MatchString(email)
}

func decimalString(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return errors.New("salary must be a number")
	}
	return nil
}

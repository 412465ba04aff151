package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Amount cifra que llega como cadena o como número JSON; se conserva como texto.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("amount: %s no es una cadena ni un número", b)
	}
	*a = Amount(d.String())
	return nil
}

// CreateManagerRequest entrada para crear un manager.
type CreateManagerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Salary      Amount `json:"salary"`
	Designation string `json:"designation"`
	Status      *bool  `json:"status"`
}

// UpdateManagerRequest actualización parcial: nil = campo no enviado.
type UpdateManagerRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Salary      *Amount `json:"salary"`
	Designation *string `json:"designation"`
	Status      *bool   `json:"status"`
}

// DeleteManyRequest entrada para borrado múltiple.
type DeleteManyRequest struct {
	IDs []string `json:"ids"`
}

// DeleteManyResponse resultado del borrado múltiple.
type DeleteManyResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// ManagerResponse salida de un manager.
type ManagerResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Salary      string    `json:"salary"`
	Designation string    `json:"designation"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"created_date"`
	UpdatedAt   time.Time `json:"updated_date"`
}

// ManagerListResponse página de managers (GET /api/manager).
type ManagerListResponse struct {
	Managers []ManagerResponse `json:"managers"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
}

// ManagerPageResponse página de managers con eco del límite (GET /api/manager/pagination).
type ManagerPageResponse struct {
	Managers []ManagerResponse `json:"managers"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Pages    int               `json:"pages"`
}

package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// RegisterRequest entrada para registrar un administrador.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate exige los cuatro campos; la coincidencia de contraseñas se comprueba aparte.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.ConfirmPassword, validation.Required),
	)
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate exige email y password.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse resumen del administrador (sin password) más el token emitido.
// CreatedAt sólo se incluye en el registro.
type AuthResponse struct {
	ID        string     `json:"_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Status    bool       `json:"status"`
	CreatedAt *time.Time `json:"created_date,omitempty"`
	Token     string     `json:"token"`
}

// AdminResponse salida de un administrador (sin password).
type AdminResponse struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_date"`
	UpdatedAt time.Time `json:"updated_date"`
}

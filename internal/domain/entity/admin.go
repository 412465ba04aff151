package entity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost factor de trabajo de bcrypt para contraseñas de administradores.
const PasswordCost = 10

// Admin representa una cuenta de administrador (email único).
type Admin struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca texto plano
	Status       bool   // true = activa
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetPassword hashea plain con bcrypt y lo guarda. Es el único punto donde se hashea:
// las actualizaciones que no cambian la contraseña no pasan por aquí.
func (a *Admin) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword compara plain contra el hash almacenado.
func (a *Admin) CheckPassword(plain string) bool {
	if a.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plain)) == nil
}

// Public devuelve una copia sin el hash, para adjuntarla al contexto de la petición.
func (a *Admin) Public() *Admin {
	if a == nil {
		return nil
	}
	cp := *a
	cp.PasswordHash = ""
	return &cp
}

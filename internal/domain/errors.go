package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce a status con errors.Is.
var (
	ErrValidation         = errors.New("entrada inválida")
	ErrPasswordMismatch   = errors.New("las contraseñas no coinciden")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountInactive    = errors.New("cuenta inactiva")
	ErrInvalidToken       = errors.New("token inválido")
	ErrNotFound           = errors.New("recurso no encontrado")
)

// Error asocia un error de dominio (Kind) con el mensaje que verá el cliente.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewError construye un error de tipo kind con un mensaje para el cliente.
func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Message devuelve el mensaje para el cliente si err lleva uno, o fallback en caso contrario.
func Message(err error, fallback string) string {
	var de *Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}

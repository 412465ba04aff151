package entity

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_SetPasswordNuncaGuardaTextoPlano(t *testing.T) {
	a := &Admin{Email: "a@x.com"}
	require.NoError(t, a.SetPassword("p1"))

	assert.NotEqual(t, "p1", a.PasswordHash)
	assert.True(t, a.CheckPassword("p1"))
	assert.False(t, a.CheckPassword("wrong"))
}

func TestAdmin_CheckPasswordSinHash(t *testing.T) {
	a := &Admin{}
	assert.False(t, a.CheckPassword(""))
}

func TestAdmin_PublicOmiteHash(t *testing.T) {
	a := &Admin{ID: "1", Email: "a@x.com"}
	require.NoError(t, a.SetPassword("p1"))

	pub := a.Public()
	assert.Empty(t, pub.PasswordHash)
	assert.Equal(t, "a@x.com", pub.Email)
	assert.NotEmpty(t, a.PasswordHash, "el original no se modifica")
}

func validManager() *Manager {
	return &Manager{Name: "Ana", Email: "ana@corp.com", Salary: "50000", Designation: "Lead", Status: true}
}

func TestManager_ValidateOK(t *testing.T) {
	assert.NoError(t, validManager().Validate())
}

func TestManager_ValidateCamposRequeridos(t *testing.T) {
	m := &Manager{}
	err := m.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Salary")
	assert.Contains(t, errs, "Designation")
}

func TestManager_ValidateEmail(t *testing.T) {
	for _, email := range []string{"sin-arroba", "a@b", "a@b.toolong", "@corp.com"} {
		m := validManager()
		m.Email = email
		assert.Error(t, m.Validate(), email)
	}
	for _, email := range []string{"first.last@corp.com", "a-b@mail.co.uk", "x_1@io.org"} {
		assert.True(t, ValidEmail(email), email)
	}
}

func TestManager_ValidateSalarioNumerico(t *testing.T) {
	m := validManager()
	m.Salary = "50k"
	assert.Error(t, m.Validate())

	m.Salary = "1234.50"
	assert.NoError(t, m.Validate())
}

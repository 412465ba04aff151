package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError_ConservaKindYMensaje(t *testing.T) {
	err := NewError(ErrNotFound, "Manager not found")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Manager not found", err.Error())

	wrapped := fmt.Errorf("delete manager: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, "Manager not found", Message(wrapped, "Server error"))
}

func TestMessage_Fallback(t *testing.T) {
	assert.Equal(t, "Server error", Message(errors.New("boom"), "Server error"))
	assert.Equal(t, "Server error", Message(ErrNotFound, "Server error"))
}

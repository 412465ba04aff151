package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	v, err := parseStatus("active")
	assert.NoError(t, err)
	assert.True(t, v)

	v, err = parseStatus("inactive")
	assert.NoError(t, err)
	assert.False(t, v)

	_, err = parseStatus("Active")
	assert.ErrorIs(t, err, errBadStatus)
}

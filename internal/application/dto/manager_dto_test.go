package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_CadenaONumero(t *testing.T) {
	var in CreateManagerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"salary": 50000}`), &in))
	assert.Equal(t, Amount("50000"), in.Salary)

	require.NoError(t, json.Unmarshal([]byte(`{"salary": "1234.50"}`), &in))
	assert.Equal(t, Amount("1234.50"), in.Salary)

	// El texto no numérico se deja pasar; la validación de dominio lo rechaza.
	require.NoError(t, json.Unmarshal([]byte(`{"salary": "mucho"}`), &in))
	assert.Equal(t, Amount("mucho"), in.Salary)

	var up UpdateManagerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"salary": 75000.25}`), &up))
	require.NotNil(t, up.Salary)
	assert.Equal(t, Amount("75000.25"), *up.Salary)

	up = UpdateManagerRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"salary": null}`), &up))
	assert.Nil(t, up.Salary)

	assert.Error(t, json.Unmarshal([]byte(`{"salary": {"monto": 1}}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"salary": false}`), &in))
}

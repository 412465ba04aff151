package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/manager-api/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory}}
	repos, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, config.StoreMemory, repos.Driver)
	assert.NotNil(t, repos.Admins)
	assert.NotNil(t, repos.Managers)
	assert.NoError(t, repos.Close(context.Background()))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "redis"}}
	_, err := Open(context.Background(), cfg)
	assert.ErrorContains(t, err, "redis")
}

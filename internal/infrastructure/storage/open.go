// Package storage selecciona e inicializa el backend de persistencia configurado.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/manager-api/internal/domain/repository"
	"github.com/jhoicas/manager-api/internal/infrastructure/memory"
	"github.com/jhoicas/manager-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/manager-api/internal/infrastructure/postgres"
	"github.com/jhoicas/manager-api/pkg/config"
)

// Repositories agrupa los adaptadores de un mismo backend y su cierre.
type Repositories struct {
	Driver   string
	Admins   repository.AdminRepository
	Managers repository.ManagerRepository
	Close    func(context.Context) error
}

// Open conecta con el backend indicado por STORE_DRIVER y prepara índices o esquema.
// Si el store no está disponible devuelve error; el proceso no debe arrancar sin él.
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &Repositories{
			Driver:   config.StoreMongo,
			Admins:   mongodb.NewAdminRepository(db),
			Managers: mongodb.NewManagerRepository(db),
			Close:    client.Disconnect,
		}, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Repositories{
			Driver:   config.StorePostgres,
			Admins:   postgres.NewAdminRepository(pool),
			Managers: postgres.NewManagerRepository(pool),
			Close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.StoreMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("storage: driver no soportado %q", cfg.Store.Driver)
}

// NewMemory devuelve repositorios en memoria (tests y desarrollo local).
func NewMemory() *Repositories {
	return &Repositories{
		Driver:   config.StoreMemory,
		Admins:   memory.NewAdminRepository(),
		Managers: memory.NewManagerRepository(),
		Close:    func(context.Context) error { return nil },
	}
}

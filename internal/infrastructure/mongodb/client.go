// Package mongodb implementa los puertos de persistencia sobre MongoDB (document store por defecto).
package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/jhoicas/manager-api/pkg/config"
)

// Nombres de colecciones.
const (
	AdminsCollection   = "admins"
	ManagersCollection = "managers"

	defaultDatabase = "interview_db"
)

// Connect abre el cliente, verifica la conexión con un ping y devuelve la base de datos a usar.
// Falla rápido si el servidor no responde.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(databaseName(cfg)), nil
}

// databaseName prioriza MONGO_DATABASE, luego la base de la URI y por último el nombre por defecto.
func databaseName(cfg config.MongoConfig) string {
	if cfg.Database != "" {
		return cfg.Database
	}
	if cs, err := connstring.ParseAndValidate(cfg.URI); err == nil && strings.TrimSpace(cs.Database) != "" {
		return cs.Database
	}
	return defaultDatabase
}

// EnsureIndexes crea los índices únicos por email de ambas colecciones. Es idempotente.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	}
	for _, name := range []string{AdminsCollection, ManagersCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, unique); err != nil {
			return fmt.Errorf("crear índice único %s.email: %w", name, err)
		}
	}
	return nil
}

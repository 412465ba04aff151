package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/manager-api/internal/domain"
	"github.com/jhoicas/manager-api/internal/domain/entity"
	"github.com/jhoicas/manager-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación de repository.AdminRepository sobre la colección admins.
type AdminRepo struct {
	coll *mongo.Collection
}

// NewAdminRepository construye el repositorio.
func NewAdminRepository(db *mongo.Database) *AdminRepo {
	return &AdminRepo{coll: db.Collection(AdminsCollection)}
}

// Create inserta un admin. El índice único traduce el duplicado a domain.ErrEmailAlreadyExists.
func (r *AdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	if _, err := r.coll.InsertOne(ctx, newAdminDocument(a)); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insertar admin: %w", err)
	}
	return nil
}

// GetByID obtiene un admin por _id.
func (r *AdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByEmail obtiene un admin por email (coincidencia exacta).
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// Update reemplaza los campos mutables del admin.
func (r *AdminRepo) Update(ctx context.Context, a *entity.Admin) error {
	res, err := r.coll.UpdateByID(ctx, a.ID, bson.M{"$set": bson.M{
		"username":     a.Username,
		"email":        a.Email,
		"password":     a.PasswordHash,
		"status":       a.Status,
		"updated_date": a.UpdatedAt,
	}})
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("actualizar admin: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AdminRepo) findOne(ctx context.Context, filter bson.M) (*entity.Admin, error) {
	var doc adminDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar admin: %w", err)
	}
	return doc.entity(), nil
}

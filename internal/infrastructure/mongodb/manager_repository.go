package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/manager-api/internal/domain"
	"github.com/jhoicas/manager-api/internal/domain/entity"
	"github.com/jhoicas/manager-api/internal/domain/repository"
)

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

// ManagerRepo implementación de repository.ManagerRepository sobre la colección managers.
// Los listados usan el orden natural de la colección.
type ManagerRepo struct {
	coll *mongo.Collection
}

// NewManagerRepository construye el repositorio.
func NewManagerRepository(db *mongo.Database) *ManagerRepo {
	return &ManagerRepo{coll: db.Collection(ManagersCollection)}
}

// Create inserta un manager.
func (r *ManagerRepo) Create(ctx context.Context, m *entity.Manager) error {
	if _, err := r.coll.InsertOne(ctx, newManagerDocument(m)); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insertar manager: %w", err)
	}
	return nil
}

// GetByID obtiene un manager por _id.
func (r *ManagerRepo) GetByID(ctx context.Context, id string) (*entity.Manager, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByEmail obtiene un manager por email.
func (r *ManagerRepo) GetByEmail(ctx context.Context, email string) (*entity.Manager, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// Update reemplaza los campos editables y updated_date.
func (r *ManagerRepo) Update(ctx context.Context, m *entity.Manager) error {
	res, err := r.coll.UpdateByID(ctx, m.ID, bson.M{"$set": bson.M{
		"name":         m.Name,
		"email":        m.Email,
		"phone":        m.Phone,
		"salary":       m.Salary,
		"designation":  m.Designation,
		"status":       m.Status,
		"updated_date": m.UpdatedAt,
	}})
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("actualizar manager: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un manager por _id.
func (r *ManagerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("eliminar manager: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteMany elimina todos los ids en una sola operación.
func (r *ManagerRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, idsFilter(ids))
	if err != nil {
		return 0, fmt.Errorf("eliminar managers: %w", err)
	}
	return res.DeletedCount, nil
}

// Count devuelve el total de managers.
func (r *ManagerRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("contar managers: %w", err)
	}
	return n, nil
}

// List devuelve una ventana de managers en orden natural.
func (r *ManagerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Manager, error) {
	opts := options.Find().SetSkip(int64(offset)).SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

// Search busca coincidencias en name, email o phone.
func (r *ManagerRepo) Search(ctx context.Context, query string) ([]*entity.Manager, error) {
	return r.find(ctx, searchFilter(query))
}

func (r *ManagerRepo) findOne(ctx context.Context, filter bson.M) (*entity.Manager, error) {
	var doc managerDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar manager: %w", err)
	}
	return doc.entity(), nil
}

func (r *ManagerRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*entity.Manager, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("listar managers: %w", err)
	}
	defer cur.Close(ctx)

	var docs []managerDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decodificar managers: %w", err)
	}
	list := make([]*entity.Manager, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.entity())
	}
	return list, nil
}

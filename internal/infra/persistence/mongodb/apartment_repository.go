package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bmshub/internal/domain/entity"
	"bmshub/internal/domain/repository"
	"bmshub/internal/errors"
	"bmshub/internal/infra/persistence/model"
)

// apartmentRepository implements repository.ApartmentRepository over the
// 'apartments' collection.
type apartmentRepository struct {
	coll *mongo.Collection
}

// NewApartmentRepository is the constructor for apartmentRepository.
func NewApartmentRepository(db *mongo.Database) repository.ApartmentRepository {
	return &apartmentRepository{coll: db.Collection(model.ApartmentModel{}.CollectionName())}
}

func (repo *apartmentRepository) Insert(ctx context.Context, apartment *entity.Apartment) (string, error) {
	result, err := repo.coll.InsertOne(ctx, model.FromApartmentDomain(apartment))
	if err != nil {
		return "", errors.Wrap(err, "failed to insert apartment")
	}

	id := result.InsertedID.(primitive.ObjectID).Hex()
	apartment.ID = id

	return id, nil
}

func (repo *apartmentRepository) FindAll(ctx context.Context) ([]*entity.Apartment, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find apartments")
	}

	var docs []model.ApartmentModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode apartments")
	}

	apartments := make([]*entity.Apartment, 0, len(docs))
	for i := range docs {
		apartments = append(apartments, model.ToApartmentDomain(&docs[i]))
	}

	return apartments, nil
}

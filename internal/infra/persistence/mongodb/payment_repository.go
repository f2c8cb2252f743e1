package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bmshub/internal/domain/entity"
	"bmshub/internal/domain/repository"
	"bmshub/internal/errors"
	"bmshub/internal/infra/persistence/model"
)

// paymentRepository implements repository.PaymentRepository over the
// 'payments' collection.
type paymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &paymentRepository{coll: db.Collection(model.PaymentModel{}.CollectionName())}
}

func (repo *paymentRepository) Insert(ctx context.Context, payment *entity.Payment) (string, error) {
	result, err := repo.coll.InsertOne(ctx, model.FromPaymentDomain(payment))
	if err != nil {
		return "", errors.Wrap(err, "failed to insert payment")
	}

	id := result.InsertedID.(primitive.ObjectID).Hex()
	payment.ID = id

	return id, nil
}

func (repo *paymentRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"userEmail": email},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by email")
	}

	var docs []model.PaymentModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode payments")
	}

	payments := make([]*entity.Payment, 0, len(docs))
	for i := range docs {
		payments = append(payments, model.ToPaymentDomain(&docs[i]))
	}

	return payments, nil
}

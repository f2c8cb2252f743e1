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

// agreementRepository implements repository.AgreementRepository over the
// 'agreements' collection.
type agreementRepository struct {
	coll *mongo.Collection
}

// NewAgreementRepository is the constructor for agreementRepository.
func NewAgreementRepository(db *mongo.Database) repository.AgreementRepository {
	return &agreementRepository{coll: db.Collection(model.AgreementModel{}.CollectionName())}
}

// Insert relies on the unique_pending_agreement partial index: a second
// pending agreement for the same (userEmail, apartmentNo) pair fails with
// a duplicate-key error, which is mapped to ErrDuplicateAgreement.
func (repo *agreementRepository) Insert(ctx context.Context, agreement *entity.Agreement) (string, error) {
	result, err := repo.coll.InsertOne(ctx, model.FromAgreementDomain(agreement))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicateAgreement
		}

		return "", errors.Wrap(err, "failed to insert agreement")
	}

	id := result.InsertedID.(primitive.ObjectID).Hex()
	agreement.ID = id

	return id, nil
}

func (repo *agreementRepository) FindByID(ctx context.Context, id string) (*entity.Agreement, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}

	var agreementM model.AgreementModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&agreementM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAgreementNotFound
		}

		return nil, errors.Wrap(err, "failed to find agreement by id")
	}

	return model.ToAgreementDomain(&agreementM), nil
}

func (repo *agreementRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Agreement, error) {
	return repo.find(ctx, bson.M{"userEmail": email})
}

func (repo *agreementRepository) FindAll(ctx context.Context) ([]*entity.Agreement, error) {
	return repo.find(ctx, bson.M{})
}

// find lists agreements matching the filter, most recent first
// (descending _id order).
func (repo *agreementRepository) find(ctx context.Context, filter bson.M) ([]*entity.Agreement, error) {
	cursor, err := repo.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find agreements")
	}

	var docs []model.AgreementModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode agreements")
	}

	agreements := make([]*entity.Agreement, 0, len(docs))
	for i := range docs {
		agreements = append(agreements, model.ToAgreementDomain(&docs[i]))
	}

	return agreements, nil
}

func (repo *agreementRepository) UpdateStatus(ctx context.Context, id string, status entity.AgreementStatus) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repository.ErrInvalidID
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to update agreement status")
	}

	return result.ModifiedCount, nil
}

// MarkPaid is the conditional write that keeps the payment workflow
// single-logical-unit: the status flip only matches a non-paid agreement,
// and a zero modified count tells the caller to write no payment record.
func (repo *agreementRepository) MarkPaid(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repository.ErrInvalidID
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": objectID, "status": bson.M{"$ne": string(entity.AgreementPaid)}},
		bson.M{"$set": bson.M{"status": string(entity.AgreementPaid)}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark agreement paid")
	}

	return result.ModifiedCount, nil
}

func (repo *agreementRepository) Delete(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repository.ErrInvalidID
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete agreement")
	}

	return result.DeletedCount, nil
}

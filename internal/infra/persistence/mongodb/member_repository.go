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

// memberRepository implements repository.MemberRepository over the
// 'members' collection.
type memberRepository struct {
	coll *mongo.Collection
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *mongo.Database) repository.MemberRepository {
	return &memberRepository{coll: db.Collection(model.MemberModel{}.CollectionName())}
}

func (repo *memberRepository) Insert(ctx context.Context, member *entity.Member) (string, error) {
	result, err := repo.coll.InsertOne(ctx, model.FromMemberDomain(member))
	if err != nil {
		return "", errors.Wrap(err, "failed to insert member")
	}

	id := result.InsertedID.(primitive.ObjectID).Hex()
	member.ID = id

	return id, nil
}

func (repo *memberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}

	var memberM model.MemberModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&memberM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by id")
	}

	return model.ToMemberDomain(&memberM), nil
}

func (repo *memberRepository) FindAll(ctx context.Context) ([]*entity.Member, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *memberRepository) FindByStatus(ctx context.Context, status entity.MemberStatus) ([]*entity.Member, error) {
	return repo.find(ctx, bson.M{"status": string(status)})
}

func (repo *memberRepository) find(ctx context.Context, filter bson.M) ([]*entity.Member, error) {
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find members")
	}

	var docs []model.MemberModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode members")
	}

	members := make([]*entity.Member, 0, len(docs))
	for i := range docs {
		members = append(members, model.ToMemberDomain(&docs[i]))
	}

	return members, nil
}

func (repo *memberRepository) UpdateStatus(ctx context.Context, id string, status entity.MemberStatus) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repository.ErrInvalidID
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to update member status")
	}

	return result.ModifiedCount, nil
}

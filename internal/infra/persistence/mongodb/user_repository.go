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

// userRepository implements repository.UserRepository over the 'users'
// collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(model.UserModel{}.CollectionName())}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return model.ToUserDomain(&userM), nil
}

func (repo *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"role": string(role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by role")
	}

	var docs []model.UserModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, model.ToUserDomain(&docs[i]))
	}

	return users, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	result, err := repo.coll.InsertOne(ctx, model.FromUserDomain(user))
	if err != nil {
		return "", errors.Wrap(err, "failed to insert user")
	}

	id := result.InsertedID.(primitive.ObjectID).Hex()
	user.ID = id

	return id, nil
}

func (repo *userRepository) UpdateRoleByEmail(ctx context.Context, email string, role entity.Role) (int64, error) {
	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": string(role)}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to update user role by email")
	}

	return result.ModifiedCount, nil
}

func (repo *userRepository) UpdateRoleByID(ctx context.Context, id string, role entity.Role) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repository.ErrInvalidID
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"role": string(role)}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to update user role by id")
	}

	return result.ModifiedCount, nil
}

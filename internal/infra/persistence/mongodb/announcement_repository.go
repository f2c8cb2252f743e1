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

// announcementRepository implements repository.AnnouncementRepository over
// the 'announcements' collection.
type announcementRepository struct {
	coll *mongo.Collection
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *mongo.Database) repository.AnnouncementRepository {
	return &announcementRepository{coll: db.Collection(model.AnnouncementModel{}.CollectionName())}
}

func (repo *announcementRepository) Insert(ctx context.Context, announcement *entity.Announcement) (string, error) {
	result, err := repo.coll.InsertOne(ctx, model.FromAnnouncementDomain(announcement))
	if err != nil {
		return "", errors.Wrap(err, "failed to insert announcement")
	}

	id := result.InsertedID.(primitive.ObjectID).Hex()
	announcement.ID = id

	return id, nil
}

func (repo *announcementRepository) FindAll(ctx context.Context) ([]*entity.Announcement, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find announcements")
	}

	var docs []model.AnnouncementModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode announcements")
	}

	announcements := make([]*entity.Announcement, 0, len(docs))
	for i := range docs {
		announcements = append(announcements, model.ToAnnouncementDomain(&docs[i]))
	}

	return announcements, nil
}

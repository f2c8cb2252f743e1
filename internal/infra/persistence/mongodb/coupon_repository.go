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

// couponRepository implements repository.CouponRepository over the
// 'coupons' collection.
type couponRepository struct {
	coll *mongo.Collection
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *mongo.Database) repository.CouponRepository {
	return &couponRepository{coll: db.Collection(model.CouponModel{}.CollectionName())}
}

func (repo *couponRepository) Insert(ctx context.Context, coupon *entity.Coupon) (string, error) {
	result, err := repo.coll.InsertOne(ctx, model.FromCouponDomain(coupon))
	if err != nil {
		return "", errors.Wrap(err, "failed to insert coupon")
	}

	id := result.InsertedID.(primitive.ObjectID).Hex()
	coupon.ID = id

	return id, nil
}

func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var doc model.CouponModel
	if err := repo.coll.FindOne(ctx, bson.M{"code": code}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return model.ToCouponDomain(&doc), nil
}

func (repo *couponRepository) FindAll(ctx context.Context) ([]*entity.Coupon, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find coupons")
	}

	var docs []model.CouponModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(docs))
	for i := range docs {
		coupons = append(coupons, model.ToCouponDomain(&docs[i]))
	}

	return coupons, nil
}

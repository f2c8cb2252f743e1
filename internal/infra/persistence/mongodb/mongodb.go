// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver. Every repository operation is
// atomic at single-document granularity; cross-collection workflows are
// sequential dependent calls owned by the usecase layer.
package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"bmshub/config"
	"bmshub/internal/domain/lifecycle"
	"bmshub/internal/errors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the process-scoped MongoDB database handle. The client is
// connected and pinged on startup and disconnected on shutdown, so no
// package-level connection state exists anywhere in the codebase.
func New(params Params) (*mongo.Database, error) {
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}

// ensureIndexes creates the partial unique index that guarantees at most
// one pending agreement per (userEmail, apartmentNo) pair. Duplicate
// submissions then fail at insert time instead of racing a prior read.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("agreements").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userEmail", Value: 1},
			{Key: "apartmentNo", Value: 1},
		},
		Options: options.Index().
			SetName("unique_pending_agreement").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": "pending"}),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create agreements index")
	}

	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wakeline/pkg/config"
	"wakeline/pkg/model"
)

const (
	WaitlistCollectionName = "Waitlist"
)

type mongoWaitlistRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type WaitlistRepository interface {
	Add(ctx context.Context, entry *model.WaitlistEntry) (created bool, err error)
	FindBySession(ctx context.Context, sessionID string) ([]*model.WaitlistEntry, error)
}

func NewMongoWaitlistRepository(cfg *config.Config) WaitlistRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoWaitlistRepository{
		cfg:        cfg,
		collection: db.Collection(WaitlistCollectionName),
	}
}

func (r *mongoWaitlistRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// Add appends the rider to the session's waitlist. Joining twice leaves one
// entry at the original position; created_at is only written on first insert.
func (r *mongoWaitlistRepository) Add(ctx context.Context, entry *model.WaitlistEntry) (bool, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"session_id": entry.SessionID,
		"rider_id":   entry.RiderID,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"session_id": entry.SessionID,
			"rider_id":   entry.RiderID,
			"created_at": time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to join waitlist: %w", err)
	}

	return result.UpsertedCount > 0, nil
}

// FindBySession returns waitlist entries in join order (FIFO).
func (r *mongoWaitlistRepository) FindBySession(ctx context.Context, sessionID string) ([]*model.WaitlistEntry, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find waitlist entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*model.WaitlistEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode waitlist entries: %w", err)
	}

	return entries, nil
}

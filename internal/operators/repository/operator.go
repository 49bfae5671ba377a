package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	operatorserrors "wakeline/internal/operators/errors"
	"wakeline/pkg/config"
	"wakeline/pkg/model"
)

const (
	CollectionName = "Operators"
)

type mongoOperatorRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type OperatorRepository interface {
	Create(ctx context.Context, operator *model.Operator) error
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Operator, error)
	FindByID(ctx context.Context, id string) (*model.Operator, error)
	Count(ctx context.Context) (int64, error)
}

func NewMongoOperatorRepository(cfg *config.Config) OperatorRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoOperatorRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoOperatorRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoOperatorRepository) Create(ctx context.Context, operator *model.Operator) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if operator.ID == "" {
		operator.ID = primitive.NewObjectID().Hex()
	}
	operator.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := r.collection.InsertOne(ctx, operator); err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}

	return nil
}

// FindAll returns the directory newest first, so freshly registered
// operators land at the top of the listing.
func (r *mongoOperatorRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Operator, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find operators: %w", err)
	}
	defer cursor.Close(ctx)

	operators := []*model.Operator{}
	if err := cursor.All(ctx, &operators); err != nil {
		return nil, fmt.Errorf("failed to decode operators: %w", err)
	}

	return operators, nil
}

func (r *mongoOperatorRepository) FindByID(ctx context.Context, id string) (*model.Operator, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var operator model.Operator
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&operator)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, operatorserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator: %w", err)
	}

	return &operator, nil
}

func (r *mongoOperatorRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count operators: %w", err)
	}

	return count, nil
}

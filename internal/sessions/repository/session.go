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

	sessionserrors "wakeline/internal/sessions/errors"
	"wakeline/pkg/config"
	mongotx "wakeline/pkg/db/mongo"
	"wakeline/pkg/model"
)

const (
	CollectionName = "Sessions"
)

type mongoSessionRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindByID(ctx context.Context, id string) (*model.Session, error)
	FindCatalog(ctx context.Context) ([]*model.Session, error)
	Count(ctx context.Context) (int64, error)
	IncrementBookedSeats(ctx context.Context, id string) (*model.Session, error)
	Claim(ctx context.Context, id string, claim *model.Claim) (*model.Session, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

func NewMongoSessionRepository(cfg *config.Config) SessionRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSessionRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout wraps the context with a timeout if not already in a transaction.
// When inside a transaction (SessionContext), returns the original context
// unchanged with a no-op cancel function, as we cannot wrap SessionContext
// without breaking transaction semantics.
func (r *mongoSessionRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoSessionRepository) Create(ctx context.Context, session *model.Session) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	// IDs are stored as plain strings so seeded fixtures and generated
	// sessions decode the same way.
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	session.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *mongoSessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	if id == "" {
		return nil, sessionserrors.ErrInvalidID
	}

	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, sessionserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return &session, nil
}

// FindCatalog returns the full catalog newest first. Filtering happens in the
// service layer against the in-memory predicate, so the browse rules live in
// exactly one place.
func (r *mongoSessionRepository) FindCatalog(ctx context.Context) ([]*model.Session, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []*model.Session
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}

	return sessions, nil
}

func (r *mongoSessionRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return count, nil
}

// IncrementBookedSeats atomically takes one seat. The filter admits only
// sessions with a free seat, so two racing bookings can never push
// booked_seats past total_seats regardless of the advisory lock.
func (r *mongoSessionRepository) IncrementBookedSeats(ctx context.Context, id string) (*model.Session, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"_id":   id,
		"$expr": bson.M{"$lt": bson.A{"$booked_seats", "$total_seats"}},
	}
	update := bson.M{"$inc": bson.M{"booked_seats": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var session model.Session
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&session)
	if err == nil {
		return &session, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to increment booked seats: %w", err)
	}

	// No match: either the session does not exist or it is already full.
	exists, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if countErr != nil {
		return nil, fmt.Errorf("failed to check session existence: %w", countErr)
	}
	if exists == 0 {
		return nil, sessionserrors.ErrNotFound
	}
	return nil, sessionserrors.ErrCapacityExceeded
}

// Claim atomically flips an OPEN request to CLAIMED and writes the operator's
// capacity onto it. The OPEN filter makes the first claim win; every later
// claim matches nothing.
func (r *mongoSessionRepository) Claim(ctx context.Context, id string, claim *model.Claim) (*model.Session, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"_id":            id,
		"is_requested":   true,
		"request_status": model.RequestOpen,
	}
	update := claimUpdate(claim)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var session model.Session
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&session)
	if err == nil {
		return &session, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	exists, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if countErr != nil {
		return nil, fmt.Errorf("failed to check session existence: %w", countErr)
	}
	if exists == 0 {
		return nil, sessionserrors.ErrNotFound
	}
	return nil, sessionserrors.ErrNotOpenRequest
}

// claimUpdate builds the update that converts an open request into a regular
// operator-run session. Clearing is_requested moves it off the request board.
func claimUpdate(claim *model.Claim) bson.M {
	return bson.M{
		"$set": bson.M{
			"is_requested":   false,
			"request_status": model.RequestClaimed,
			"operator_name":  claim.OperatorName,
			"meeting_point":  claim.MeetingPoint,
			"captain":        claim.Captain,
		},
	}
}

func (r *mongoSessionRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}

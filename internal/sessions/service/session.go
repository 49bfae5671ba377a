package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"

	sessionserrors "wakeline/internal/sessions/errors"
	"wakeline/internal/sessions/repository"
	"wakeline/internal/sessions/validator"
	"wakeline/pkg/config"
	apperrors "wakeline/pkg/errors"
	"wakeline/pkg/events"
	"wakeline/pkg/kafka"
	"wakeline/pkg/middleware"
	"wakeline/pkg/model"
	"wakeline/pkg/payments"
	"wakeline/pkg/sanitizer"
)

// EventPublisher is the slice of the Kafka producer the service needs.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type SessionService interface {
	List(ctx context.Context, filter model.SessionFilter, limit int, offset int64) ([]*model.Session, int64, error)
	GetByID(ctx context.Context, id string) (*model.Session, error)
	BookSeat(ctx context.Context, sessionID, riderID string) (*model.BookingResult, error)
	JoinWaitlist(ctx context.Context, sessionID, riderID string) (*model.WaitlistEntry, error)
	RequestTrip(ctx context.Context, req *model.TripRequest) (*model.Session, error)
	ClaimRequest(ctx context.Context, sessionID string, claim *model.Claim) (*model.Session, error)
	ListBookings(ctx context.Context, riderID string) ([]*model.Session, error)
}

type sessionService struct {
	repo         repository.SessionRepository
	bookingRepo  repository.BookingRepository
	waitlistRepo repository.WaitlistRepository
	lockRepo     repository.SeatLockRepository
	validator    *validator.SessionValidator
	authorizer   payments.Authorizer
	publisher    EventPublisher
	cfg          *config.Config
}

func NewSessionService(
	repo repository.SessionRepository,
	bookingRepo repository.BookingRepository,
	waitlistRepo repository.WaitlistRepository,
	lockRepo repository.SeatLockRepository,
	validator *validator.SessionValidator,
	authorizer payments.Authorizer,
	publisher EventPublisher,
	cfg *config.Config,
) SessionService {
	return &sessionService{
		repo:         repo,
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		lockRepo:     lockRepo,
		validator:    validator,
		authorizer:   authorizer,
		publisher:    publisher,
		cfg:          cfg,
	}
}

// List applies the catalog filter in memory over the newest-first catalog.
// The returned total counts filtered matches, not stored documents.
func (s *sessionService) List(ctx context.Context, filter model.SessionFilter, limit int, offset int64) ([]*model.Session, int64, error) {
	catalog, err := s.repo.FindCatalog(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list sessions", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve sessions", err)
	}

	now := time.Now()
	matched := make([]*model.Session, 0, len(catalog))
	for _, session := range catalog {
		if filter.Matches(session, now) {
			matched = append(matched, session)
		}
	}

	total := int64(len(matched))
	if offset >= total {
		return []*model.Session{}, total, nil
	}

	end := offset + int64(limit)
	if end > total {
		end = total
	}

	return matched[offset:end], total, nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Session ID cannot be empty")
	}

	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Session", id)
		}
		if errors.Is(err, sessionserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid session ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve session", err)
	}

	return session, nil
}

// BookSeat takes one seat for the rider. Booking a full session fails with a
// capacity error; the caller's fallback is the waitlist. Booking the same
// session twice is idempotent for the rider's list but still consumes a seat,
// matching how group bookings reserve extra seats under one account.
func (s *sessionService) BookSeat(ctx context.Context, sessionID, riderID string) (*model.BookingResult, error) {
	if sessionID == "" || riderID == "" {
		return nil, apperrors.InvalidInput("Session ID and rider ID are required")
	}

	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.OpenRequest() {
		// Requests accept bookings too; riders pile on until an operator
		// claims. Nothing extra to check here, the seat guard below applies.
		s.cfg.Log.Debug("Booking against an open trip request", "session_id", sessionID)
	}

	// Payment hold happens before the seat is committed so a declined card
	// never occupies capacity.
	amount := decimal.NewFromFloat(session.PricePerSeat)
	if _, err := s.authorizer.Authorize(ctx, riderID, sessionID, amount, session.Currency); err != nil {
		middleware.TrackSeatBooking("payment_declined")
		return nil, err
	}

	lockStart := time.Now()
	lockID, err := s.acquireSeatLock(ctx, sessionID)
	if err != nil {
		middleware.TrackSeatLockWait("conflict", time.Since(lockStart))
		return nil, err
	}
	middleware.TrackSeatLockWait("acquired", time.Since(lockStart))
	defer func() {
		if releaseErr := s.releaseSeatLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release seat lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	var updated *model.Session
	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		var txErr error
		updated, txErr = s.repo.IncrementBookedSeats(sessCtx, sessionID)
		if txErr != nil {
			return txErr
		}

		if _, txErr = s.bookingRepo.Upsert(sessCtx, &model.Booking{
			SessionID: sessionID,
			RiderID:   riderID,
		}); txErr != nil {
			return txErr
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, sessionserrors.ErrNotFound) {
			middleware.TrackSeatBooking("not_found")
			return nil, apperrors.NotFoundWithID("Session", sessionID)
		}
		if errors.Is(err, sessionserrors.ErrCapacityExceeded) {
			middleware.TrackSeatBooking("capacity_exceeded")
			return nil, apperrors.CapacityExceeded(sessionID)
		}
		middleware.TrackSeatBooking("error")
		s.cfg.Log.Error("Failed to book seat", "session_id", sessionID, "rider_id", riderID, "error", err)
		return nil, apperrors.Internal("Failed to book seat", err)
	}

	middleware.TrackSeatBooking("booked")
	s.cfg.Log.Info("Seat booked successfully",
		"session_id", sessionID,
		"rider_id", riderID,
		"booked_seats", updated.BookedSeats,
		"total_seats", updated.TotalSeats,
		"fill_state", updated.FillState(),
	)

	s.publishBookingEvents(updated, riderID)

	return &model.BookingResult{
		Session:   updated,
		FillState: updated.FillState(),
		Confirmed: updated.Confirmed(),
		Full:      updated.Full(),
	}, nil
}

// JoinWaitlist records the rider's interest in a full session. Only full
// sessions carry a waitlist; anything else still has bookable seats.
func (s *sessionService) JoinWaitlist(ctx context.Context, sessionID, riderID string) (*model.WaitlistEntry, error) {
	if sessionID == "" || riderID == "" {
		return nil, apperrors.InvalidInput("Session ID and rider ID are required")
	}

	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Full() {
		return nil, apperrors.InvalidState(fmt.Sprintf(
			"Session %s still has %d open seat(s); book a seat instead of waitlisting",
			sessionID, session.SeatsRemaining(),
		))
	}

	entry := &model.WaitlistEntry{
		SessionID: sessionID,
		RiderID:   riderID,
	}
	created, err := s.waitlistRepo.Add(ctx, entry)
	if err != nil {
		s.cfg.Log.Error("Failed to join waitlist", "session_id", sessionID, "rider_id", riderID, "error", err)
		return nil, apperrors.Internal("Failed to join waitlist", err)
	}

	if created {
		s.cfg.Log.Info("Rider joined waitlist", "session_id", sessionID, "rider_id", riderID)
		s.publishEvent(events.TypeWaitlistJoined, sessionID, events.WaitlistJoined{
			SessionID: sessionID,
			RiderID:   riderID,
			JoinedAt:  time.Now().UTC(),
		})
	} else {
		s.cfg.Log.Debug("Rider already on waitlist", "session_id", sessionID, "rider_id", riderID)
	}

	return entry, nil
}

// RequestTrip synthesizes an OPEN request session from rider demand. The
// requester holds the first seat, so the request is born one booking toward
// its confirmation threshold.
func (s *sessionService) RequestTrip(ctx context.Context, req *model.TripRequest) (*model.Session, error) {
	req.Activity = sanitizer.TrimAndNormalize(req.Activity)
	req.Location = sanitizer.NormalizeLocation(req.Location)

	if err := s.validator.ValidateTripRequest(req); err != nil {
		s.cfg.Log.Warn("Trip request validation failed", "error", err)
		return nil, apperrors.Validation("Invalid trip request", map[string]any{"error": err.Error()})
	}

	startTime, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.Time)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid date or time format")
	}

	activityType := model.ClassifyActivity(req.Activity)
	session := &model.Session{
		Title:           fmt.Sprintf("%s Request", req.Activity),
		Type:            activityType,
		Location:        req.Location,
		MeetingPoint:    "TBD - Waiting for Captain",
		StartTime:       startTime,
		DurationMinutes: s.cfg.RequestTripDurationMin,
		PricePerSeat:    s.cfg.RequestTripPrice,
		Currency:        s.cfg.RequestTripCurrency,

		TotalSeats:         s.cfg.RequestTripSeats,
		BookedSeats:        1,
		MinRidersToConfirm: s.cfg.RequestTripMinRiders,

		SkillLevel: model.SkillMixed,
		Captain: model.Captain{
			Name:      "Pending assignment",
			Rating:    0,
			Verified:  false,
			Languages: []string{"English"},
		},

		OperatorName: "Crowdsourced Request",

		IsRequested:   true,
		RequestStatus: model.RequestOpen,
	}

	if err := s.validator.Validate(session); err != nil {
		s.cfg.Log.Error("Synthesized request session is invalid", "rider_id", req.RiderID, "error", err)
		return nil, apperrors.Internal("Failed to create trip request", err)
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if txErr := s.repo.Create(sessCtx, session); txErr != nil {
			return txErr
		}
		if _, txErr := s.bookingRepo.Upsert(sessCtx, &model.Booking{
			SessionID: session.ID,
			RiderID:   req.RiderID,
		}); txErr != nil {
			return txErr
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create trip request", "rider_id", req.RiderID, "error", err)
		return nil, apperrors.Internal("Failed to create trip request", err)
	}

	s.cfg.Log.Info("Trip request opened",
		"session_id", session.ID,
		"rider_id", req.RiderID,
		"activity", req.Activity,
		"location", req.Location,
		"start_time", session.StartTime,
	)

	s.publishEvent(events.TypeRequestOpened, session.ID, events.RequestOpened{
		SessionID: session.ID,
		RiderID:   req.RiderID,
		Activity:  req.Activity,
		Location:  req.Location,
		OpenedAt:  time.Now().UTC(),
	})

	return session, nil
}

// ClaimRequest lets an operator win an open trip request. Exactly one claim
// succeeds; later attempts see an invalid-state error.
func (s *sessionService) ClaimRequest(ctx context.Context, sessionID string, claim *model.Claim) (*model.Session, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("Session ID cannot be empty")
	}

	claim.OperatorName = sanitizer.NormalizeName(claim.OperatorName)
	claim.MeetingPoint = sanitizer.NormalizeLocation(claim.MeetingPoint)
	claim.Captain.Name = sanitizer.NormalizeName(claim.Captain.Name)
	claim.Captain.Languages = sanitizer.NormalizeLanguages(claim.Captain.Languages)
	claim.Captain.Image = sanitizer.NormalizeImageURL(claim.Captain.Image)
	// Claiming operators vouch for the captain they install.
	claim.Captain.Verified = true

	if err := s.validator.ValidateClaim(claim); err != nil {
		s.cfg.Log.Warn("Claim validation failed", "session_id", sessionID, "error", err)
		return nil, apperrors.Validation("Invalid claim", map[string]any{"error": err.Error()})
	}

	session, err := s.repo.Claim(ctx, sessionID, claim)
	if err != nil {
		if errors.Is(err, sessionserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Session", sessionID)
		}
		if errors.Is(err, sessionserrors.ErrNotOpenRequest) {
			return nil, apperrors.InvalidState(fmt.Sprintf("Session %s is not an open trip request", sessionID))
		}
		s.cfg.Log.Error("Failed to claim trip request", "session_id", sessionID, "error", err)
		return nil, apperrors.Internal("Failed to claim trip request", err)
	}

	s.cfg.Log.Info("Trip request claimed",
		"session_id", sessionID,
		"operator_name", session.OperatorName,
	)

	s.publishEvent(events.TypeRequestClaimed, sessionID, events.RequestClaimed{
		SessionID:    sessionID,
		OperatorName: session.OperatorName,
		MeetingPoint: session.MeetingPoint,
		ClaimedAt:    time.Now().UTC(),
	})

	return session, nil
}

// ListBookings resolves the rider's booking references against the catalog.
// References to sessions that no longer exist are dropped silently.
func (s *sessionService) ListBookings(ctx context.Context, riderID string) ([]*model.Session, error) {
	if riderID == "" {
		return nil, apperrors.InvalidInput("Rider ID cannot be empty")
	}

	bookings, err := s.bookingRepo.FindByRider(ctx, riderID)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "rider_id", riderID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	sessions := make([]*model.Session, 0, len(bookings))
	for _, booking := range bookings {
		session, err := s.repo.FindByID(ctx, booking.SessionID)
		if err != nil {
			if errors.Is(err, sessionserrors.ErrNotFound) {
				s.cfg.Log.Warn("Booking references missing session",
					"rider_id", riderID,
					"session_id", booking.SessionID,
				)
				continue
			}
			return nil, apperrors.Internal("Failed to resolve booking", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// --- Helpers ---

// acquireSeatLock creates an advisory lock so concurrent bookings for the same
// session serialize before hitting the guarded update.
func (s *sessionService) acquireSeatLock(ctx context.Context, sessionID string) (string, error) {
	lockID := fmt.Sprintf("seat_lock_%s", sessionID)

	lock := &model.SeatLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(s.cfg.SeatLockTTL),
	}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This session is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire seat lock", err)
	}

	return lockID, nil
}

func (s *sessionService) releaseSeatLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}

// publishBookingEvents emits seat_booked plus the threshold events the
// booking crossed. Publishing is fire-and-forget: a broker outage never
// fails a booking that is already committed.
func (s *sessionService) publishBookingEvents(session *model.Session, riderID string) {
	now := time.Now().UTC()

	s.publishEvent(events.TypeSeatBooked, session.ID, events.SeatBooked{
		SessionID:   session.ID,
		RiderID:     riderID,
		BookedSeats: session.BookedSeats,
		TotalSeats:  session.TotalSeats,
		FillState:   string(session.FillState()),
		BookedAt:    now,
	})

	if session.BookedSeats == session.MinRidersToConfirm {
		s.publishEvent(events.TypeSessionConfirmed, session.ID, events.SessionConfirmed{
			SessionID:   session.ID,
			BookedSeats: session.BookedSeats,
			MinRiders:   session.MinRidersToConfirm,
			ConfirmedAt: now,
		})
	}

	if session.BookedSeats == session.TotalSeats {
		s.publishEvent(events.TypeSessionFull, session.ID, events.SessionFull{
			SessionID:  session.ID,
			TotalSeats: session.TotalSeats,
			FullAt:     now,
		})
	}
}

func (s *sessionService) publishEvent(eventType, sessionID string, payload any) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(sessionID).
		WithValue(payload).
		WithEventType(eventType).
		WithSchemaVersion(events.SchemaVersion).
		WithSource("sessions").
		Build()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.publisher.Publish(ctx, msg); err != nil {
			s.cfg.Log.Warn("Failed to publish event",
				"event_type", eventType,
				"session_id", sessionID,
				"error", err,
			)
		}
	}()
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"

	sessionserrors "wakeline/internal/sessions/errors"
	"wakeline/internal/sessions/validator"
	"wakeline/pkg/config"
	mongotx "wakeline/pkg/db/mongo"
	apperrors "wakeline/pkg/errors"
	"wakeline/pkg/events"
	"wakeline/pkg/kafka"
	"wakeline/pkg/logger"
	"wakeline/pkg/model"
	"wakeline/pkg/payments"
)

// Mock repositories for testing

type mockSessionRepository struct {
	createFunc      func(ctx context.Context, session *model.Session) error
	findByIDFunc    func(ctx context.Context, id string) (*model.Session, error)
	findCatalogFunc func(ctx context.Context) ([]*model.Session, error)
	countFunc       func(ctx context.Context) (int64, error)
	incrementFunc   func(ctx context.Context, id string) (*model.Session, error)
	claimFunc       func(ctx context.Context, id string, claim *model.Claim) (*model.Session, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, session *model.Session) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, session)
	}
	session.ID = "generated-id"
	return nil
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, sessionserrors.ErrNotFound
}

func (m *mockSessionRepository) FindCatalog(ctx context.Context) ([]*model.Session, error) {
	if m.findCatalogFunc != nil {
		return m.findCatalogFunc(ctx)
	}
	return []*model.Session{}, nil
}

func (m *mockSessionRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockSessionRepository) IncrementBookedSeats(ctx context.Context, id string) (*model.Session, error) {
	if m.incrementFunc != nil {
		return m.incrementFunc(ctx, id)
	}
	return nil, sessionserrors.ErrNotFound
}

func (m *mockSessionRepository) Claim(ctx context.Context, id string, claim *model.Claim) (*model.Session, error) {
	if m.claimFunc != nil {
		return m.claimFunc(ctx, id, claim)
	}
	return nil, sessionserrors.ErrNotFound
}

func (m *mockSessionRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	var sessCtx mongo.SessionContext
	return fn(sessCtx)
}

type mockBookingRepository struct {
	upsertFunc      func(ctx context.Context, booking *model.Booking) (bool, error)
	findByRiderFunc func(ctx context.Context, riderID string) ([]*model.Booking, error)
}

func (m *mockBookingRepository) Upsert(ctx context.Context, booking *model.Booking) (bool, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, booking)
	}
	return true, nil
}

func (m *mockBookingRepository) FindByRider(ctx context.Context, riderID string) ([]*model.Booking, error) {
	if m.findByRiderFunc != nil {
		return m.findByRiderFunc(ctx, riderID)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindBySession(ctx context.Context, sessionID string) ([]*model.Booking, error) {
	return []*model.Booking{}, nil
}

type mockWaitlistRepository struct {
	addFunc func(ctx context.Context, entry *model.WaitlistEntry) (bool, error)
}

func (m *mockWaitlistRepository) Add(ctx context.Context, entry *model.WaitlistEntry) (bool, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, entry)
	}
	return true, nil
}

func (m *mockWaitlistRepository) FindBySession(ctx context.Context, sessionID string) ([]*model.WaitlistEntry, error) {
	return []*model.WaitlistEntry{}, nil
}

type mockSeatLockRepository struct {
	createFunc func(ctx context.Context, lock *model.SeatLock) (*model.SeatLock, error)
}

func (m *mockSeatLockRepository) Create(ctx context.Context, lock *model.SeatLock) (*model.SeatLock, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, lock)
	}
	return lock, nil
}

func (m *mockSeatLockRepository) Delete(ctx context.Context, lockID string) error {
	return nil
}

type mockAuthorizer struct {
	authorizeFunc func(ctx context.Context, riderID, sessionID string, amount decimal.Decimal, currency string) (*payments.Authorization, error)
}

func (m *mockAuthorizer) Authorize(ctx context.Context, riderID, sessionID string, amount decimal.Decimal, currency string) (*payments.Authorization, error) {
	if m.authorizeFunc != nil {
		return m.authorizeFunc(ctx, riderID, sessionID, amount, currency)
	}
	return &payments.Authorization{}, nil
}

type mockPublisher struct {
	messages chan kafka.Message
}

func newMockPublisher() *mockPublisher {
	return &mockPublisher{messages: make(chan kafka.Message, 16)}
}

func (m *mockPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	m.messages <- msg
	return nil
}

func (m *mockPublisher) waitFor(t *testing.T, eventType string) kafka.Message {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg := <-m.messages:
			if msg.GetEventType() == eventType {
				return msg
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event %s", eventType)
		}
	}
}

func testConfig() *config.Config {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})

	return &config.Config{
		Log:                    log,
		ReadTimeout:            5 * time.Second,
		WriteTimeout:           5 * time.Second,
		SeatLockTTL:            10 * time.Second,
		RequestTripSeats:       5,
		RequestTripMinRiders:   3,
		RequestTripPrice:       200,
		RequestTripCurrency:    "AED",
		RequestTripDurationMin: 60,
	}
}

func newTestService(
	repo *mockSessionRepository,
	bookingRepo *mockBookingRepository,
	waitlistRepo *mockWaitlistRepository,
	publisher *mockPublisher,
) *sessionService {
	cfg := testConfig()
	return &sessionService{
		repo:         repo,
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		lockRepo:     &mockSeatLockRepository{},
		validator:    validator.NewSessionValidator(cfg.Log),
		authorizer:   &mockAuthorizer{},
		publisher:    publisher,
		cfg:          cfg,
	}
}

func catalogSession(id string, booked, total, minRiders int) *model.Session {
	return &model.Session{
		ID:                 id,
		Title:              "Morning Wake Session",
		Type:               model.ActivityWakeboarding,
		Location:           "Dubai Marina",
		MeetingPoint:       "Pier 7",
		StartTime:          time.Now().Add(24 * time.Hour),
		DurationMinutes:    120,
		PricePerSeat:       250,
		Currency:           "AED",
		TotalSeats:         total,
		BookedSeats:        booked,
		MinRidersToConfirm: minRiders,
		SkillLevel:         model.SkillMixed,
		Captain: model.Captain{
			Name:      "Captain Omar",
			Rating:    4.9,
			Verified:  true,
			Languages: []string{"English", "Arabic"},
		},
		OperatorName: "WakeOps Dubai",
		CreatedAt:    time.Now(),
	}
}

func TestBookSeat_Success(t *testing.T) {
	session := catalogSession("s1", 1, 6, 3)
	after := catalogSession("s1", 2, 6, 3)

	repo := &mockSessionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return session, nil
		},
		incrementFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return after, nil
		},
	}

	var upserted *model.Booking
	bookingRepo := &mockBookingRepository{
		upsertFunc: func(ctx context.Context, booking *model.Booking) (bool, error) {
			upserted = booking
			return true, nil
		},
	}

	publisher := newMockPublisher()
	svc := newTestService(repo, bookingRepo, &mockWaitlistRepository{}, publisher)

	result, err := svc.BookSeat(context.Background(), "s1", "rider-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Session.BookedSeats != 2 {
		t.Errorf("expected 2 booked seats, got %d", result.Session.BookedSeats)
	}
	if result.FillState != model.FillBelowMinimum {
		t.Errorf("expected BELOW_MINIMUM, got %s", result.FillState)
	}
	if result.Confirmed || result.Full {
		t.Errorf("expected neither confirmed nor full, got confirmed=%v full=%v", result.Confirmed, result.Full)
	}

	if upserted == nil || upserted.RiderID != "rider-1" || upserted.SessionID != "s1" {
		t.Errorf("booking reference not recorded correctly: %+v", upserted)
	}

	msg := publisher.waitFor(t, events.TypeSeatBooked)
	if msg.Key != "s1" {
		t.Errorf("expected message key s1, got %s", msg.Key)
	}
}

func TestBookSeat_CrossingThresholdEmitsConfirmed(t *testing.T) {
	after := catalogSession("s1", 3, 6, 3)

	repo := &mockSessionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return catalogSession("s1", 2, 6, 3), nil
		},
		incrementFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return after, nil
		},
	}

	publisher := newMockPublisher()
	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, publisher)

	result, err := svc.BookSeat(context.Background(), "s1", "rider-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Confirmed {
		t.Error("expected session to be confirmed")
	}
	if result.FillState != model.FillConfirmed {
		t.Errorf("expected CONFIRMED, got %s", result.FillState)
	}

	publisher.waitFor(t, events.TypeSessionConfirmed)
}

func TestBookSeat_LastSeatEmitsFull(t *testing.T) {
	after := catalogSession("s1", 6, 6, 3)

	repo := &mockSessionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return catalogSession("s1", 5, 6, 3), nil
		},
		incrementFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return after, nil
		},
	}

	publisher := newMockPublisher()
	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, publisher)

	result, err := svc.BookSeat(context.Background(), "s1", "rider-6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Full {
		t.Error("expected session to be full")
	}
	if result.FillState != model.FillFull {
		t.Errorf("expected FULL, got %s", result.FillState)
	}

	publisher.waitFor(t, events.TypeSessionFull)
}

func TestBookSeat_FullSessionRejected(t *testing.T) {
	repo := &mockSessionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return catalogSession("s1", 6, 6, 3), nil
		},
		incrementFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return nil, sessionserrors.ErrCapacityExceeded
		},
	}

	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, newMockPublisher())

	_, err := svc.BookSeat(context.Background(), "s1", "rider-7")
	if err == nil {
		t.Fatal("expected capacity error")
	}

	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.CodeCapacityExceeded {
		t.Errorf("expected code %s, got %s", apperrors.CodeCapacityExceeded, appErr.Code)
	}
	if appErr.StatusCode() != 409 {
		t.Errorf("expected status 409, got %d", appErr.StatusCode())
	}
}

func TestBookSeat_PaymentDeclinedLeavesSeatFree(t *testing.T) {
	incrementCalled := false
	repo := &mockSessionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return catalogSession("s1", 1, 6, 3), nil
		},
		incrementFunc: func(ctx context.Context, id string) (*model.Session, error) {
			incrementCalled = true
			return catalogSession("s1", 2, 6, 3), nil
		},
	}

	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, newMockPublisher())
	svc.authorizer = &mockAuthorizer{
		authorizeFunc: func(ctx context.Context, riderID, sessionID string, amount decimal.Decimal, currency string) (*payments.Authorization, error) {
			return nil, apperrors.PaymentNotAuthorized("card declined")
		},
	}

	_, err := svc.BookSeat(context.Background(), "s1", "rider-1")
	if err == nil {
		t.Fatal("expected payment error")
	}
	if incrementCalled {
		t.Error("seat must not be consumed when payment is declined")
	}
}

func TestBookSeat_MissingSession(t *testing.T) {
	svc := newTestService(&mockSessionRepository{}, &mockBookingRepository{}, &mockWaitlistRepository{}, newMockPublisher())

	_, err := svc.BookSeat(context.Background(), "missing", "rider-1")
	if err == nil {
		t.Fatal("expected not found error")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestJoinWaitlist_RejectsSessionWithOpenSeats(t *testing.T) {
	repo := &mockSessionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return catalogSession("s1", 4, 6, 3), nil
		},
	}

	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, newMockPublisher())

	_, err := svc.JoinWaitlist(context.Background(), "s1", "rider-1")
	if err == nil {
		t.Fatal("expected invalid state error")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.CodeInvalidState {
		t.Errorf("expected INVALID_STATE, got %v", err)
	}
}

func TestJoinWaitlist_FullSession(t *testing.T) {
	repo := &mockSessionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return catalogSession("s1", 6, 6, 3), nil
		},
	}

	publisher := newMockPublisher()
	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, publisher)

	entry, err := svc.JoinWaitlist(context.Background(), "s1", "rider-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.SessionID != "s1" || entry.RiderID != "rider-9" {
		t.Errorf("unexpected entry: %+v", entry)
	}

	publisher.waitFor(t, events.TypeWaitlistJoined)
}

func TestJoinWaitlist_DuplicateDoesNotReemit(t *testing.T) {
	repo := &mockSessionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Session, error) {
			return catalogSession("s1", 6, 6, 3), nil
		},
	}
	waitlistRepo := &mockWaitlistRepository{
		addFunc: func(ctx context.Context, entry *model.WaitlistEntry) (bool, error) {
			return false, nil
		},
	}

	publisher := newMockPublisher()
	svc := newTestService(repo, &mockBookingRepository{}, waitlistRepo, publisher)

	if _, err := svc.JoinWaitlist(context.Background(), "s1", "rider-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case msg := <-publisher.messages:
		t.Errorf("expected no event for duplicate join, got %s", msg.GetEventType())
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRequestTrip_SynthesizesOpenRequest(t *testing.T) {
	var created *model.Session
	repo := &mockSessionRepository{
		createFunc: func(ctx context.Context, session *model.Session) error {
			session.ID = "req-1"
			created = session
			return nil
		},
	}

	var upserted *model.Booking
	bookingRepo := &mockBookingRepository{
		upsertFunc: func(ctx context.Context, booking *model.Booking) (bool, error) {
			upserted = booking
			return true, nil
		},
	}

	publisher := newMockPublisher()
	svc := newTestService(repo, bookingRepo, &mockWaitlistRepository{}, publisher)

	tomorrow := time.Now().Add(24 * time.Hour).Format("2006-01-02")
	session, err := svc.RequestTrip(context.Background(), &model.TripRequest{
		RiderID:  "rider-1",
		Activity: "wakeboarding",
		Date:     tomorrow,
		Time:     "08:30",
		Location: "Palm Jumeirah",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected session to be created")
	}
	if !session.IsRequested || session.RequestStatus != model.RequestOpen {
		t.Errorf("expected OPEN request, got is_requested=%v status=%s", session.IsRequested, session.RequestStatus)
	}
	if session.Type != model.ActivityWakeboarding {
		t.Errorf("expected WAKEBOARDING, got %s", session.Type)
	}
	if session.Title != "wakeboarding Request" {
		t.Errorf("unexpected title: %q", session.Title)
	}
	if session.OperatorName != "Crowdsourced Request" {
		t.Errorf("unexpected operator name: %q", session.OperatorName)
	}
	if session.MeetingPoint != "TBD - Waiting for Captain" {
		t.Errorf("unexpected meeting point: %q", session.MeetingPoint)
	}
	if session.TotalSeats != 5 || session.BookedSeats != 1 || session.MinRidersToConfirm != 3 {
		t.Errorf("unexpected seat defaults: total=%d booked=%d min=%d",
			session.TotalSeats, session.BookedSeats, session.MinRidersToConfirm)
	}
	if session.PricePerSeat != 200 || session.Currency != "AED" {
		t.Errorf("unexpected price defaults: %f %s", session.PricePerSeat, session.Currency)
	}
	if session.FillState() != model.FillBelowMinimum {
		t.Errorf("new request should be BELOW_MINIMUM, got %s", session.FillState())
	}

	if upserted == nil || upserted.RiderID != "rider-1" || upserted.SessionID != "req-1" {
		t.Errorf("requester's seat not recorded: %+v", upserted)
	}

	publisher.waitFor(t, events.TypeRequestOpened)
}

func TestRequestTrip_NonWakeActivityClassifiedAsFishing(t *testing.T) {
	repo := &mockSessionRepository{
		createFunc: func(ctx context.Context, session *model.Session) error {
			session.ID = "req-2"
			return nil
		},
	}

	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, newMockPublisher())

	tomorrow := time.Now().Add(24 * time.Hour).Format("2006-01-02")
	session, err := svc.RequestTrip(context.Background(), &model.TripRequest{
		RiderID:  "rider-1",
		Activity: "deep sea trolling",
		Date:     tomorrow,
		Time:     "06:00",
		Location: "Abu Dhabi Corniche",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Type != model.ActivityFishing {
		t.Errorf("expected FISHING, got %s", session.Type)
	}
}

func TestRequestTrip_PastDateRejected(t *testing.T) {
	svc := newTestService(&mockSessionRepository{}, &mockBookingRepository{}, &mockWaitlistRepository{}, newMockPublisher())

	_, err := svc.RequestTrip(context.Background(), &model.TripRequest{
		RiderID:  "rider-1",
		Activity: "wakeboarding",
		Date:     "2020-01-01",
		Time:     "08:30",
		Location: "Palm Jumeirah",
	})
	if err == nil {
		t.Fatal("expected validation error for past date")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected VALIDATION, got %v", err)
	}
}

func TestClaimRequest_Success(t *testing.T) {
	var stored *model.Claim
	repo := &mockSessionRepository{
		claimFunc: func(ctx context.Context, id string, claim *model.Claim) (*model.Session, error) {
			stored = claim
			s := catalogSession(id, 1, 5, 3)
			s.IsRequested = false
			s.RequestStatus = model.RequestClaimed
			s.OperatorName = claim.OperatorName
			s.MeetingPoint = claim.MeetingPoint
			s.Captain = claim.Captain
			return s, nil
		},
	}

	publisher := newMockPublisher()
	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, publisher)

	session, err := svc.ClaimRequest(context.Background(), "req-1", &model.Claim{
		OperatorName: "WakeOps Dubai",
		MeetingPoint: "Pier 7, Dubai Marina",
		Captain: model.Captain{
			Name:      "Captain Omar",
			Rating:    4.9,
			Languages: []string{"english", "arabic"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.IsRequested {
		t.Error("claimed session should no longer be flagged as a request")
	}
	if session.RequestStatus != model.RequestClaimed {
		t.Errorf("expected CLAIMED, got %s", session.RequestStatus)
	}
	if session.OperatorName != "WakeOps Dubai" {
		t.Errorf("operator not set: %s", session.OperatorName)
	}
	if stored == nil || !stored.Captain.Verified {
		t.Error("claimed captain should be stored as verified")
	}

	publisher.waitFor(t, events.TypeRequestClaimed)
}

func TestClaimRequest_AlreadyClaimed(t *testing.T) {
	repo := &mockSessionRepository{
		claimFunc: func(ctx context.Context, id string, claim *model.Claim) (*model.Session, error) {
			return nil, sessionserrors.ErrNotOpenRequest
		},
	}

	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, newMockPublisher())

	_, err := svc.ClaimRequest(context.Background(), "req-1", &model.Claim{
		OperatorName: "Second Operator",
		MeetingPoint: "Somewhere else",
		Captain: model.Captain{
			Name:      "Captain Late",
			Languages: []string{"English"},
		},
	})
	if err == nil {
		t.Fatal("expected invalid state error")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.CodeInvalidState {
		t.Errorf("expected INVALID_STATE, got %v", err)
	}
}

func TestList_FilterAndPagination(t *testing.T) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 15, 0, 0, 0, now.Location())

	s1 := catalogSession("s1", 1, 6, 3)
	s1.StartTime = today
	s2 := catalogSession("s2", 1, 6, 3)
	s2.StartTime = today.AddDate(0, 0, 1)
	s3 := catalogSession("s3", 1, 6, 3)
	s3.StartTime = today
	s3.Title = "Sunset Fishing Trip"
	s3.Type = model.ActivityFishing

	repo := &mockSessionRepository{
		findCatalogFunc: func(ctx context.Context) ([]*model.Session, error) {
			return []*model.Session{s3, s2, s1}, nil
		},
	}

	svc := newTestService(repo, &mockBookingRepository{}, &mockWaitlistRepository{}, newMockPublisher())

	sessions, total, err := svc.List(context.Background(), model.SessionFilter{Window: model.WindowNow}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 matches for NOW, got %d", total)
	}
	if len(sessions) != 2 || sessions[0].ID != "s3" {
		t.Errorf("expected newest-first order [s3 s1], got %v", ids(sessions))
	}

	sessions, total, err = svc.List(context.Background(), model.SessionFilter{Query: "fishing"}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || sessions[0].ID != "s3" {
		t.Errorf("expected only s3 for query, got %v", ids(sessions))
	}

	sessions, total, err = svc.List(context.Background(), model.SessionFilter{}, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(sessions) != 1 || sessions[0].ID != "s2" {
		t.Errorf("expected page [s2] of 3, got %v (total %d)", ids(sessions), total)
	}

	sessions, total, err = svc.List(context.Background(), model.SessionFilter{}, 10, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 0 || total != 3 {
		t.Errorf("expected empty page past end, got %v", ids(sessions))
	}
}

func TestListBookings_DropsMissingSessions(t *testing.T) {
	repo := &mockSessionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Session, error) {
			if id == "gone" {
				return nil, sessionserrors.ErrNotFound
			}
			return catalogSession(id, 2, 6, 3), nil
		},
	}
	bookingRepo := &mockBookingRepository{
		findByRiderFunc: func(ctx context.Context, riderID string) ([]*model.Booking, error) {
			return []*model.Booking{
				{SessionID: "s1", RiderID: riderID},
				{SessionID: "gone", RiderID: riderID},
				{SessionID: "s2", RiderID: riderID},
			}, nil
		},
	}

	svc := newTestService(repo, bookingRepo, &mockWaitlistRepository{}, newMockPublisher())

	sessions, err := svc.ListBookings(context.Background(), "rider-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 resolvable sessions, got %d", len(sessions))
	}
}

func ids(sessions []*model.Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.ID)
	}
	return out
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wakeline/pkg/events"
	"wakeline/pkg/kafka"
	"wakeline/pkg/logger"
	"wakeline/pkg/model"
)

type mockBookingRepository struct {
	findBySessionFunc func(ctx context.Context, sessionID string) ([]*model.Booking, error)
}

func (m *mockBookingRepository) Upsert(ctx context.Context, booking *model.Booking) (bool, error) {
	return true, nil
}

func (m *mockBookingRepository) FindByRider(ctx context.Context, riderID string) ([]*model.Booking, error) {
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindBySession(ctx context.Context, sessionID string) ([]*model.Booking, error) {
	if m.findBySessionFunc != nil {
		return m.findBySessionFunc(ctx, sessionID)
	}
	return []*model.Booking{}, nil
}

type mockWaitlistRepository struct {
	findBySessionFunc func(ctx context.Context, sessionID string) ([]*model.WaitlistEntry, error)
}

func (m *mockWaitlistRepository) Add(ctx context.Context, entry *model.WaitlistEntry) (bool, error) {
	return true, nil
}

func (m *mockWaitlistRepository) FindBySession(ctx context.Context, sessionID string) ([]*model.WaitlistEntry, error) {
	if m.findBySessionFunc != nil {
		return m.findBySessionFunc(ctx, sessionID)
	}
	return []*model.WaitlistEntry{}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func eventMessage(t *testing.T, eventType string, payload any) kafka.Message {
	t.Helper()
	value, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	return kafka.NewMessage().
		WithKey("s1").
		WithRawValue(value).
		WithEventType(eventType).
		WithSchemaVersion(events.SchemaVersion).
		WithSource("test").
		Build()
}

func TestHandle_SessionFullResolvesWaitlist(t *testing.T) {
	resolved := ""
	waitlistRepo := &mockWaitlistRepository{
		findBySessionFunc: func(ctx context.Context, sessionID string) ([]*model.WaitlistEntry, error) {
			resolved = sessionID
			return []*model.WaitlistEntry{
				{SessionID: sessionID, RiderID: "rider-1"},
				{SessionID: sessionID, RiderID: "rider-2"},
			}, nil
		},
	}

	h := NewEventHandler(&mockBookingRepository{}, waitlistRepo, testLogger())

	msg := eventMessage(t, events.TypeSessionFull, events.SessionFull{
		SessionID:  "s1",
		TotalSeats: 6,
		FullAt:     time.Now(),
	})

	if err := h.Handle(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != "s1" {
		t.Errorf("expected waitlist lookup for s1, got %q", resolved)
	}
}

func TestHandle_RequestClaimedResolvesBackers(t *testing.T) {
	resolved := ""
	bookingRepo := &mockBookingRepository{
		findBySessionFunc: func(ctx context.Context, sessionID string) ([]*model.Booking, error) {
			resolved = sessionID
			return []*model.Booking{{SessionID: sessionID, RiderID: "rider-1"}}, nil
		},
	}

	h := NewEventHandler(bookingRepo, &mockWaitlistRepository{}, testLogger())

	msg := eventMessage(t, events.TypeRequestClaimed, events.RequestClaimed{
		SessionID:    "s1",
		OperatorName: "WakeOps Dubai",
		MeetingPoint: "Pier 7",
		ClaimedAt:    time.Now(),
	})

	if err := h.Handle(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != "s1" {
		t.Errorf("expected booking lookup for s1, got %q", resolved)
	}
}

func TestHandle_MalformedPayloadIsPermanent(t *testing.T) {
	h := NewEventHandler(&mockBookingRepository{}, &mockWaitlistRepository{}, testLogger())

	msg := kafka.Message{
		Key:     "s1",
		Value:   []byte("{not json"),
		Headers: map[string]string{kafka.HeaderEventType: events.TypeSessionFull},
	}

	err := h.Handle(context.Background(), msg)
	if err == nil {
		t.Fatal("expected decode error")
	}

	var kafkaErr *kafka.KafkaError
	if !errors.As(err, &kafkaErr) {
		t.Fatalf("expected KafkaError, got %T", err)
	}
	if kafkaErr.Type != kafka.ErrorTypePermanent {
		t.Errorf("expected permanent error, got %v", kafkaErr.Type)
	}
}

func TestHandle_TransientLookupFailure(t *testing.T) {
	waitlistRepo := &mockWaitlistRepository{
		findBySessionFunc: func(ctx context.Context, sessionID string) ([]*model.WaitlistEntry, error) {
			return nil, errors.New("connection reset")
		},
	}

	h := NewEventHandler(&mockBookingRepository{}, waitlistRepo, testLogger())

	msg := eventMessage(t, events.TypeSessionFull, events.SessionFull{SessionID: "s1"})

	err := h.Handle(context.Background(), msg)
	if err == nil {
		t.Fatal("expected lookup error")
	}

	var kafkaErr *kafka.KafkaError
	if !errors.As(err, &kafkaErr) {
		t.Fatalf("expected KafkaError, got %T", err)
	}
	if kafkaErr.Type != kafka.ErrorTypeTransient {
		t.Errorf("expected transient error, got %v", kafkaErr.Type)
	}
}

func TestHandle_UnknownEventTypeIgnored(t *testing.T) {
	h := NewEventHandler(&mockBookingRepository{}, &mockWaitlistRepository{}, testLogger())

	msg := kafka.Message{
		Key:     "s1",
		Value:   []byte("{}"),
		Headers: map[string]string{kafka.HeaderEventType: "session.retired"},
	}

	if err := h.Handle(context.Background(), msg); err != nil {
		t.Errorf("unexpected error for unknown event type: %v", err)
	}
}

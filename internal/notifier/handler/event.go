package handler

import (
	"context"

	"wakeline/internal/sessions/repository"
	"wakeline/pkg/events"
	"wakeline/pkg/kafka"
	"wakeline/pkg/logger"
)

// EventHandler consumes session lifecycle events and turns them into
// notification intents. Delivery channels (push, SMS) plug in behind the
// intent log; the handler's job is deciding who should hear about what.
type EventHandler struct {
	bookingRepo  repository.BookingRepository
	waitlistRepo repository.WaitlistRepository
	log          *logger.Logger
}

func NewEventHandler(
	bookingRepo repository.BookingRepository,
	waitlistRepo repository.WaitlistRepository,
	log *logger.Logger,
) *EventHandler {
	return &EventHandler{
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		log:          log,
	}
}

// Handle implements kafka.MessageHandler. Decode failures are permanent:
// replaying a malformed payload will never succeed, so it goes to the DLQ.
func (h *EventHandler) Handle(ctx context.Context, msg kafka.Message) error {
	switch msg.GetEventType() {
	case events.TypeSessionConfirmed:
		return h.handleSessionConfirmed(ctx, msg)
	case events.TypeSessionFull:
		return h.handleSessionFull(ctx, msg)
	case events.TypeRequestClaimed:
		return h.handleRequestClaimed(ctx, msg)
	case events.TypeSeatBooked, events.TypeWaitlistJoined, events.TypeRequestOpened:
		// Informational events carry no fan-out today.
		h.log.Debug("Event acknowledged without fan-out", "event_type", msg.GetEventType(), "key", msg.Key)
		return nil
	default:
		h.log.Warn("Unknown event type, skipping", "event_type", msg.GetEventType(), "key", msg.Key)
		return nil
	}
}

func (h *EventHandler) handleSessionConfirmed(ctx context.Context, msg kafka.Message) error {
	var payload events.SessionConfirmed
	if err := msg.DecodeValue(&payload); err != nil {
		return kafka.NewPermanentError("failed to decode session confirmed event", err)
	}

	bookings, err := h.bookingRepo.FindBySession(ctx, payload.SessionID)
	if err != nil {
		return kafka.NewTransientError("failed to resolve session bookings", err)
	}

	for _, booking := range bookings {
		h.log.Info("Notification intent: session confirmed",
			"rider_id", booking.RiderID,
			"session_id", payload.SessionID,
			"booked_seats", payload.BookedSeats,
			"min_riders", payload.MinRiders,
		)
	}

	return nil
}

func (h *EventHandler) handleSessionFull(ctx context.Context, msg kafka.Message) error {
	var payload events.SessionFull
	if err := msg.DecodeValue(&payload); err != nil {
		return kafka.NewPermanentError("failed to decode session full event", err)
	}

	entries, err := h.waitlistRepo.FindBySession(ctx, payload.SessionID)
	if err != nil {
		return kafka.NewTransientError("failed to resolve waitlist", err)
	}

	for position, entry := range entries {
		h.log.Info("Notification intent: waitlist position update",
			"rider_id", entry.RiderID,
			"session_id", payload.SessionID,
			"position", position+1,
		)
	}

	return nil
}

func (h *EventHandler) handleRequestClaimed(ctx context.Context, msg kafka.Message) error {
	var payload events.RequestClaimed
	if err := msg.DecodeValue(&payload); err != nil {
		return kafka.NewPermanentError("failed to decode request claimed event", err)
	}

	bookings, err := h.bookingRepo.FindBySession(ctx, payload.SessionID)
	if err != nil {
		return kafka.NewTransientError("failed to resolve request backers", err)
	}

	for _, booking := range bookings {
		h.log.Info("Notification intent: trip request claimed",
			"rider_id", booking.RiderID,
			"session_id", payload.SessionID,
			"operator_name", payload.OperatorName,
		)
	}

	return nil
}

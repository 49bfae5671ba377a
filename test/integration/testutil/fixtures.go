package testutil

import (
	"time"

	"wakeline/pkg/model"
)

type SessionBuilder struct {
	s model.Session
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		s: model.Session{
			ID:                 "test-session",
			Title:              "Morning Wake Session",
			Type:               model.ActivityWakeboarding,
			Location:           "Dubai Marina",
			MeetingPoint:       "Pier 7, Dock B",
			StartTime:          time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond),
			DurationMinutes:    90,
			PricePerSeat:       200,
			Currency:           "AED",
			TotalSeats:         6,
			BookedSeats:        0,
			MinRidersToConfirm: 3,
			SkillLevel:         model.SkillMixed,
			Weather:            model.WeatherSunny,
			Captain: model.Captain{
				Name:      "Test Captain",
				Rating:    4.8,
				Verified:  true,
				Languages: []string{"English"},
			},
			OperatorName: "Test Operator",
			CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
		},
	}
}

func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.s.ID = id
	return b
}

func (b *SessionBuilder) WithTitle(title string) *SessionBuilder {
	b.s.Title = title
	return b
}

func (b *SessionBuilder) WithStartTime(start time.Time) *SessionBuilder {
	b.s.StartTime = start
	return b
}

func (b *SessionBuilder) WithSeats(booked, total, minRiders int) *SessionBuilder {
	b.s.BookedSeats = booked
	b.s.TotalSeats = total
	b.s.MinRidersToConfirm = minRiders
	return b
}

func (b *SessionBuilder) WithLanguages(languages ...string) *SessionBuilder {
	b.s.Captain.Languages = languages
	return b
}

func (b *SessionBuilder) AsOpenRequest() *SessionBuilder {
	b.s.IsRequested = true
	b.s.RequestStatus = model.RequestOpen
	b.s.OperatorName = ""
	return b
}

func (b *SessionBuilder) Build() model.Session {
	return b.s
}

func (b *SessionBuilder) BuildPtr() *model.Session {
	s := b.s
	return &s
}

func ValidOperator(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"category":    "wakeboarding",
		"city":        "dubai",
		"location":    "Dubai Marina",
		"rating":      4.8,
		"reviews":     10,
		"sessions":    5,
		"pricing":     "AED 500 / hour",
		"description": "Integration test operator",
	}
}

package model

import (
	"strings"
	"time"
)

type ActivityType string

const (
	ActivityWakeboarding ActivityType = "WAKEBOARDING"
	ActivityWakesurfing  ActivityType = "WAKESURFING"
	ActivityFishing      ActivityType = "FISHING"
	ActivityCruising     ActivityType = "CRUISING"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillMixed        SkillLevel = "Mixed"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillPro          SkillLevel = "Pro"
)

// WeatherStatus is informational only; it never gates a state transition.
type WeatherStatus string

const (
	WeatherSunny  WeatherStatus = "Sunny"
	WeatherCloudy WeatherStatus = "Cloudy"
	WeatherWindy  WeatherStatus = "Windy"
	WeatherRisky  WeatherStatus = "Risky"
)

type RequestStatus string

const (
	RequestOpen    RequestStatus = "OPEN"
	RequestClaimed RequestStatus = "CLAIMED"
)

// FillState is derived from seat counts on every read, never stored.
type FillState string

const (
	FillBelowMinimum FillState = "BELOW_MINIMUM"
	FillConfirmed    FillState = "CONFIRMED"
	FillFull         FillState = "FULL"
)

type Captain struct {
	Name      string   `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Rating    float64  `json:"rating" bson:"rating" validate:"min=0,max=5"`
	Verified  bool     `json:"verified" bson:"verified"`
	Image     string   `json:"image,omitempty" bson:"image,omitempty" validate:"omitempty,url"`
	Languages []string `json:"languages" bson:"languages" validate:"required,min=1,dive,min=2,max=40"`
}

// Session is the unit of bookable capacity: a time-boxed boat activity slot
// with a fixed number of seats and a minimum-rider threshold that decides
// whether the trip is guaranteed to run.
type Session struct {
	ID              string       `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string       `json:"title" bson:"title" validate:"required,min=2,max=120"`
	Type            ActivityType `json:"type" bson:"type" validate:"required,oneof=WAKEBOARDING WAKESURFING FISHING CRUISING"`
	Location        string       `json:"location" bson:"location" validate:"required,min=2,max=120"`
	MeetingPoint    string       `json:"meeting_point" bson:"meeting_point" validate:"required,min=2,max=200"`
	Coordinates     []float64    `json:"coordinates,omitempty" bson:"coordinates,omitempty" validate:"omitempty,len=2"`
	StartTime       time.Time    `json:"start_time" bson:"start_time" validate:"required"`
	DurationMinutes int          `json:"duration_minutes" bson:"duration_minutes" validate:"required,min=15,max=480"`

	PricePerSeat  float64 `json:"price_per_seat" bson:"price_per_seat" validate:"min=0"`
	OriginalPrice float64 `json:"original_price,omitempty" bson:"original_price,omitempty" validate:"omitempty,min=0"`
	Currency      string  `json:"currency" bson:"currency" validate:"required,len=3,uppercase"`

	TotalSeats         int `json:"total_seats" bson:"total_seats" validate:"required,min=1,max=50"`
	BookedSeats        int `json:"booked_seats" bson:"booked_seats" validate:"min=0,ltefield=TotalSeats"`
	MinRidersToConfirm int `json:"min_riders_to_confirm" bson:"min_riders_to_confirm" validate:"required,min=1,ltefield=TotalSeats"`

	SkillLevel SkillLevel    `json:"skill_level" bson:"skill_level" validate:"required,oneof=Beginner Intermediate Mixed Advanced Pro"`
	Weather    WeatherStatus `json:"weather" bson:"weather" validate:"omitempty,oneof=Sunny Cloudy Windy Risky"`
	Captain    Captain       `json:"captain" bson:"captain" validate:"required"`

	// OperatorName holds the placeholder "Crowdsourced Request" until an
	// operator claims, so request sessions surface in free-text search.
	OperatorName string `json:"operator_name,omitempty" bson:"operator_name,omitempty" validate:"omitempty,max=120"`
	Image        string `json:"image,omitempty" bson:"image,omitempty" validate:"omitempty,url"`

	IsRequested bool `json:"is_requested" bson:"is_requested"`
	// RequestStatus is set only for sessions that were ever a crowdsourced
	// request; it stays CLAIMED after the claim as lifecycle history.
	RequestStatus RequestStatus `json:"request_status,omitempty" bson:"request_status,omitempty" validate:"omitempty,oneof=OPEN CLAIMED"`

	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// FillState classifies a session by its seat counts. The classification is
// monotonically non-decreasing as BookedSeats grows; there is no cancellation
// path that could regress it.
func (s *Session) FillState() FillState {
	switch {
	case s.BookedSeats >= s.TotalSeats:
		return FillFull
	case s.BookedSeats >= s.MinRidersToConfirm:
		return FillConfirmed
	default:
		return FillBelowMinimum
	}
}

// Confirmed reports whether the minimum-rider threshold has been reached,
// i.e. the trip is guaranteed to run.
func (s *Session) Confirmed() bool {
	return s.BookedSeats >= s.MinRidersToConfirm
}

func (s *Session) Full() bool {
	return s.BookedSeats >= s.TotalSeats
}

func (s *Session) SeatsRemaining() int {
	if remaining := s.TotalSeats - s.BookedSeats; remaining > 0 {
		return remaining
	}
	return 0
}

// OpenRequest reports whether the session is a crowdsourced request still
// waiting for an operator to commit capacity.
func (s *Session) OpenRequest() bool {
	return s.IsRequested && s.RequestStatus == RequestOpen
}

// ClassifyActivity maps free-text activity input onto an activity type. Any
// text containing "wake" counts as wakeboarding, everything else as fishing.
func ClassifyActivity(activity string) ActivityType {
	if strings.Contains(strings.ToUpper(activity), "WAKE") {
		return ActivityWakeboarding
	}
	return ActivityFishing
}

package model

import "time"

type OperatorCategory string

const (
	CategoryWakeboarding OperatorCategory = "wakeboarding"
	CategoryFishing      OperatorCategory = "fishing"
)

type OperatorCity string

const (
	CityDubai    OperatorCity = "dubai"
	CityAbuDhabi OperatorCity = "abudhabi"
)

// Operator is a fleet partner. Operators are created by an administrative
// action and never deleted.
type Operator struct {
	ID          string           `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string           `json:"name" bson:"name" validate:"required,min=2,max=120"`
	Category    OperatorCategory `json:"category" bson:"category" validate:"required,oneof=wakeboarding fishing"`
	City        OperatorCity     `json:"city" bson:"city" validate:"required,oneof=dubai abudhabi"`
	Location    string           `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,max=120"`
	Rating      float64          `json:"rating" bson:"rating" validate:"min=0,max=5"`
	Reviews     int              `json:"reviews" bson:"reviews" validate:"min=0"`
	Sessions    int              `json:"sessions" bson:"sessions" validate:"min=0"`
	Emoji       string           `json:"emoji,omitempty" bson:"emoji,omitempty" validate:"omitempty,max=8"`
	Pricing     string           `json:"pricing,omitempty" bson:"pricing,omitempty" validate:"omitempty,max=120"`
	Description string           `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=500"`
	CreatedAt   time.Time        `json:"created_at" bson:"created_at" validate:"omitempty"`
}

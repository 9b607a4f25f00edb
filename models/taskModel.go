package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is one logged study session. Date is the user-entered calendar day
// (YYYY-MM-DD) and is authoritative for day/week/month/year bucketing;
// CreatedAt is server-assigned and only consulted for hour-of-day analysis.
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Date      string             `bson:"date" json:"date" validate:"required"`
	Tasks     []string           `bson:"tasks" json:"tasks" validate:"required,min=1"` // description lines, insertion order kept
	Duration  string             `bson:"duration" json:"duration" validate:"required"` // HH:MM:SS
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

package models

import "time"

// Notification is an admin-facing feed entry created for every new booking.
type Notification struct {
	ID        int64     `json:"id" bson:"id"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Read      bool      `json:"read" bson:"read"`
}

package models

import "time"

// Booking represents one reserved table slot.
type Booking struct {
	ID        string    `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	Date      string    `bson:"date" json:"date"`             // Booking date in "YYYY-MM-DD" format
	Time      string    `bson:"time" json:"time"`             // Slot label, e.g. "10:00"
	Guests    int       `bson:"guests" json:"guests"`         // Party size
	Name      string    `bson:"name" json:"name"`             // Contact name
	Contact   string    `bson:"contact" json:"contact"`       // Phone or email, free text
	CreatedAt time.Time `bson:"created_at" json:"created_at"` // Timestamp when booking was created
}

// BookingInput is the client payload for creating a booking.
type BookingInput struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Guests  int    `json:"guests"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

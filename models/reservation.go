package models

import "time"

// Reservation is a booking of a room for a date range by a user. Billing reads
// reservations but never mutates them.
type Reservation struct {
	ID        string    `bson:"reservation_id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	HotelID   string    `bson:"hotel_id" json:"hotelId"`
	RoomID    string    `bson:"room_id" json:"roomId"`
	StartDate time.Time `bson:"start_date" json:"startDate"`
	ExitDate  time.Time `bson:"exit_date" json:"exitDate"`
	Amount    float64   `bson:"amount" json:"amount"` // Base stay amount billed by the invoice.
	Active    bool      `bson:"active" json:"active"`
}

package models

// Room is a bookable hotel room. Billing only reads its type and nightly price
// for receipt rendering.
type Room struct {
	ID          string  `bson:"room_id" json:"id"`
	HotelID     string  `bson:"hotel_id" json:"hotelId"`
	Type        string  `bson:"type" json:"type"`
	PricePerDay float64 `bson:"price_per_day" json:"pricePerDay"`
	Capacity    int     `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Active      bool    `bson:"active" json:"active"`
}

package models

import "time"

// HotelService is one entry of a hotel's service catalog: a service type and
// the unit price charged for it.
type HotelService struct {
	Type  string  `bson:"type" json:"type"`
	Price float64 `bson:"price" json:"price"`
}

// Hotel represents a hotel and its additional-service price list.
type Hotel struct {
	ID        string         `bson:"hotel_id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Address   string         `bson:"address" json:"address"`
	Telephone string         `bson:"telephone" json:"telephone"`
	Stars     int            `bson:"stars,omitempty" json:"stars,omitempty"`
	Services  []HotelService `bson:"services" json:"services"`
	Active    bool           `bson:"active" json:"active"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}

// ServiceByType looks up a catalog entry by exact service type match.
func (h *Hotel) ServiceByType(serviceType string) (HotelService, bool) {
	for _, s := range h.Services {
		if s.Type == serviceType {
			return s, true
		}
	}
	return HotelService{}, false
}

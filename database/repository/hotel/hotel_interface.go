package hotelRepo

import (
	"context"

	"hotelify/models"
)

// HotelRepository defines read access to hotels and their service catalogs.
type HotelRepository interface {
	// GetByID retrieves a hotel by its unique ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
}

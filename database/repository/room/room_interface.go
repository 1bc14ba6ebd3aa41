package roomRepo

import (
	"context"

	"hotelify/models"
)

// RoomRepository defines read access to rooms.
type RoomRepository interface {
	// GetByID retrieves a room by its unique ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Room, error)
}

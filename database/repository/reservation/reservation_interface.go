package reservationRepo

import (
	"context"

	"hotelify/models"
)

// ReservationRepository defines read access to reservations. Billing never
// mutates reservations.
type ReservationRepository interface {
	// GetByID retrieves a reservation by its unique ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
}

package userRepo

import (
	"context"

	"hotelify/models"
)

// UserRepository defines read access to users, used only for receipt
// personalization.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

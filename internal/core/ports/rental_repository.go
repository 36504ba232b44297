package ports

import (
	"context"
	"time"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

// RentalRepository defines the interface for rental (user-car) persistence.
type RentalRepository interface {
	// FindActiveByUser returns the user's rental whose end date is absent or
	// at/after now, or (nil, nil) when none exists.
	FindActiveByUser(ctx context.Context, userID string, now time.Time) (*domain.Rental, error)
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	// CarIDsRentedAt returns the ids of cars with a rental still in effect at
	// the given instant (rentEndedAt >= at).
	CarIDsRentedAt(ctx context.Context, at time.Time) ([]string, error)
}

package ports

import (
	"context"
	"time"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

// RentalService implements the booking flow and the conflict check that
// guards it.
type RentalService interface {
	// HasActiveRental reports whether the user currently holds a rental whose
	// end date is absent or not yet passed.
	HasActiveRental(ctx context.Context, userID string) (bool, error)
	// Book creates a one-day rental starting at rentStartedAt.
	Book(ctx context.Context, userID, carID string, rentStartedAt time.Time) (*domain.Rental, error)
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bcrental/car-rental-api/internal/api/metrics"
	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/ports"
)

// rentalDuration is the fixed booking window: every rental ends one day after
// it starts.
const rentalDuration = 24 * time.Hour

// RentalService implements the booking flow. The availability check and the
// create are two separate store operations; concurrent bookings for the same
// user can both pass the check before either commits (known limitation,
// inherited from the original API).
type RentalService struct {
	cars    ports.CarRepository
	rentals ports.RentalRepository
	log     zerolog.Logger
}

func NewRentalService(cars ports.CarRepository, rentals ports.RentalRepository, log zerolog.Logger) *RentalService {
	return &RentalService{cars: cars, rentals: rentals, log: log}
}

// HasActiveRental reports whether the user holds a rental whose end date is
// absent or not yet passed.
func (s *RentalService) HasActiveRental(ctx context.Context, userID string) (bool, error) {
	rental, err := s.rentals.FindActiveByUser(ctx, userID, time.Now().UTC())
	if err != nil {
		return false, err
	}
	return rental != nil, nil
}

// Book creates a one-day rental for the user on the given car. It fails with
// CarAlreadyRentedError when the user already holds an active rental.
func (s *RentalService) Book(ctx context.Context, userID, carID string, rentStartedAt time.Time) (*domain.Rental, error) {
	car, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.NewNotFoundError("Car not found!")
	}

	active, err := s.HasActiveRental(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active {
		metrics.RentalConflictsTotal.Inc()
		return nil, domain.NewCarAlreadyRentedError(car)
	}

	now := time.Now().UTC()
	endedAt := rentStartedAt.Add(rentalDuration)
	rental, err := s.rentals.Create(ctx, &domain.Rental{
		UserID:        userID,
		CarID:         carID,
		RentStartedAt: rentStartedAt,
		RentEndedAt:   &endedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RentalsCreatedTotal.Inc()
	s.log.Info().
		Str("rental_id", rental.ID).
		Str("user_id", userID).
		Str("car_id", carID).
		Time("rent_started_at", rentStartedAt).
		Msg("rental created")

	return rental, nil
}

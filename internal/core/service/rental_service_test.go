package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

func TestRentalService_Book_Success(t *testing.T) {
	cars := &stubCarRepo{cars: []domain.Car{carFixture("c1", "Small")}}
	rentals := &stubRentalRepo{}
	svc := NewRentalService(cars, rentals, zerolog.Nop())

	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	rental, err := svc.Book(context.Background(), "u1", "c1", start)
	if err != nil {
		t.Fatalf("book failed: %v", err)
	}
	if rental.UserID != "u1" || rental.CarID != "c1" {
		t.Fatalf("unexpected rental: %+v", rental)
	}
	if rental.RentEndedAt == nil {
		t.Fatalf("expected rentEndedAt to be set")
	}
	if want := start.Add(24 * time.Hour); !rental.RentEndedAt.Equal(want) {
		t.Fatalf("expected rentEndedAt %v, got %v", want, *rental.RentEndedAt)
	}
}

func TestRentalService_Book_CarNotFound(t *testing.T) {
	svc := NewRentalService(&stubCarRepo{}, &stubRentalRepo{}, zerolog.Nop())

	_, err := svc.Book(context.Background(), "u1", "ghost", time.Now())
	if !domain.IsError(err, domain.NameNotFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRentalService_Book_ActiveRentalConflict(t *testing.T) {
	cars := &stubCarRepo{cars: []domain.Car{carFixture("c1", "Small")}}
	future := time.Now().Add(12 * time.Hour)
	rentals := &stubRentalRepo{rentals: []domain.Rental{
		{ID: "r0", UserID: "u1", CarID: "c1", RentEndedAt: &future},
	}}
	svc := NewRentalService(cars, rentals, zerolog.Nop())

	rentals.createCalled = false
	_, err := svc.Book(context.Background(), "u1", "c1", time.Now())
	apiErr, ok := err.(*domain.Error)
	if !ok || apiErr.Name != domain.NameCarAlreadyRented {
		t.Fatalf("expected CarAlreadyRentedError, got %v", err)
	}
	if apiErr.Status() != 422 {
		t.Fatalf("expected status 422, got %d", apiErr.Status())
	}
	if rentals.createCalled {
		t.Fatalf("create must not be called on conflict")
	}
}

func TestRentalService_Book_ExpiredRentalDoesNotConflict(t *testing.T) {
	cars := &stubCarRepo{cars: []domain.Car{carFixture("c1", "Small")}}
	past := time.Now().Add(-48 * time.Hour)
	rentals := &stubRentalRepo{rentals: []domain.Rental{
		{ID: "r0", UserID: "u1", CarID: "c1", RentEndedAt: &past},
	}}
	svc := NewRentalService(cars, rentals, zerolog.Nop())

	if _, err := svc.Book(context.Background(), "u1", "c1", time.Now()); err != nil {
		t.Fatalf("expired rental must not block a new booking: %v", err)
	}
}

func TestRentalService_HasActiveRental(t *testing.T) {
	open := domain.Rental{ID: "r1", UserID: "u1", CarID: "c1"} // nil end date means active
	rentals := &stubRentalRepo{rentals: []domain.Rental{open}}
	svc := NewRentalService(&stubCarRepo{}, rentals, zerolog.Nop())

	active, err := svc.HasActiveRental(context.Background(), "u1")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !active {
		t.Fatalf("open-ended rental must count as active")
	}

	active, err = svc.HasActiveRental(context.Background(), "u2")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if active {
		t.Fatalf("user without rentals must not be active")
	}
}

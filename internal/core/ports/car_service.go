package ports

import (
	"context"
	"time"

	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/pagination"
)

// ListCarsInput carries the query parameters of the car listing endpoint.
type ListCarsInput struct {
	Size string
	// AvailableAt, when set, excludes cars still rented at that instant.
	AvailableAt *time.Time
	Page        int
	PageSize    int
}

// ListCarsResult pairs a page of cars with its pagination meta.
type ListCarsResult struct {
	Cars       []domain.Car
	Pagination pagination.Pagination
}

// CarInput carries the mutable car fields for create and update.
type CarInput struct {
	Name              string
	Price             int64
	Size              string
	Image             string
	IsCurrentlyRented bool
}

// CarService defines use-case operations on the car inventory.
type CarService interface {
	List(ctx context.Context, input ListCarsInput) (*ListCarsResult, error)
	Get(ctx context.Context, id string) (*domain.Car, error)
	Create(ctx context.Context, input CarInput) (*domain.Car, error)
	Update(ctx context.Context, id string, input CarInput) (*domain.Car, error)
	Delete(ctx context.Context, id string) error
}

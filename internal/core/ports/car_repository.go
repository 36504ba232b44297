package ports

import (
	"context"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

// CarFilter narrows List and Count queries.
type CarFilter struct {
	Size string
	// ExcludeIDs removes cars from the result set; used to drop cars whose
	// rental conflicts with a requested availability window.
	ExcludeIDs []string
	Limit      int
	Offset     int
}

// CarRepository defines the interface for car persistence. FindByID returns
// (nil, nil) when no car matches.
type CarRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context, filter CarFilter) ([]domain.Car, error)
	Count(ctx context.Context, filter CarFilter) (int64, error)
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bcrental/car-rental-api/internal/api/metrics"
	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/pagination"
	"github.com/bcrental/car-rental-api/internal/core/ports"
)

// CarCache abstracts the read-through cache for single-car lookups (Redis).
// Get returns (nil, nil) on a miss.
type CarCache interface {
	Get(ctx context.Context, id string) (*domain.Car, error)
	Set(ctx context.Context, car *domain.Car) error
	Invalidate(ctx context.Context, id string) error
}

// CarService implements CRUD and listing on the car inventory.
type CarService struct {
	cars    ports.CarRepository
	rentals ports.RentalRepository
	cache   CarCache
	log     zerolog.Logger
}

func NewCarService(
	cars ports.CarRepository,
	rentals ports.RentalRepository,
	cache CarCache,
	log zerolog.Logger,
) *CarService {
	return &CarService{cars: cars, rentals: rentals, cache: cache, log: log}
}

// List returns a page of cars with pagination meta. When AvailableAt is set,
// cars still rented at that instant are excluded from both the page and the
// count.
func (s *CarService) List(ctx context.Context, input ports.ListCarsInput) (*ports.ListCarsResult, error) {
	page, pageSize := pagination.Normalize(input.Page, input.PageSize)

	filter := ports.CarFilter{
		Size:   input.Size,
		Limit:  pageSize,
		Offset: pagination.Offset(page, pageSize),
	}

	if input.AvailableAt != nil {
		rented, err := s.rentals.CarIDsRentedAt(ctx, *input.AvailableAt)
		if err != nil {
			return nil, err
		}
		filter.ExcludeIDs = rented
	}

	cars, err := s.cars.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.cars.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListCarsResult{
		Cars:       cars,
		Pagination: pagination.Build(page, pageSize, count),
	}, nil
}

// Get fetches a car through the cache. Cache failures are logged and fall
// back to the repository.
func (s *CarService) Get(ctx context.Context, id string) (*domain.Car, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("car_id", id).Msg("car cache lookup failed")
	} else if cached != nil {
		metrics.CarCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.CarCacheTotal.WithLabelValues("miss").Inc()
	}

	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.NewNotFoundError("Car not found!")
	}

	if err := s.cache.Set(ctx, car); err != nil {
		s.log.Warn().Err(err).Str("car_id", id).Msg("car cache fill failed")
	}
	return car, nil
}

func (s *CarService) Create(ctx context.Context, input ports.CarInput) (*domain.Car, error) {
	now := time.Now().UTC()
	car, err := s.cars.Create(ctx, &domain.Car{
		Name:              input.Name,
		Price:             input.Price,
		Size:              input.Size,
		Image:             input.Image,
		IsCurrentlyRented: input.IsCurrentlyRented,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("car_id", car.ID).Str("name", car.Name).Msg("car created")
	return car, nil
}

func (s *CarService) Update(ctx context.Context, id string, input ports.CarInput) (*domain.Car, error) {
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.NewNotFoundError("Car not found!")
	}

	car.Name = input.Name
	car.Price = input.Price
	car.Size = input.Size
	car.Image = input.Image
	car.IsCurrentlyRented = input.IsCurrentlyRented
	car.UpdatedAt = time.Now().UTC()

	if err := s.cars.Update(ctx, car); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("car_id", id).Msg("car cache invalidation failed")
	}
	return car, nil
}

func (s *CarService) Delete(ctx context.Context, id string) error {
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if car == nil {
		return domain.NewNotFoundError("Car not found!")
	}

	if err := s.cars.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("car_id", id).Msg("car cache invalidation failed")
	}

	s.log.Info().Str("car_id", id).Msg("car deleted")
	return nil
}

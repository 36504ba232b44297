package handler

import (
	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/ports"
)

// --- Request → Service input ---

func toCarInput(req carRequest) ports.CarInput {
	return ports.CarInput{
		Name:              req.Name,
		Price:             req.Price,
		Size:              req.Size,
		Image:             req.Image,
		IsCurrentlyRented: req.IsCurrentlyRented,
	}
}

// --- Domain → HTTP response ---

func toCarResponse(car *domain.Car) carResponse {
	return carResponse{
		ID:                car.ID,
		Name:              car.Name,
		Price:             car.Price,
		Size:              car.Size,
		Image:             car.Image,
		IsCurrentlyRented: car.IsCurrentlyRented,
		CreatedAt:         car.CreatedAt.UTC(),
		UpdatedAt:         car.UpdatedAt.UTC(),
	}
}

func toRentalResponse(rental *domain.Rental) rentalResponse {
	return rentalResponse{
		ID:            rental.ID,
		UserID:        rental.UserID,
		CarID:         rental.CarID,
		RentStartedAt: rental.RentStartedAt.UTC(),
		RentEndedAt:   rental.RentEndedAt,
		CreatedAt:     rental.CreatedAt.UTC(),
		UpdatedAt:     rental.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListCarsResult) listCarsResponse {
	cars := make([]carResponse, len(r.Cars))
	for i := range r.Cars {
		cars[i] = toCarResponse(&r.Cars[i])
	}
	return listCarsResponse{
		Cars: cars,
		Meta: metaResponse{Pagination: r.Pagination},
	}
}

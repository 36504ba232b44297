package handler

import (
	"time"

	"github.com/bcrental/car-rental-api/internal/core/pagination"
)

type carRequest struct {
	Name              string `json:"name"  validate:"required"`
	Price             int64  `json:"price" validate:"required,gt=0"`
	Size              string `json:"size"  validate:"required"`
	Image             string `json:"image" validate:"required"`
	IsCurrentlyRented bool   `json:"isCurrentlyRented"`
}

type rentCarRequest struct {
	RentStartedAt time.Time `json:"rentStartedAt" validate:"required"`
	// RentEndedAt is accepted for wire compatibility but ignored; the server
	// fixes the rental duration at one day.
	RentEndedAt *time.Time `json:"rentEndedAt"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type carResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Price             int64     `json:"price"`
	Size              string    `json:"size"`
	Image             string    `json:"image"`
	IsCurrentlyRented bool      `json:"isCurrentlyRented"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type rentalResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	CarID         string     `json:"carId"`
	RentStartedAt time.Time  `json:"rentStartedAt"`
	RentEndedAt   *time.Time `json:"rentEndedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type metaResponse struct {
	Pagination pagination.Pagination `json:"pagination"`
}

type listCarsResponse struct {
	Cars []carResponse `json:"cars"`
	Meta metaResponse  `json:"meta"`
}

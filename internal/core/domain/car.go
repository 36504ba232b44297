package domain

import "time"

// Car is a rentable vehicle in the inventory.
type Car struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Price             int64     `json:"price"`
	Size              string    `json:"size"`
	Image             string    `json:"image"`
	IsCurrentlyRented bool      `json:"isCurrentlyRented"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Rental links a user to a car for a time window. A nil RentEndedAt, or one in
// the future, marks the rental as active.
type Rental struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	CarID         string     `json:"carId"`
	RentStartedAt time.Time  `json:"rentStartedAt"`
	RentEndedAt   *time.Time `json:"rentEndedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Active reports whether the rental is still in effect at the given instant.
func (r *Rental) Active(at time.Time) bool {
	return r.RentEndedAt == nil || !r.RentEndedAt.Before(at)
}

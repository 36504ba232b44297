package domain

import "time"

const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// User models a registered account. The email is unique across the system and
// immutable after registration.
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	EncryptedPassword string    `json:"-"`
	Image             string    `json:"image,omitempty"`
	RoleID            string    `json:"roleId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Role is static reference data looked up by id or name.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

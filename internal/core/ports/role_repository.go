package ports

import (
	"context"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

// RoleRepository looks up static role reference data. Lookups return
// (nil, nil) when no role matches.
type RoleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	// Seed ensures the given role names exist, creating missing ones.
	Seed(ctx context.Context, names ...string) error
}

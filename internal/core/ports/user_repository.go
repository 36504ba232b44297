package ports

import (
	"context"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Lookups return
// (nil, nil) when no user matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

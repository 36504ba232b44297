package ports

import "context"

// AccountService implements the registration and login flows. Both return a
// signed access token embedding the user's identity and role.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

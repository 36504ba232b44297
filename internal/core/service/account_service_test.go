package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bcrental/car-rental-api/internal/auth"
	"github.com/bcrental/car-rental-api/internal/core/domain"
)

type stubUserRepo struct {
	users        map[string]*domain.User // keyed by email
	createCalled bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.createCalled = true
	clone := *user
	clone.ID = "user_" + user.Email
	r.users[user.Email] = &clone
	out := clone
	return &out, nil
}

type stubRoleRepo struct {
	roles []domain.Role
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			clone := role
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			clone := role
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubRoleRepo) Seed(_ context.Context, names ...string) error {
	for _, name := range names {
		r.roles = append(r.roles, domain.Role{ID: "role_" + name, Name: name})
	}
	return nil
}

func newAccountFixture() (*AccountService, *stubUserRepo, *auth.Codec) {
	users := newStubUserRepo()
	roles := &stubRoleRepo{roles: []domain.Role{
		{ID: "role_customer", Name: domain.RoleCustomer},
		{ID: "role_admin", Name: domain.RoleAdmin},
	}}
	codec := auth.NewCodec("test-secret")
	svc := NewAccountService(users, roles, codec, domain.RoleCustomer, zerolog.Nop())
	return svc, users, codec
}

func TestAccountService_Register_Success(t *testing.T) {
	svc, users, codec := newAccountFixture()

	token, err := svc.Register(context.Background(), "falah", "falah@example.com", "falah123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("returned token does not decode: %v", err)
	}
	if claims.Email != "falah@example.com" || claims.Name != "falah" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Role.Name != domain.RoleCustomer {
		t.Fatalf("expected default role %s, got %s", domain.RoleCustomer, claims.Role.Name)
	}

	stored := users.users["falah@example.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.EncryptedPassword == "falah123" {
		t.Fatalf("expected password to be hashed")
	}
	if !auth.VerifyPassword("falah123", stored.EncryptedPassword) {
		t.Fatalf("stored hash does not verify the password")
	}
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	svc, users, _ := newAccountFixture()
	users.users["taken@example.com"] = &domain.User{ID: "u1", Email: "taken@example.com"}
	users.createCalled = false

	_, err := svc.Register(context.Background(), "dup", "taken@example.com", "pass123")
	apiErr, ok := err.(*domain.Error)
	if !ok || apiErr.Name != domain.NameEmailAlreadyTaken {
		t.Fatalf("expected EmailAlreadyTakenError, got %v", err)
	}
	if apiErr.Status() != 422 {
		t.Fatalf("expected status 422, got %d", apiErr.Status())
	}
	if users.createCalled {
		t.Fatalf("create must not be called for a taken email")
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	svc, _, codec := newAccountFixture()

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Email != "carol@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newAccountFixture()

	_, _ = svc.Register(context.Background(), "dave", "dave@example.com", "goodpass")

	_, err := svc.Login(context.Background(), "dave@example.com", "badpass")
	if !domain.IsError(err, domain.NameWrongPassword) {
		t.Fatalf("expected WrongPasswordError, got %v", err)
	}
	if err.(*domain.Error).Status() != 401 {
		t.Fatalf("expected status 401, got %d", err.(*domain.Error).Status())
	}
}

func TestAccountService_Login_EmailNotRegistered(t *testing.T) {
	svc, _, _ := newAccountFixture()

	_, err := svc.Login(context.Background(), "ghost@example.com", "pass")
	if !domain.IsError(err, domain.NameEmailNotRegistered) {
		t.Fatalf("expected EmailNotRegisteredError, got %v", err)
	}
	if err.(*domain.Error).Status() != 404 {
		t.Fatalf("expected status 404, got %d", err.(*domain.Error).Status())
	}
}

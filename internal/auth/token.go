package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

// RoleClaim is the role object embedded in the token payload.
type RoleClaim struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Claims is the session token payload: user identity plus role, exactly the
// wire shape {id, name, email, image, role:{id,name}, iat}.
type Claims struct {
	UserID string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Image  string    `json:"image"`
	Role   RoleClaim `json:"role"`
	jwt.RegisteredClaims
}

// ClaimsFromUser builds the token payload for a user and its resolved role.
func ClaimsFromUser(user *domain.User, role *domain.Role) Claims {
	return Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Image:  user.Image,
		Role:   RoleClaim{ID: role.ID, Name: role.Name},
	}
}

// Codec signs and verifies session tokens with a process-wide secret. The
// secret is injected at construction so tests can isolate it.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes the claims with an issued-at timestamp and signs them
// with HS256. Tokens carry no expiry; sessions live until the secret rotates.
func (c *Codec) Encode(claims Claims) (string, error) {
	claims.IssuedAt = jwt.NewNumericDate(time.Now())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the signature and returns the embedded claims. Any failure
// (tampering, truncation, malformed structure, wrong algorithm) yields an
// InvalidTokenError.
func (c *Codec) Decode(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, domain.NewInvalidTokenError(err.Error())
	}
	if !parsed.Valid {
		return nil, domain.NewInvalidTokenError("")
	}
	return claims, nil
}

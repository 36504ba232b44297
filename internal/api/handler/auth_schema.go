package handler

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// accessTokenResponse is returned by both register and login.
type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type roleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// whoAmIResponse echoes the authenticated token claims.
type whoAmIResponse struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Image string       `json:"image"`
	Role  roleResponse `json:"role"`
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bcrental/car-rental-api/internal/api/middleware"
	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/ports"
)

// AuthHandler handles registration, login, and whoami.
type AuthHandler struct {
	accounts ports.AccountService
}

func NewAuthHandler(accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register creates a new account and returns its access token.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  accessTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.accounts.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, accessTokenResponse{AccessToken: token})
}

// Login authenticates credentials and returns an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      201   {object}  accessTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, accessTokenResponse{AccessToken: token})
}

// WhoAmI returns the authenticated user's token claims.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  whoAmIResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/whoami [get]
func (h *AuthHandler) WhoAmI(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return domain.NewInvalidTokenError("missing authentication claims")
	}

	return c.JSON(http.StatusOK, whoAmIResponse{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Image: claims.Image,
		Role:  roleResponse{ID: claims.Role.ID, Name: claims.Role.Name},
	})
}

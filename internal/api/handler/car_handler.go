package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bcrental/car-rental-api/internal/api/middleware"
	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/ports"
)

// CarHandler handles car CRUD and the rental sub-resource.
type CarHandler struct {
	cars    ports.CarService
	rentals ports.RentalService
}

func NewCarHandler(cars ports.CarService, rentals ports.RentalService) *CarHandler {
	return &CarHandler{cars: cars, rentals: rentals}
}

// List handles GET /v1/cars.
//
// @Summary      List cars
// @Tags         cars
// @Produce      json
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        pageSize     query     int     false  "Page size (default 10)"
// @Param        size         query     string  false  "Car size filter"
// @Param        availableAt  query     string  false  "RFC3339 instant; only cars available then"
// @Success      200          {object}  listCarsResponse
// @Failure      400          {object}  errorResponse
// @Router       /v1/cars [get]
func (h *CarHandler) List(c echo.Context) error {
	input, err := listInputFromQuery(c)
	if err != nil {
		return err
	}

	result, err := h.cars.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /v1/cars/:id.
//
// @Summary      Get a car by id
// @Tags         cars
// @Produce      json
// @Param        id   path      string  true  "Car id"
// @Success      200  {object}  carResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/cars/{id} [get]
func (h *CarHandler) Get(c echo.Context) error {
	car, err := h.cars.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCarResponse(car))
}

// Create handles POST /v1/cars.
//
// @Summary      Create a car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      carRequest  true  "Car details"
// @Success      201   {object}  carResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/cars [post]
func (h *CarHandler) Create(c echo.Context) error {
	var req carRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.cars.Create(c.Request().Context(), toCarInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCarResponse(car))
}

// Update handles PUT /v1/cars/:id.
//
// @Summary      Update a car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Car id"
// @Param        body  body      carRequest  true  "Car details"
// @Success      200   {object}  carResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cars/{id} [put]
func (h *CarHandler) Update(c echo.Context) error {
	var req carRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.cars.Update(c.Request().Context(), c.Param("id"), toCarInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCarResponse(car))
}

// Delete handles DELETE /v1/cars/:id.
//
// @Summary      Delete a car
// @Tags         cars
// @Security     BearerAuth
// @Param        id  path  string  true  "Car id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/cars/{id} [delete]
func (h *CarHandler) Delete(c echo.Context) error {
	if err := h.cars.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Rent handles POST /v1/cars/:id/rent.
//
// @Summary      Rent a car for one day
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Car id"
// @Param        body  body      rentCarRequest  true  "Rental start"
// @Success      201   {object}  rentalResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/cars/{id}/rent [post]
func (h *CarHandler) Rent(c echo.Context) error {
	var req rentCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims := middleware.CurrentUser(c)
	if claims == nil {
		return domain.NewInvalidTokenError("missing authentication claims")
	}

	rental, err := h.rentals.Book(c.Request().Context(), claims.UserID, c.Param("id"), req.RentStartedAt)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toRentalResponse(rental))
}

// listInputFromQuery parses the listing query parameters, applying the
// page/pageSize defaults.
func listInputFromQuery(c echo.Context) (ports.ListCarsInput, error) {
	input := ports.ListCarsInput{Size: c.QueryParam("size")}

	var err error
	if input.Page, err = intQueryParam(c, "page"); err != nil {
		return input, err
	}
	if input.PageSize, err = intQueryParam(c, "pageSize"); err != nil {
		return input, err
	}

	if raw := c.QueryParam("availableAt"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "availableAt must be an RFC3339 timestamp")
		}
		input.AvailableAt = &at
	}

	return input, nil
}

func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return v, nil
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bcrental/car-rental-api/internal/auth"
	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/pagination"
	"github.com/bcrental/car-rental-api/internal/core/ports"
)

type stubCarService struct {
	listFn   func(ctx context.Context, input ports.ListCarsInput) (*ports.ListCarsResult, error)
	getFn    func(ctx context.Context, id string) (*domain.Car, error)
	createFn func(ctx context.Context, input ports.CarInput) (*domain.Car, error)
	updateFn func(ctx context.Context, id string, input ports.CarInput) (*domain.Car, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCarService) List(ctx context.Context, input ports.ListCarsInput) (*ports.ListCarsResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubCarService) Get(ctx context.Context, id string) (*domain.Car, error) {
	return s.getFn(ctx, id)
}

func (s *stubCarService) Create(ctx context.Context, input ports.CarInput) (*domain.Car, error) {
	return s.createFn(ctx, input)
}

func (s *stubCarService) Update(ctx context.Context, id string, input ports.CarInput) (*domain.Car, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCarService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubRentalService struct {
	bookFn func(ctx context.Context, userID, carID string, start time.Time) (*domain.Rental, error)
}

func (s *stubRentalService) HasActiveRental(context.Context, string) (bool, error) {
	return false, nil
}

func (s *stubRentalService) Book(ctx context.Context, userID, carID string, start time.Time) (*domain.Rental, error) {
	return s.bookFn(ctx, userID, carID, start)
}

func carContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCarHandler_List(t *testing.T) {
	cars := &stubCarService{
		listFn: func(_ context.Context, input ports.ListCarsInput) (*ports.ListCarsResult, error) {
			if input.Page != 2 || input.PageSize != 5 || input.Size != "Small" {
				t.Fatalf("query not parsed: %+v", input)
			}
			return &ports.ListCarsResult{
				Cars:       []domain.Car{{ID: "c1", Name: "Avanza", Price: 500000, Size: "Small"}},
				Pagination: pagination.Build(2, 5, 6),
			}, nil
		},
	}
	h := NewCarHandler(cars, &stubRentalService{})

	c, rec := carContext(http.MethodGet, "/v1/cars?page=2&pageSize=5&size=Small", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body listCarsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(body.Cars) != 1 || body.Cars[0].ID != "c1" {
		t.Fatalf("unexpected cars: %+v", body.Cars)
	}
	p := body.Meta.Pagination
	if p.Page != 2 || p.PageSize != 5 || p.Count != 6 || p.PageCount != 2 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
}

func TestCarHandler_List_AvailableAt(t *testing.T) {
	var got *time.Time
	cars := &stubCarService{
		listFn: func(_ context.Context, input ports.ListCarsInput) (*ports.ListCarsResult, error) {
			got = input.AvailableAt
			return &ports.ListCarsResult{Cars: []domain.Car{}}, nil
		},
	}
	h := NewCarHandler(cars, &stubRentalService{})

	c, _ := carContext(http.MethodGet, "/v1/cars?availableAt=2026-03-14T09%3A00%3A00Z", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("expected availableAt %v, got %v", want, got)
	}
}

func TestCarHandler_List_BadAvailableAt(t *testing.T) {
	h := NewCarHandler(&stubCarService{}, &stubRentalService{})

	c, _ := carContext(http.MethodGet, "/v1/cars?availableAt=tomorrow", "")
	err := h.List(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCarHandler_List_BadPage(t *testing.T) {
	h := NewCarHandler(&stubCarService{}, &stubRentalService{})

	c, _ := carContext(http.MethodGet, "/v1/cars?page=first", "")
	err := h.List(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCarHandler_Get_NotFoundPassesThrough(t *testing.T) {
	cars := &stubCarService{
		getFn: func(context.Context, string) (*domain.Car, error) {
			return nil, domain.NewNotFoundError("Car not found!")
		},
	}
	h := NewCarHandler(cars, &stubRentalService{})

	c, _ := carContext(http.MethodGet, "/v1/cars/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Get(c); !domain.IsError(err, domain.NameNotFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCarHandler_Create(t *testing.T) {
	cars := &stubCarService{
		createFn: func(_ context.Context, input ports.CarInput) (*domain.Car, error) {
			if input.Name != "Avanza" || input.Price != 500000 {
				t.Fatalf("payload not mapped: %+v", input)
			}
			return &domain.Car{ID: "c1", Name: input.Name, Price: input.Price, Size: input.Size, Image: input.Image}, nil
		},
	}
	h := NewCarHandler(cars, &stubRentalService{})

	c, rec := carContext(http.MethodPost, "/v1/cars",
		`{"name":"Avanza","price":500000,"size":"Small","image":"https://img.example.com/avanza.jpg"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"c1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCarHandler_Create_InvalidPrice(t *testing.T) {
	h := NewCarHandler(&stubCarService{}, &stubRentalService{})

	c, _ := carContext(http.MethodPost, "/v1/cars",
		`{"name":"Avanza","price":-1,"size":"Small","image":"https://img.example.com/avanza.jpg"}`)
	err := h.Create(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCarHandler_Delete(t *testing.T) {
	deleted := ""
	cars := &stubCarService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewCarHandler(cars, &stubRentalService{})

	c, rec := carContext(http.MethodDelete, "/v1/cars/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "c1" {
		t.Fatalf("expected delete of c1, got %q", deleted)
	}
}

func TestCarHandler_Rent(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	rentals := &stubRentalService{
		bookFn: func(_ context.Context, userID, carID string, at time.Time) (*domain.Rental, error) {
			if userID != "u1" || carID != "c1" || !at.Equal(start) {
				t.Fatalf("unexpected booking: %s %s %v", userID, carID, at)
			}
			return &domain.Rental{ID: "r1", UserID: userID, CarID: carID, RentStartedAt: at, RentEndedAt: &end}, nil
		},
	}
	h := NewCarHandler(&stubCarService{}, rentals)

	c, rec := carContext(http.MethodPost, "/v1/cars/c1/rent",
		`{"rentStartedAt":"2026-03-14T09:00:00Z"}`)
	c.SetParamNames("id")
	c.SetParamValues("c1")
	c.Set("user", &auth.Claims{UserID: "u1"})

	if err := h.Rent(c); err != nil {
		t.Fatalf("rent failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body rentalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.RentEndedAt == nil || !body.RentEndedAt.Equal(end) {
		t.Fatalf("expected rentEndedAt %v, got %v", end, body.RentEndedAt)
	}
}

func TestCarHandler_Rent_ConflictPassesThrough(t *testing.T) {
	rentals := &stubRentalService{
		bookFn: func(context.Context, string, string, time.Time) (*domain.Rental, error) {
			return nil, domain.NewCarAlreadyRentedError(&domain.Car{ID: "c1", Name: "Avanza"})
		},
	}
	h := NewCarHandler(&stubCarService{}, rentals)

	c, _ := carContext(http.MethodPost, "/v1/cars/c1/rent",
		`{"rentStartedAt":"2026-03-14T09:00:00Z"}`)
	c.SetParamNames("id")
	c.SetParamValues("c1")
	c.Set("user", &auth.Claims{UserID: "u1"})

	err := h.Rent(c)
	if !domain.IsError(err, domain.NameCarAlreadyRented) {
		t.Fatalf("expected CarAlreadyRentedError, got %v", err)
	}
}

func TestCarHandler_Rent_MissingClaims(t *testing.T) {
	h := NewCarHandler(&stubCarService{}, &stubRentalService{})

	c, _ := carContext(http.MethodPost, "/v1/cars/c1/rent",
		`{"rentStartedAt":"2026-03-14T09:00:00Z"}`)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Rent(c); !domain.IsError(err, domain.NameInvalidToken) {
		t.Fatalf("expected InvalidTokenError, got %v", err)
	}
}

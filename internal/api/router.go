package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bcrental/car-rental-api/internal/api/handler"
	"github.com/bcrental/car-rental-api/internal/api/middleware"
	"github.com/bcrental/car-rental-api/internal/auth"
	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/service"
	mongodb "github.com/bcrental/car-rental-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bcrental/car-rental-api/internal/infrastructure/db/redis"
)

// Config carries the router's runtime settings.
type Config struct {
	JWTSecret   string
	DefaultRole string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bcr"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	roles := mongodb.NewRoleRepository(db)
	cars := mongodb.NewCarRepository(db)
	rentals := mongodb.NewRentalRepository(db)
	carCache := redisdb.NewCarCache(rdb)

	codec := auth.NewCodec(cfg.JWTSecret)

	accountService := service.NewAccountService(users, roles, codec, cfg.DefaultRole, log)
	carService := service.NewCarService(cars, rentals, carCache, log)
	rentalService := service.NewRentalService(cars, rentals, log)

	rootHandler := handler.NewRootHandler()
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	authHandler := handler.NewAuthHandler(accountService)
	carHandler := handler.NewCarHandler(carService, rentalService)

	customerOnly := middleware.RequireRole(codec, roles, domain.RoleCustomer)
	adminOnly := middleware.RequireRole(codec, roles, domain.RoleAdmin)

	// --- Root, health, metrics (no auth required) ---
	e.GET("/", rootHandler.Index)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/auth/whoami", authHandler.WhoAmI, customerOnly)

	// --- Car routes ---
	e.GET("/v1/cars", carHandler.List)
	e.GET("/v1/cars/:id", carHandler.Get)
	e.POST("/v1/cars", carHandler.Create, adminOnly)
	e.PUT("/v1/cars/:id", carHandler.Update, adminOnly)
	e.DELETE("/v1/cars/:id", carHandler.Delete, adminOnly)
	e.POST("/v1/cars/:id/rent", carHandler.Rent, customerOnly)

	return e
}

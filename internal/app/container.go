package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportarena/booking-backend/internal/api"
	"github.com/sportarena/booking-backend/internal/auth"
	"github.com/sportarena/booking-backend/internal/booking"
	"github.com/sportarena/booking-backend/internal/price"
	"go.uber.org/zap"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	DBPool          *pgxpool.Pool
	Logger          *zap.Logger
	JWTSecret       string
	JWTTTL          time.Duration
	GridStepMinutes int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Price Module
	priceRepo := price.NewPgxRepository(cfg.DBPool)
	priceService := price.NewService(priceRepo, cfg.Logger)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, cfg.Logger, cfg.GridStepMinutes)

	// API Router Config
	routerParams := api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		BookingService: bookingService,
		PriceService:   priceService,
		JWTManager:     jwtManager,
	}

	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
